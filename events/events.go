// Package events builds outbound wallet request events and extracts
// correlatable responses from inbound events. Construction is pure; sending
// and subscribing belong to the transport.
package events

import (
	"time"

	"github.com/nbd-wtf/go-nostr"
)

// Reserved event kinds of the wallet-connect protocol.
const (
	KindWalletRequest  = 23194
	KindWalletResponse = 23195
)

// Encryptor seals plaintext to a recipient. The encryption primitive is an
// external collaborator; NIP04Encryptor is the default implementation.
type Encryptor interface {
	Encrypt(plaintext, recipientPubKey string) (string, error)
}

// ResponseFilter returns the subscription filter a transport should use to
// receive wallet responses: response kind, authored by the wallet, from now
// (no historical backfill).
func ResponseFilter(walletPubKey string, since time.Time) nostr.Filter {
	ts := nostr.Timestamp(since.Unix())
	return nostr.Filter{
		Kinds:   []int{KindWalletResponse},
		Authors: []string{walletPubKey},
		Since:   &ts,
	}
}
