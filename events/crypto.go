package events

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr/nip04"
)

// NIP04Encryptor seals request content with NIP-04, the scheme wallet
// services most widely accept.
type NIP04Encryptor struct {
	// Secret is the sender's private key in hex.
	Secret string
}

func (e NIP04Encryptor) Encrypt(plaintext, recipientPubKey string) (string, error) {
	key, err := nip04.ComputeSharedSecret(recipientPubKey, e.Secret)
	if err != nil {
		return "", fmt.Errorf("compute shared secret: %w", err)
	}
	return nip04.Encrypt(plaintext, key)
}
