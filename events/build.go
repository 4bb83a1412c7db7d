package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nbd-wtf/go-nostr"

	"github.com/walletmesh/nwc/types"
)

// BuildRequestEvent constructs the outbound wallet request event: the
// request serialized to JSON, sealed to recipientPubKey, carried in a
// kind-23194 event with a single p tag, timestamped with createdAt and
// signed with senderSecret. The event id doubles as the correlation id for
// the eventual response.
func BuildRequestEvent(
	req types.WalletRequest,
	recipientPubKey string,
	senderSecret string,
	createdAt time.Time,
	enc Encryptor,
) (*nostr.Event, error) {
	plaintext, err := json.Marshal(req)
	if err != nil {
		return nil, &types.ProtocolError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("serialize %s request: %v", req.Method, err),
		}
	}

	content, err := enc.Encrypt(string(plaintext), recipientPubKey)
	if err != nil {
		return nil, fmt.Errorf("seal %s request: %w", req.Method, err)
	}

	ev := nostr.Event{
		CreatedAt: nostr.Timestamp(createdAt.Unix()),
		Kind:      KindWalletRequest,
		Tags:      nostr.Tags{nostr.Tag{"p", recipientPubKey}},
		Content:   content,
	}
	if err := ev.Sign(senderSecret); err != nil {
		return nil, fmt.Errorf("sign %s request: %w", req.Method, err)
	}
	return &ev, nil
}
