package nwc

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
)

// Transport is the relay-facing collaborator. It owns connections,
// delivery, retries and the response subscription; this library only hands
// it fully built events and receives decrypted response events back through
// Client.HandleEvent.
type Transport interface {
	Publish(ctx context.Context, ev *nostr.Event) error
}
