package events

import (
	"encoding/json"

	"github.com/nbd-wtf/go-nostr"

	"github.com/walletmesh/nwc/types"
)

// ResponseEnvelope pairs a decoded wallet response with the id of the
// request event it answers.
type ResponseEnvelope struct {
	RequestID string
	Response  types.WalletResponse
}

// ExtractResponse reads the correlation id and wallet response out of an
// inbound event. The first e tag is the correlation id by protocol
// convention; the content must be plaintext wallet-response JSON
// (decryption, if any, happens in the transport). Any failure yields no
// envelope at all.
func ExtractResponse(ev *nostr.Event) (*ResponseEnvelope, error) {
	requestID := firstReferencedID(ev)
	if requestID == "" {
		return nil, &types.ProtocolError{
			Code:    types.ErrMissingCorrelationID,
			Message: "response event references no request id",
		}
	}

	var resp types.WalletResponse
	if err := json.Unmarshal([]byte(ev.Content), &resp); err != nil {
		return nil, err
	}
	return &ResponseEnvelope{RequestID: requestID, Response: resp}, nil
}

func firstReferencedID(ev *nostr.Event) string {
	for _, tag := range ev.Tags {
		if len(tag) >= 2 && tag[0] == "e" {
			return tag[1]
		}
	}
	return ""
}
