package types

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/nbd-wtf/go-nostr"

	"github.com/walletmesh/nwc/utils"
)

// ConnectionScheme is the URL scheme of the wallet capability URL.
const ConnectionScheme = "nostr+walletconnect"

var validate = validator.New()

// ConnectionDescriptor holds a parsed wallet connection. Possession of the
// secret grants control over the wallet session, so the descriptor is the
// capability itself. Immutable after construction and safe to share across
// goroutines.
type ConnectionDescriptor struct {
	// Relay is the ws:// or wss:// address of the relay the wallet
	// service listens on.
	Relay string `validate:"required"`

	// WalletPubKey identifies the remote wallet service.
	WalletPubKey string `validate:"required,len=64,hexadecimal,lowercase"`

	// Secret is the local private key. It appears in the serialized
	// capability URL and nowhere else; never log it.
	Secret string `validate:"required,len=64,hexadecimal,lowercase"`

	// ClientPubKey is derived from Secret during parsing.
	ClientPubKey string `validate:"required,len=64,hexadecimal"`

	// Lud16 is an optional lightning address hint, passed through
	// verbatim and excluded from equality.
	Lud16 string
}

// ParseConnectionString parses a nostr+walletconnect:// capability URL.
// Any missing or malformed required field fails the whole parse; a partial
// descriptor is never returned.
func ParseConnectionString(text string) (*ConnectionDescriptor, error) {
	u, err := url.Parse(text)
	if err != nil {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: fmt.Sprintf("unparsable connection string: %v", err),
		}
	}
	if u.Scheme != ConnectionScheme {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: fmt.Sprintf("unexpected scheme %q", u.Scheme),
		}
	}

	q := u.Query()
	relay := q.Get("relay")
	if relay == "" {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: "missing relay parameter",
		}
	}
	if err := utils.ValidateRelayAddress(relay); err != nil {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: err.Error(),
		}
	}

	secret := q.Get("secret")
	if err := validate.Var(secret, "required,len=64,hexadecimal,lowercase"); err != nil {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: "secret must be 64 lowercase hex characters",
		}
	}
	clientPub, err := nostr.GetPublicKey(secret)
	if err != nil {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: fmt.Sprintf("secret does not derive a public key: %v", err),
		}
	}

	d := &ConnectionDescriptor{
		Relay:        relay,
		WalletPubKey: u.Host,
		Secret:       secret,
		ClientPubKey: clientPub,
		Lud16:        q.Get("lud16"),
	}
	if err := validate.Struct(d); err != nil {
		return nil, &ProtocolError{
			Code:    ErrInvalidDescriptor,
			Message: fmt.Sprintf("invalid connection field: %v", err),
		}
	}
	return d, nil
}

// String serializes the descriptor back to its capability URL. Parsing the
// result yields an equal descriptor; query ordering and percent-encoding
// are not canonical.
func (d *ConnectionDescriptor) String() string {
	q := url.Values{}
	q.Set("relay", d.Relay)
	q.Set("secret", d.Secret)
	if d.Lud16 != "" {
		q.Set("lud16", d.Lud16)
	}
	return ConnectionScheme + "://" + d.WalletPubKey + "?" + q.Encode()
}

// Equal compares relay, keypair and wallet pubkey. The lud16 hint is
// informational and does not participate.
func (d *ConnectionDescriptor) Equal(o *ConnectionDescriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Relay == o.Relay &&
		d.Secret == o.Secret &&
		d.ClientPubKey == o.ClientPubKey &&
		d.WalletPubKey == o.WalletPubKey
}

// Redacted returns a log-safe identification of the connection.
func (d *ConnectionDescriptor) Redacted() string {
	return fmt.Sprintf("%s@%s", abbrev(d.WalletPubKey), d.Relay)
}

func abbrev(pubkey string) string {
	if len(pubkey) < 16 {
		return pubkey
	}
	return pubkey[:16]
}
