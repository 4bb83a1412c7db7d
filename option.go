package nwc

import (
	"time"

	"github.com/walletmesh/nwc/events"
	"github.com/walletmesh/nwc/logger"
	"github.com/walletmesh/nwc/metrics"
	"github.com/walletmesh/nwc/types"
)

type Option func(*Client)

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		c.rec = r
	}
}

// WithEncryptor replaces the default NIP-04 sealer, e.g. with a NIP-44
// implementation for wallets that support it.
func WithEncryptor(e events.Encryptor) Option {
	return func(c *Client) {
		c.enc = e
	}
}

// WithClock fixes the timestamp source; tests use it for deterministic
// created_at values.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithBalanceHandler registers the callback for get_balance responses.
func WithBalanceHandler(fn func(types.BalanceResult)) Option {
	return func(c *Client) {
		c.onBalance = fn
	}
}
