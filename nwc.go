// Package nwc implements the client side of Nostr Wallet Connect (NIP-47):
// capability-URL descriptors, the request/response wire envelopes, outgoing
// encrypted request events, and the correlation of asynchronous wallet
// responses back to pending payments.
package nwc

import (
	"context"
	"time"

	"github.com/nbd-wtf/go-nostr"

	"github.com/walletmesh/nwc/events"
	"github.com/walletmesh/nwc/logger"
	"github.com/walletmesh/nwc/metrics"
	"github.com/walletmesh/nwc/tracker"
	"github.com/walletmesh/nwc/types"
)

// Client drives one wallet connection. Construction wires the descriptor
// to the transport and cache collaborators; all methods are safe for
// concurrent use.
type Client struct {
	desc      *types.ConnectionDescriptor
	transport Transport
	cache     tracker.ZapCache
	pending   *tracker.Tracker

	enc       events.Encryptor
	log       logger.Logger
	rec       metrics.Recorder
	now       func() time.Time
	onBalance func(types.BalanceResult)
}

// New creates a client for a parsed wallet connection. The cache is the
// external store owning payment records; it is only consulted to remove a
// record when the wallet reports an error.
func New(desc *types.ConnectionDescriptor, transport Transport, cache tracker.ZapCache, opts ...Option) *Client {
	c := &Client{
		desc:      desc,
		transport: transport,
		cache:     cache,
		enc:       events.NIP04Encryptor{Secret: desc.Secret},
		log:       logger.NoopLogger{},
		rec:       metrics.NoopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.pending = tracker.New(c.log, c.rec)
	return c
}

// PayInvoice builds, publishes and tracks a pay_invoice request for a
// BOLT11 invoice. It returns the request event id — the correlation id the
// wallet's response will reference. The payment stays pending until a
// matching response arrives through HandleEvent; there is no timeout here.
func (c *Client) PayInvoice(ctx context.Context, invoice string) (string, error) {
	req := types.NewPayInvoiceRequest(invoice)
	ev, err := events.BuildRequestEvent(req, c.desc.WalletPubKey, c.desc.Secret, c.now(), c.enc)
	if err != nil {
		return "", err
	}

	if err := c.pending.Track(c.desc.ClientPubKey, ev.ID); err != nil {
		return "", err
	}
	if err := c.transport.Publish(ctx, ev); err != nil {
		c.pending.Forget(ev.ID)
		return "", err
	}

	c.rec.IncCounter("request_published", map[string]string{"method": req.Method})
	c.log.Debug("pay_invoice request published", map[string]any{
		"wallet":     c.desc.Redacted(),
		"request_id": ev.ID,
	})
	return ev.ID, nil
}

// GetBalance builds and publishes a get_balance request. The response is
// delivered through HandleEvent to the handler registered with
// WithBalanceHandler.
func (c *Client) GetBalance(ctx context.Context) (string, error) {
	req := types.NewBalanceRequest()
	ev, err := events.BuildRequestEvent(req, c.desc.WalletPubKey, c.desc.Secret, c.now(), c.enc)
	if err != nil {
		return "", err
	}
	if err := c.transport.Publish(ctx, ev); err != nil {
		return "", err
	}

	c.rec.IncCounter("request_published", map[string]string{"method": req.Method})
	c.log.Debug("get_balance request published", map[string]any{
		"wallet":     c.desc.Redacted(),
		"request_id": ev.ID,
	})
	return ev.ID, nil
}

// HandleEvent feeds an inbound, already-decrypted response event into the
// correlation machinery. It may be called from any number of concurrent
// delivery paths. Events that are not from this wallet, carry no
// correlation id, or match no pending payment are ignored; that is normal
// on an open relay network.
func (c *Client) HandleEvent(ev *nostr.Event) {
	if ev == nil || ev.PubKey != c.desc.WalletPubKey {
		return
	}

	env, err := events.ExtractResponse(ev)
	if err != nil {
		c.rec.IncCounter("response_discarded", nil)
		c.log.Debug("discarding response event", map[string]any{
			"event_id": ev.ID,
			"reason":   err.Error(),
		})
		return
	}

	if env.Response.IsError() {
		if !c.pending.OnError(env, c.cache) {
			c.rec.IncCounter("response_unmatched", nil)
		}
		return
	}

	if balance, ok := env.Response.Balance(); ok {
		c.rec.IncCounter("balance_received", nil)
		if c.onBalance != nil {
			c.onBalance(*balance)
		}
		return
	}

	if !c.pending.OnSuccess(env) {
		c.rec.IncCounter("response_unmatched", nil)
	}
}

// ResponseFilter returns the subscription the transport should hold open
// for this connection: response kind, authored by the wallet, from now.
func (c *Client) ResponseFilter() nostr.Filter {
	return events.ResponseFilter(c.desc.WalletPubKey, c.now())
}

// PendingPayments reports how many payments are awaiting a wallet reply.
func (c *Client) PendingPayments() int {
	return c.pending.PendingCount()
}

// PaymentState looks up the tracked state of a request id.
func (c *Client) PaymentState(requestID string) (tracker.State, bool) {
	return c.pending.Lookup(requestID)
}

// Descriptor returns the connection this client is bound to.
func (c *Client) Descriptor() *types.ConnectionDescriptor {
	return c.desc
}
