// Package tracker owns the correlation state for in-flight wallet
// payments: it matches an asynchronous wallet response back to exactly one
// pending entry and drives that entry to a terminal state.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/walletmesh/nwc/events"
	"github.com/walletmesh/nwc/logger"
	"github.com/walletmesh/nwc/metrics"
)

// State of a pending payment entry.
type State int

const (
	// StatePending means the request event was handed to the transport
	// and no matching response has arrived. There is no timeout here; an
	// entry can stay pending until the transport or UI gives up.
	StatePending State = iota

	// StateConfirmed is the terminal success state.
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PendingZap is one in-flight payment, keyed by the id of its request
// event.
type PendingZap struct {
	RequestID string
	State     State
	trackedAt time.Time
}

// ZapCache is the external store that owns payment records. On a wallet
// error the record is removed entirely, identified by the original request
// event id.
type ZapCache interface {
	Remove(requestID string)
}

// Tracker holds pending payments grouped by the initiating identity. All
// mutations go through one mutex, so two concurrent responses for the same
// correlation id resolve to exactly one terminal transition.
type Tracker struct {
	mu      sync.Mutex
	pending map[string][]*PendingZap

	log logger.Logger
	rec metrics.Recorder
	now func() time.Time
}

// New creates a tracker. Nil logger or recorder fall back to noops.
func New(log logger.Logger, rec metrics.Recorder) *Tracker {
	if log == nil {
		log = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Tracker{
		pending: make(map[string][]*PendingZap),
		log:     log,
		rec:     rec,
		now:     time.Now,
	}
}

// Track registers a pending payment for an identity. Correlation ids must
// be unique among in-flight entries; a duplicate is rejected here rather
// than silently shadowed, since the matching rule would otherwise be
// ambiguous.
func (t *Tracker) Track(identity, requestID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, zaps := range t.pending {
		for _, z := range zaps {
			if z.RequestID == requestID && z.State == StatePending {
				return fmt.Errorf("request %s is already in flight", requestID)
			}
		}
	}

	t.pending[identity] = append(t.pending[identity], &PendingZap{
		RequestID: requestID,
		State:     StatePending,
		trackedAt: t.now(),
	})
	t.rec.IncCounter("payment_tracked", nil)
	return nil
}

// OnSuccess transitions the pending entry matching the response's
// correlation id to confirmed. First match wins and at most one entry
// transitions per call; confirmed entries never transition again. A
// response matching nothing is a no-op — duplicate, late and foreign
// responses are expected on an open relay network.
func (t *Tracker) OnSuccess(env *events.ResponseEnvelope) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for identity, zaps := range t.pending {
		for _, z := range zaps {
			if z.State != StatePending || z.RequestID != env.RequestID {
				continue
			}
			z.State = StateConfirmed
			t.observeSettled("payment_confirmed", z)
			t.log.Debug("payment confirmed", map[string]any{
				"identity":   abbrev(identity),
				"request_id": abbrev(z.RequestID),
			})
			return true
		}
	}
	return false
}

// OnError removes the pending entry matching the response's correlation id
// and tells the cache to drop the underlying payment record. Same matching
// rule as OnSuccess; no match is a no-op.
func (t *Tracker) OnError(env *events.ResponseEnvelope, cache ZapCache) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for identity, zaps := range t.pending {
		for i, z := range zaps {
			if z.State != StatePending || z.RequestID != env.RequestID {
				continue
			}
			t.pending[identity] = append(zaps[:i], zaps[i+1:]...)
			if len(t.pending[identity]) == 0 {
				delete(t.pending, identity)
			}
			cache.Remove(z.RequestID)
			t.observeSettled("payment_failed", z)

			fields := map[string]any{
				"identity":   abbrev(identity),
				"request_id": abbrev(z.RequestID),
			}
			if env.Response.Err != nil {
				fields["code"] = env.Response.Err.Code
			}
			t.log.Info("payment failed, record removed", fields)
			return true
		}
	}
	return false
}

// Forget drops a pending entry without touching the cache. Used when the
// transport never accepted the request event, so no response can arrive.
func (t *Tracker) Forget(requestID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for identity, zaps := range t.pending {
		for i, z := range zaps {
			if z.RequestID != requestID {
				continue
			}
			t.pending[identity] = append(zaps[:i], zaps[i+1:]...)
			if len(t.pending[identity]) == 0 {
				delete(t.pending, identity)
			}
			return
		}
	}
}

// Lookup returns the state of a tracked request id. A removed entry is
// gone; ok is false.
func (t *Tracker) Lookup(requestID string) (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, zaps := range t.pending {
		for _, z := range zaps {
			if z.RequestID == requestID {
				return z.State, true
			}
		}
	}
	return 0, false
}

// PendingCount reports how many entries are still awaiting a response.
func (t *Tracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, zaps := range t.pending {
		for _, z := range zaps {
			if z.State == StatePending {
				n++
			}
		}
	}
	return n
}

func (t *Tracker) observeSettled(outcome string, z *PendingZap) {
	t.rec.IncCounter(outcome, nil)
	if !z.trackedAt.IsZero() {
		t.rec.ObserveLatency("settle", t.now().Sub(z.trackedAt), nil)
	}
}

func abbrev(id string) string {
	if len(id) < 16 {
		return id
	}
	return id[:16]
}
