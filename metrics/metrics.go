// Package metrics defines the instrumentation contract for the wallet
// client: counters for request/response outcomes and a latency histogram
// for the pending-to-settled interval.
package metrics

import "time"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
