// Package utils holds small helpers shared by the descriptor parser and
// callers: wire-format validation and millisatoshi amount conversions.
package utils

import (
	"fmt"
	"net/url"
	"regexp"
)

var hex64 = regexp.MustCompile("^[0-9a-f]{64}$")

// IsHex64 reports whether s is exactly 64 lowercase hex characters, the
// shape of every key and event id on the wire.
func IsHex64(s string) bool {
	return hex64.MatchString(s)
}

// ValidateRelayAddress requires a websocket URL with a host.
func ValidateRelayAddress(relay string) error {
	u, err := url.Parse(relay)
	if err != nil {
		return fmt.Errorf("unparsable relay address %q: %w", relay, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("relay address %q must use ws or wss", relay)
	}
	if u.Host == "" {
		return fmt.Errorf("relay address %q has no host", relay)
	}
	return nil
}
