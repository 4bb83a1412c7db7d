package types

import (
	"testing"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "3f9c8b7a6d5e4f3a2b1c0d9e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a"
	testWalletPub = "b889ff5b1513b641e2a139f661a661364979c5beee91842f8f0ef42ab558e9d4"
)

func testConnString() string {
	return "nostr+walletconnect://" + testWalletPub +
		"?relay=wss%3A%2F%2Frelay.example.com&secret=" + testSecret
}

func TestParseConnectionString(t *testing.T) {
	d, err := ParseConnectionString(testConnString())
	require.NoError(t, err)

	require.Equal(t, "wss://relay.example.com", d.Relay)
	require.Equal(t, testWalletPub, d.WalletPubKey)
	require.Equal(t, testSecret, d.Secret)
	require.Empty(t, d.Lud16)

	derived, err := nostr.GetPublicKey(testSecret)
	require.NoError(t, err)
	require.Equal(t, derived, d.ClientPubKey)
}

func TestParseConnectionStringLud16(t *testing.T) {
	d, err := ParseConnectionString(testConnString() + "&lud16=alice%40example.com")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", d.Lud16)
}

func TestSerializeParseRoundTrip(t *testing.T) {
	for _, lud16 := range []string{"", "alice@example.com"} {
		d, err := ParseConnectionString(testConnString())
		require.NoError(t, err)
		d.Lud16 = lud16

		back, err := ParseConnectionString(d.String())
		require.NoError(t, err)
		require.True(t, d.Equal(back))
		require.Equal(t, d.Lud16, back.Lud16)
	}
}

func TestParseConnectionStringRejects(t *testing.T) {
	cases := map[string]string{
		"wrong scheme":     "nostr://" + testWalletPub + "?relay=wss%3A%2F%2Fr.example&secret=" + testSecret,
		"short host":       "nostr+walletconnect://abcdef?relay=wss%3A%2F%2Fr.example&secret=" + testSecret,
		"uppercase host":   "nostr+walletconnect://" + "B889FF5B1513B641E2A139F661A661364979C5BEEE91842F8F0EF42AB558E9D4" + "?relay=wss%3A%2F%2Fr.example&secret=" + testSecret,
		"missing relay":    "nostr+walletconnect://" + testWalletPub + "?secret=" + testSecret,
		"http relay":       "nostr+walletconnect://" + testWalletPub + "?relay=https%3A%2F%2Fr.example&secret=" + testSecret,
		"hostless relay":   "nostr+walletconnect://" + testWalletPub + "?relay=wss%3A%2F%2F&secret=" + testSecret,
		"missing secret":   "nostr+walletconnect://" + testWalletPub + "?relay=wss%3A%2F%2Fr.example",
		"short secret":     "nostr+walletconnect://" + testWalletPub + "?relay=wss%3A%2F%2Fr.example&secret=" + testSecret[:63],
		"non-hex secret":   "nostr+walletconnect://" + testWalletPub + "?relay=wss%3A%2F%2Fr.example&secret=" + "zz" + testSecret[2:],
		"uppercase secret": "nostr+walletconnect://" + testWalletPub + "?relay=wss%3A%2F%2Fr.example&secret=" + "3F" + testSecret[2:],
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := ParseConnectionString(raw)
			require.Error(t, err)
			require.Nil(t, d, "failed parse must not produce a partial descriptor")
		})
	}
}

func TestDescriptorEquality(t *testing.T) {
	a, err := ParseConnectionString(testConnString())
	require.NoError(t, err)
	b, err := ParseConnectionString(testConnString() + "&lud16=alice%40example.com")
	require.NoError(t, err)

	// The lud16 hint does not participate in equality.
	require.True(t, a.Equal(b))

	c := *a
	c.Relay = "wss://other.example.com"
	require.False(t, a.Equal(&c))
}

func TestRedactedHidesSecret(t *testing.T) {
	d, err := ParseConnectionString(testConnString())
	require.NoError(t, err)
	require.NotContains(t, d.Redacted(), testSecret)
}
