package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIsHex64(t *testing.T) {
	require.True(t, IsHex64("b889ff5b1513b641e2a139f661a661364979c5beee91842f8f0ef42ab558e9d4"))
	require.False(t, IsHex64("b889ff5b"))
	require.False(t, IsHex64("B889FF5B1513B641E2A139F661A661364979C5BEEE91842F8F0EF42AB558E9D4"))
	require.False(t, IsHex64("zz89ff5b1513b641e2a139f661a661364979c5beee91842f8f0ef42ab558e9d4"))
}

func TestValidateRelayAddress(t *testing.T) {
	require.NoError(t, ValidateRelayAddress("wss://relay.example.com"))
	require.NoError(t, ValidateRelayAddress("ws://localhost:7777"))

	for _, bad := range []string{"", "https://relay.example.com", "wss://", "relay.example.com"} {
		require.Error(t, ValidateRelayAddress(bad), bad)
	}
}

func TestMsatConversions(t *testing.T) {
	require.Equal(t, "21", MsatToSat(21000).String())
	require.Equal(t, "0.5", MsatToSat(500).String())
	require.Equal(t, int64(21000), SatToMsat(decimal.NewFromInt(21)))
	require.Equal(t, "1.5 sat", FormatMsat(1500))
}
