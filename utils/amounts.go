package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const msatPerSat = 1000

// MsatToSat converts a millisatoshi amount to decimal satoshis.
func MsatToSat(msat int64) decimal.Decimal {
	return decimal.NewFromInt(msat).Div(decimal.NewFromInt(msatPerSat))
}

// SatToMsat converts a decimal satoshi amount to millisatoshis, truncating
// below millisatoshi precision.
func SatToMsat(sat decimal.Decimal) int64 {
	return sat.Mul(decimal.NewFromInt(msatPerSat)).IntPart()
}

// FormatMsat renders a millisatoshi amount as a satoshi string for display
// and logs.
func FormatMsat(msat int64) string {
	return fmt.Sprintf("%s sat", MsatToSat(msat).String())
}
