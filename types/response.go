package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ResultType discriminates the result payload of a WalletResponse.
type ResultType string

const (
	ResultTypePayInvoice ResultType = "pay_invoice"
	ResultTypeGetBalance ResultType = "get_balance"
)

// WalletError is the optional error payload of a wallet response. Both
// fields may be absent; wallets are not consistent about filling them.
type WalletError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// PayInvoiceResult is the result variant for pay_invoice.
type PayInvoiceResult struct {
	Preimage string `json:"preimage"`
}

// BalanceResult is the result variant for get_balance. Balance is in
// millisatoshis.
type BalanceResult struct {
	Balance int64 `json:"balance"`
}

// Sats returns the balance as a decimal satoshi amount.
func (r BalanceResult) Sats() decimal.Decimal {
	return decimal.NewFromInt(r.Balance).Div(decimal.NewFromInt(1000))
}

// WalletResponse is the plaintext response envelope carried in a wallet
// response event. Result holds the variant selected by ResultType
// (*PayInvoiceResult or *BalanceResult); it is nil when the wallet reported
// an error without a result.
type WalletResponse struct {
	ResultType ResultType
	Err        *WalletError
	Result     any
}

// resultDecoders maps each known result type to its variant decoder.
// Adding a wallet method means adding one ResultType constant, one variant
// struct, and one entry here.
var resultDecoders = map[ResultType]func(json.RawMessage) (any, error){
	ResultTypePayInvoice: func(raw json.RawMessage) (any, error) {
		var v PayInvoiceResult
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &v, nil
	},
	ResultTypeGetBalance: func(raw json.RawMessage) (any, error) {
		var v BalanceResult
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &v, nil
	},
}

type rawResponse struct {
	ResultType string          `json:"result_type"`
	Err        *WalletError    `json:"error,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
}

// UnmarshalJSON decodes the envelope strictly: an unrecognized result_type
// is a decode failure, never a default variant.
func (r *WalletResponse) UnmarshalJSON(data []byte) error {
	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ProtocolError{
			Code:    ErrInvalidResponse,
			Message: fmt.Sprintf("malformed wallet response: %v", err),
		}
	}

	decode, ok := resultDecoders[ResultType(raw.ResultType)]
	if !ok {
		return &ProtocolError{
			Code:    ErrUnknownResultType,
			Message: fmt.Sprintf("unknown result_type %q", raw.ResultType),
		}
	}

	r.ResultType = ResultType(raw.ResultType)
	r.Err = raw.Err
	r.Result = nil

	if len(raw.Result) > 0 && string(raw.Result) != "null" {
		result, err := decode(raw.Result)
		if err != nil {
			return &ProtocolError{
				Code:    ErrInvalidResponse,
				Message: fmt.Sprintf("malformed %s result: %v", raw.ResultType, err),
			}
		}
		r.Result = result
	}
	return nil
}

// MarshalJSON is the inverse wire mapping, used by wallet-side tests and
// fixtures.
func (r WalletResponse) MarshalJSON() ([]byte, error) {
	raw := rawResponse{ResultType: string(r.ResultType), Err: r.Err}
	if r.Result != nil {
		result, err := json.Marshal(r.Result)
		if err != nil {
			return nil, err
		}
		raw.Result = result
	}
	return json.Marshal(raw)
}

// IsError reports whether the wallet rejected the request.
func (r WalletResponse) IsError() bool {
	return r.Err != nil
}

// PayInvoice returns the pay_invoice variant, if that is what the response
// carries.
func (r WalletResponse) PayInvoice() (*PayInvoiceResult, bool) {
	v, ok := r.Result.(*PayInvoiceResult)
	return v, ok
}

// Balance returns the get_balance variant, if that is what the response
// carries.
func (r WalletResponse) Balance() (*BalanceResult, bool) {
	v, ok := r.Result.(*BalanceResult)
	return v, ok
}
