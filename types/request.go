package types

// Method names of the wallet operations this client issues.
const (
	MethodPayInvoice = "pay_invoice"
	MethodGetBalance = "get_balance"
)

// WalletRequest is the plaintext request envelope carried (encrypted) in a
// wallet request event. It serializes to exactly {"method": ..., "params": ...}
// with params omitted when absent.
type WalletRequest struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// PayInvoiceParams are the parameters of the pay_invoice method.
type PayInvoiceParams struct {
	Invoice string `json:"invoice"`
}

// NewPayInvoiceRequest builds a pay_invoice request for a BOLT11 invoice.
func NewPayInvoiceRequest(invoice string) WalletRequest {
	return WalletRequest{
		Method: MethodPayInvoice,
		Params: PayInvoiceParams{Invoice: invoice},
	}
}

// NewBalanceRequest builds a get_balance request. The method takes no
// parameters, so params is absent from the wire form.
func NewBalanceRequest() WalletRequest {
	return WalletRequest{Method: MethodGetBalance}
}
