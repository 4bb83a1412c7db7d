package types

// ProtocolError is the error type returned by descriptor parsing and
// envelope encoding/decoding.
type ProtocolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// Local error codes.
const (
	ErrInvalidDescriptor    = "INVALID_DESCRIPTOR"
	ErrInvalidRequest       = "INVALID_REQUEST"
	ErrInvalidResponse      = "INVALID_RESPONSE"
	ErrUnknownResultType    = "UNKNOWN_RESULT_TYPE"
	ErrMissingCorrelationID = "MISSING_CORRELATION_ID"
)

// Wallet-reported error codes defined by NIP-47. These arrive in the
// response envelope's error payload; the core treats them as informational.
const (
	WalletErrRateLimited         = "RATE_LIMITED"
	WalletErrNotImplemented      = "NOT_IMPLEMENTED"
	WalletErrInsufficientBalance = "INSUFFICIENT_BALANCE"
	WalletErrQuotaExceeded       = "QUOTA_EXCEEDED"
	WalletErrRestricted          = "RESTRICTED"
	WalletErrUnauthorized        = "UNAUTHORIZED"
	WalletErrInternal            = "INTERNAL"
	WalletErrPaymentFailed       = "PAYMENT_FAILED"
	WalletErrNotFound            = "NOT_FOUND"
	WalletErrOther               = "OTHER"
)
