package movement

import "github.com/MrJamesThe3rd/caja/internal/apperr"

var (
	ErrMissingFields         = apperr.Validation("missing movement fields")
	ErrMissingDetails        = apperr.Validation("missing movement details")
	ErrNonPositiveAmount     = apperr.Validation("amount must be positive")
	ErrInvalidPaymentMethod  = apperr.Validation("invalid payment method")
	ErrAmountScale           = apperr.Validation("amounts must have at most 2 decimal places")
	ErrAmountTooLarge        = apperr.Validation("amount exceeds the maximum allowed")
	ErrDetailSumMismatch     = apperr.Validation("detail sum mismatch")
	ErrMissingReceiptData    = apperr.Validation("missing receipt data")
	ErrOpeningSessionUnknown = apperr.Validation("opening session not found")
	ErrInvoiceUnknown        = apperr.Validation("invoice not found")
	ErrAlreadyExists         = apperr.Conflict("movement already exists")
	ErrNotFound              = apperr.NotFound("movement not found")
)
