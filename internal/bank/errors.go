package bank

import "github.com/MrJamesThe3rd/caja/internal/apperr"

var (
	ErrNotFound        = apperr.NotFound("bank not found")
	ErrAccountNotFound = apperr.NotFound("bank account not found")
	ErrMissingName     = apperr.Validation("bank name is required")
	ErrBankExists      = apperr.Conflict("bank already exists")
	ErrBankInUse       = apperr.Conflict("bank has accounts or cheques")
	ErrAccountExists   = apperr.Conflict("bank account already exists")
	ErrChequeExists    = apperr.Conflict("cheque already exists")
)
