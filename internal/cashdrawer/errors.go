package cashdrawer

import "github.com/MrJamesThe3rd/caja/internal/apperr"

var (
	ErrNotFound               = apperr.NotFound("cash drawer not found")
	ErrCashierNotFound        = apperr.NotFound("cashier not found")
	ErrNoOpenSession          = apperr.NotFound("no open session for cashier")
	ErrAlreadyOpen            = apperr.Conflict("cash drawer already open")
	ErrNegativeOpeningBalance = apperr.Validation("opening balance cannot be negative")
	ErrMissingCashier         = apperr.Validation("missing cashier")
)
