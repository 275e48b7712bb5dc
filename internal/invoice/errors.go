package invoice

import "github.com/MrJamesThe3rd/caja/internal/apperr"

var (
	ErrNotFound         = apperr.NotFound("invoice not found")
	ErrNonPositive      = apperr.Validation("payment amount must be positive")
	ErrExceedsRemaining = apperr.Validation("payment exceeds outstanding balance")
)
