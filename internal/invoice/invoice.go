package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a sales invoice that movements can pay down.
type Invoice struct {
	ID        uuid.UUID
	Number    string
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	IsCash    bool // cash sale as opposed to credit
	IssuedAt  time.Time
	UpdatedAt time.Time
}

// Outstanding is what remains to be paid.
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.Total.Sub(i.TotalPaid)
}

func (i *Invoice) IsPaid() bool {
	return !i.Outstanding().IsPositive()
}
