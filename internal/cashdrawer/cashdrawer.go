package cashdrawer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashDrawer is a till whose running balance moves with every movement.
type CashDrawer struct {
	ID        uuid.UUID
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// OpeningSession is a drawer's working period, from opening to closing.
type OpeningSession struct {
	ID             uuid.UUID
	CashDrawerID   uuid.UUID
	CashierID      uuid.UUID
	OpeningBalance decimal.Decimal
	OpenedAt       time.Time
	ClosedAt       *time.Time
}

func (s *OpeningSession) IsOpen() bool {
	return s.ClosedAt == nil
}
