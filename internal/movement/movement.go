package movement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod tags how a detail line was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentCheque   PaymentMethod = "CHEQUE"
	PaymentCard     PaymentMethod = "TARJETA"
	PaymentTransfer PaymentMethod = "TRANSFERENCIA"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCheque, PaymentCard, PaymentTransfer:
		return true
	}

	return false
}

// Movement is a single income or expense on a cash drawer's opening session.
// It is never modified after creation.
type Movement struct {
	ID               uuid.UUID
	Amount           decimal.Decimal
	IsIncome         bool
	OpeningSessionID uuid.UUID
	InvoiceID        *uuid.UUID
	CashDrawerID     uuid.UUID // resolved through the opening session
	Details          []*Detail
	Receipt          *Receipt // expenses only
	CreatedAt        time.Time
}

// Detail decomposes a movement's amount by payment method. The details of a
// movement always sum to its amount.
type Detail struct {
	ID            uuid.UUID
	MovementID    uuid.UUID
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Concept       string
}

// Receipt proves an expense and names the user who authorised it.
type Receipt struct {
	ID         uuid.UUID
	MovementID uuid.UUID
	UserID     uuid.UUID
	Amount     decimal.Decimal
	Concept    string
	CreatedAt  time.Time
}
