package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bank struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Account is one of the business's own bank accounts.
type Account struct {
	ID        uuid.UUID
	BankID    uuid.UUID
	Number    string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Cheque is a paper cheque drawn on BankID. A received cheque credits
// AccountID, an issued one debits it.
type Cheque struct {
	ID         uuid.UUID
	Number     string
	IsReceived bool
	Amount     decimal.Decimal
	IssuedAt   time.Time
	Involved   string // counterparty
	BankID     uuid.UUID
	AccountID  uuid.UUID
	CreatedAt  time.Time
}

// Delta is the signed effect of the cheque on its account balance.
func (c *Cheque) Delta() decimal.Decimal {
	if c.IsReceived {
		return c.Amount
	}

	return c.Amount.Neg()
}
