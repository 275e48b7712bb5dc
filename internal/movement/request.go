package movement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(14, 2).
const amountScale = 2

var maxAmount = decimal.New(1, 12)

// CreateRequest is a candidate movement. Pointer fields distinguish "absent"
// from a zero value.
type CreateRequest struct {
	Amount           *decimal.Decimal
	IsIncome         *bool
	OpeningSessionID uuid.UUID
	InvoiceID        *uuid.UUID
	Details          []DetailRequest

	// Receipt data, required for expenses only.
	Username string
	Password string
	Concept  string
}

type DetailRequest struct {
	ID            *uuid.UUID
	PaymentMethod PaymentMethod
	Amount        decimal.Decimal
	Concept       string
}

// Validate runs the checks that need no storage. The order is fixed: the
// first failing check decides the error.
func (r CreateRequest) Validate() error {
	if r.Amount == nil || r.IsIncome == nil || r.OpeningSessionID == uuid.Nil {
		return ErrMissingFields
	}

	if len(r.Details) == 0 {
		return ErrMissingDetails
	}

	if !r.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	if err := checkStorable(*r.Amount); err != nil {
		return err
	}

	for _, d := range r.Details {
		if !d.PaymentMethod.Valid() {
			return ErrInvalidPaymentMethod
		}

		if err := checkStorable(d.Amount); err != nil {
			return err
		}
	}

	return nil
}

// checkStorable rejects amounts the database would round or overflow, so the
// detail sum checked here is the sum that gets stored.
func checkStorable(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(amountScale)) {
		return ErrAmountScale
	}

	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}

	return nil
}

// detailSum adds the detail amounts exactly.
func (r CreateRequest) detailSum() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range r.Details {
		sum = sum.Add(d.Amount)
	}

	return sum
}

func (r CreateRequest) hasReceiptData() bool {
	return r.Username != "" && r.Password != "" && r.Concept != ""
}
