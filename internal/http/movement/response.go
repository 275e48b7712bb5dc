package movement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/movement"
)

type movementResponse struct {
	ID               uuid.UUID        `json:"id"`
	Amount           decimal.Decimal  `json:"amount"`
	IsIncome         bool             `json:"is_income"`
	OpeningSessionID uuid.UUID        `json:"opening_session_id"`
	CashDrawerID     uuid.UUID        `json:"cash_drawer_id"`
	InvoiceID        *uuid.UUID       `json:"invoice_id,omitempty"`
	Details          []detailResponse `json:"details,omitempty"`
	Receipt          *receiptResponse `json:"receipt,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

type detailResponse struct {
	ID            uuid.UUID              `json:"id"`
	PaymentMethod movement.PaymentMethod `json:"payment_method"`
	Amount        decimal.Decimal        `json:"amount"`
	Concept       string                 `json:"concept,omitempty"`
}

type receiptResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Concept   string          `json:"concept"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(m *movement.Movement) movementResponse {
	resp := movementResponse{
		ID:               m.ID,
		Amount:           m.Amount,
		IsIncome:         m.IsIncome,
		OpeningSessionID: m.OpeningSessionID,
		CashDrawerID:     m.CashDrawerID,
		InvoiceID:        m.InvoiceID,
		CreatedAt:        m.CreatedAt,
	}

	for _, d := range m.Details {
		resp.Details = append(resp.Details, detailResponse{
			ID:            d.ID,
			PaymentMethod: d.PaymentMethod,
			Amount:        d.Amount,
			Concept:       d.Concept,
		})
	}

	if m.Receipt != nil {
		resp.Receipt = &receiptResponse{
			ID:        m.Receipt.ID,
			UserID:    m.Receipt.UserID,
			Amount:    m.Receipt.Amount,
			Concept:   m.Receipt.Concept,
			CreatedAt: m.Receipt.CreatedAt,
		}
	}

	return resp
}

func toResponseList(movements []*movement.Movement) []movementResponse {
	resp := make([]movementResponse, len(movements))
	for i, m := range movements {
		resp[i] = toResponse(m)
	}

	return resp
}
