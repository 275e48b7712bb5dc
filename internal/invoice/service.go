package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	BeginPayment(ctx context.Context) (PaymentTx, error)
}

// PaymentTx holds a row lock on the invoice between read and update.
type PaymentTx interface {
	GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (*Invoice, error)
	UpdateTotalPaid(ctx context.Context, id uuid.UUID, totalPaid decimal.Decimal) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, apperr.Ensure("getting invoice", err)
	}

	return inv, nil
}

// ApplyPayment reduces the invoice's outstanding balance by amount.
func (s *Service) ApplyPayment(ctx context.Context, invoiceID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositive
	}

	ptx, err := s.repo.BeginPayment(ctx)
	if err != nil {
		return apperr.Ensure("applying invoice payment", fmt.Errorf("begin payment: %w", err))
	}
	defer ptx.Rollback()

	inv, err := ptx.GetInvoiceForUpdate(ctx, invoiceID)
	if err != nil {
		return apperr.Ensure("applying invoice payment", err)
	}

	if amount.GreaterThan(inv.Outstanding()) {
		return ErrExceedsRemaining
	}

	if err := ptx.UpdateTotalPaid(ctx, invoiceID, inv.TotalPaid.Add(amount)); err != nil {
		return apperr.Ensure("applying invoice payment", err)
	}

	if err := ptx.Commit(); err != nil {
		return apperr.Ensure("applying invoice payment", fmt.Errorf("commit payment: %w", err))
	}

	return nil
}
