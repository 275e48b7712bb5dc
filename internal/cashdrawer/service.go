package cashdrawer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cashdrawer
type Repository interface {
	GetDrawer(ctx context.Context, id uuid.UUID) (*CashDrawer, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	CreateSession(ctx context.Context, s *OpeningSession) error
	GetOpenSessionByCashier(ctx context.Context, cashierID uuid.UUID) (*OpeningSession, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Reflect applies a movement to the drawer's running balance: incomes add,
// expenses subtract.
func (s *Service) Reflect(ctx context.Context, drawerID uuid.UUID, amount decimal.Decimal, isIncome bool) error {
	delta := amount
	if !isIncome {
		delta = amount.Neg()
	}

	return apperr.Ensure("updating cash drawer balance", s.repo.AdjustBalance(ctx, drawerID, delta))
}

func (s *Service) GetDrawer(ctx context.Context, id uuid.UUID) (*CashDrawer, error) {
	d, err := s.repo.GetDrawer(ctx, id)
	if err != nil {
		return nil, apperr.Ensure("getting cash drawer", err)
	}

	return d, nil
}

// OpenSession starts a working period on a drawer. A drawer holds at most one
// open session.
func (s *Service) OpenSession(ctx context.Context, drawerID, cashierID uuid.UUID, openingBalance decimal.Decimal) (*OpeningSession, error) {
	if cashierID == uuid.Nil {
		return nil, ErrMissingCashier
	}

	if openingBalance.IsNegative() {
		return nil, ErrNegativeOpeningBalance
	}

	session := &OpeningSession{
		CashDrawerID:   drawerID,
		CashierID:      cashierID,
		OpeningBalance: openingBalance,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, apperr.Ensure("opening session", err)
	}

	return session, nil
}

// CurrentSession returns the cashier's open session.
func (s *Service) CurrentSession(ctx context.Context, cashierID uuid.UUID) (*OpeningSession, error) {
	session, err := s.repo.GetOpenSessionByCashier(ctx, cashierID)
	if err != nil {
		return nil, apperr.Ensure("getting current session", err)
	}

	return session, nil
}
