package bank

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bank
type Repository interface {
	CreateBank(ctx context.Context, b *Bank) error
	ListBanks(ctx context.Context) ([]*Bank, error)
	DeleteBank(ctx context.Context, id uuid.UUID) error
	CreateAccount(ctx context.Context, a *Account) error
	ListAccounts(ctx context.Context) ([]*Account, error)
	ListCheques(ctx context.Context) ([]*Cheque, error)
	BeginCheque(ctx context.Context) (ChequeTx, error)
}

// ChequeTx records a cheque and moves its account balance atomically.
type ChequeTx interface {
	GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	CreateCheque(ctx context.Context, c *Cheque) error
	AdjustAccountBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateBank(ctx context.Context, name string) (*Bank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	b := &Bank{Name: name}
	if err := s.repo.CreateBank(ctx, b); err != nil {
		return nil, apperr.Ensure("creating bank", err)
	}

	return b, nil
}

func (s *Service) ListBanks(ctx context.Context) ([]*Bank, error) {
	banks, err := s.repo.ListBanks(ctx)
	if err != nil {
		return nil, apperr.Ensure("listing banks", err)
	}

	return banks, nil
}

// DeleteBank removes a bank no account or cheque refers to.
func (s *Service) DeleteBank(ctx context.Context, id uuid.UUID) error {
	return apperr.Ensure("deleting bank", s.repo.DeleteBank(ctx, id))
}

type CreateAccountParams struct {
	BankID         uuid.UUID `validate:"required"`
	Number         string    `validate:"required,max=34"`
	OpeningBalance decimal.Decimal
}

func (s *Service) CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	a := &Account{
		BankID:  params.BankID,
		Number:  strings.TrimSpace(params.Number),
		Balance: params.OpeningBalance,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, apperr.Ensure("creating bank account", err)
	}

	return a, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]*Account, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, apperr.Ensure("listing bank accounts", err)
	}

	return accounts, nil
}

type CreateChequeParams struct {
	Number     string `validate:"required,max=32"`
	IsReceived bool
	Amount     decimal.Decimal `validate:"positive_decimal,money"`
	IssuedAt   time.Time       `validate:"required"`
	Involved   string          `validate:"required"`
	BankID     uuid.UUID       `validate:"required"`
	AccountID  uuid.UUID       `validate:"required"`
}

// CreateCheque records a cheque and applies it to the affected account under
// a row lock.
func (s *Service) CreateCheque(ctx context.Context, params CreateChequeParams) (*Cheque, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginCheque(ctx)
	if err != nil {
		return nil, apperr.Ensure("creating cheque", fmt.Errorf("begin cheque: %w", err))
	}
	defer tx.Rollback()

	if _, err := tx.GetAccountForUpdate(ctx, params.AccountID); err != nil {
		return nil, apperr.Ensure("creating cheque", err)
	}

	c := &Cheque{
		Number:     strings.TrimSpace(params.Number),
		IsReceived: params.IsReceived,
		Amount:     params.Amount,
		IssuedAt:   params.IssuedAt,
		Involved:   params.Involved,
		BankID:     params.BankID,
		AccountID:  params.AccountID,
	}
	if err := tx.CreateCheque(ctx, c); err != nil {
		return nil, apperr.Ensure("creating cheque", err)
	}

	if err := tx.AdjustAccountBalance(ctx, c.AccountID, c.Delta()); err != nil {
		return nil, apperr.Ensure("creating cheque", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Ensure("creating cheque", fmt.Errorf("commit cheque: %w", err))
	}

	return c, nil
}

func (s *Service) ListCheques(ctx context.Context) ([]*Cheque, error) {
	cheques, err := s.repo.ListCheques(ctx)
	if err != nil {
		return nil, apperr.Ensure("listing cheques", err)
	}

	return cheques, nil
}
