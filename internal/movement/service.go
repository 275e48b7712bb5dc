package movement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
	"github.com/MrJamesThe3rd/caja/internal/user"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=movement
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	ListMovements(ctx context.Context) ([]*Movement, error)
	GetMovement(ctx context.Context, id uuid.UUID) (*Movement, error)
}

// Tx is the atomic scope of a movement: nothing written through it is visible
// until Commit.
type Tx interface {
	// CreateMovement inserts m and fills its ID, CreatedAt and CashDrawerID.
	CreateMovement(ctx context.Context, m *Movement) error
	// CreateDetails inserts details, skipping ids that already exist, and
	// returns the details it wrote.
	CreateDetails(ctx context.Context, details []*Detail) ([]*Detail, error)
	CreateReceipt(ctx context.Context, r *Receipt) error
	Commit() error
	Rollback() error
}

type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string, minimum user.Role) (*user.User, error)
}

type InvoicePaymentApplier interface {
	ApplyPayment(ctx context.Context, invoiceID uuid.UUID, amount decimal.Decimal) error
}

type CashBalanceReflector interface {
	Reflect(ctx context.Context, cashDrawerID uuid.UUID, amount decimal.Decimal, isIncome bool) error
}

type Service struct {
	repo     Repository
	verifier CredentialVerifier
	invoices InvoicePaymentApplier
	balances CashBalanceReflector
}

func NewService(
	repo Repository,
	verifier CredentialVerifier,
	invoices InvoicePaymentApplier,
	balances CashBalanceReflector,
) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
		invoices: invoices,
		balances: balances,
	}
}

// Create validates and persists a movement with its details and, for
// expenses, its receipt, all in one transaction. After commit it pays the
// linked invoice and moves the cash drawer balance. Those two effects are not
// covered by the transaction: their failures are logged and the committed
// movement is still returned.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Movement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.persist(ctx, req)
	if err != nil {
		return nil, err
	}

	// The movement is committed; its effects must land even if the caller
	// goes away now.
	s.applyEffects(context.WithoutCancel(ctx), m)

	return m, nil
}

func (s *Service) persist(ctx context.Context, req CreateRequest) (*Movement, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, apperr.Ensure("creating movement", fmt.Errorf("begin movement: %w", err))
	}
	defer tx.Rollback()

	m := &Movement{
		Amount:           *req.Amount,
		IsIncome:         *req.IsIncome,
		OpeningSessionID: req.OpeningSessionID,
		InvoiceID:        req.InvoiceID,
	}
	if err := tx.CreateMovement(ctx, m); err != nil {
		return nil, apperr.Ensure("creating movement", err)
	}

	if !req.detailSum().Equal(m.Amount) {
		return nil, ErrDetailSumMismatch
	}

	details, err := tx.CreateDetails(ctx, newDetails(m.ID, req.Details))
	if err != nil {
		return nil, apperr.Ensure("creating movement details", err)
	}

	m.Details = details

	if !m.IsIncome {
		receipt, err := s.createReceipt(ctx, tx, m, req)
		if err != nil {
			return nil, err
		}

		m.Receipt = receipt
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Ensure("creating movement", fmt.Errorf("commit movement: %w", err))
	}

	return m, nil
}

func (s *Service) createReceipt(ctx context.Context, tx Tx, m *Movement, req CreateRequest) (*Receipt, error) {
	if !req.hasReceiptData() {
		return nil, ErrMissingReceiptData
	}

	u, err := s.verifier.Verify(ctx, req.Username, req.Password, user.RoleAdmin)
	if err != nil {
		return nil, apperr.Ensure("verifying credentials", err)
	}

	receipt := &Receipt{
		MovementID: m.ID,
		UserID:     u.ID,
		Amount:     m.Amount,
		Concept:    req.Concept,
	}
	if err := tx.CreateReceipt(ctx, receipt); err != nil {
		return nil, apperr.Ensure("creating receipt", err)
	}

	return receipt, nil
}

func (s *Service) applyEffects(ctx context.Context, m *Movement) {
	if m.InvoiceID != nil {
		if err := s.invoices.ApplyPayment(ctx, *m.InvoiceID, m.Amount); err != nil {
			slog.ErrorContext(ctx, "failed to apply invoice payment",
				"movement_id", m.ID, "invoice_id", *m.InvoiceID, "error", err)
		}
	}

	if err := s.balances.Reflect(ctx, m.CashDrawerID, m.Amount, m.IsIncome); err != nil {
		slog.ErrorContext(ctx, "failed to reflect movement on cash drawer",
			"movement_id", m.ID, "cash_drawer_id", m.CashDrawerID, "error", err)
	}
}

func newDetails(movementID uuid.UUID, reqs []DetailRequest) []*Detail {
	details := make([]*Detail, len(reqs))
	for i, d := range reqs {
		id := uuid.New()
		if d.ID != nil {
			id = *d.ID
		}

		details[i] = &Detail{
			ID:            id,
			MovementID:    movementID,
			Amount:        d.Amount,
			PaymentMethod: d.PaymentMethod,
			Concept:       d.Concept,
		}
	}

	return details
}

func (s *Service) List(ctx context.Context) ([]*Movement, error) {
	movements, err := s.repo.ListMovements(ctx)
	if err != nil {
		return nil, apperr.Ensure("listing movements", err)
	}

	return movements, nil
}

// Get returns a movement with its details and receipt.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Movement, error) {
	m, err := s.repo.GetMovement(ctx, id)
	if err != nil {
		return nil, apperr.Ensure("getting movement", err)
	}

	return m, nil
}
