package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/cashdrawer"
	"github.com/MrJamesThe3rd/caja/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetDrawer(ctx context.Context, id uuid.UUID) (*cashdrawer.CashDrawer, error) {
	query := `
		SELECT id, name, balance, created_at
		FROM cash_drawers
		WHERE id = $1
	`

	var d cashdrawer.CashDrawer

	err := s.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Balance, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cashdrawer.ErrNotFound
		}

		return nil, fmt.Errorf("getting cash drawer: %w", err)
	}

	return &d, nil
}

// AdjustBalance adds delta to the drawer balance in a single statement so
// concurrent movements never overwrite each other.
func (s *Store) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE cash_drawers
		SET balance = balance + $1
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjusting cash drawer balance: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjusting cash drawer balance: %w", err)
	}

	if n == 0 {
		return cashdrawer.ErrNotFound
	}

	return nil
}

func (s *Store) CreateSession(ctx context.Context, session *cashdrawer.OpeningSession) error {
	query := `
		INSERT INTO opening_sessions (cash_drawer_id, cashier_id, opening_balance, opened_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, opened_at
	`

	err := s.db.QueryRowContext(ctx, query,
		session.CashDrawerID,
		session.CashierID,
		session.OpeningBalance,
	).Scan(&session.ID, &session.OpenedAt)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return cashdrawer.ErrAlreadyOpen
		case database.IsForeignKeyViolation(err):
			if strings.Contains(database.Constraint(err), "cashier") {
				return cashdrawer.ErrCashierNotFound
			}

			return cashdrawer.ErrNotFound
		}

		return fmt.Errorf("creating opening session: %w", err)
	}

	return nil
}

func (s *Store) GetOpenSessionByCashier(ctx context.Context, cashierID uuid.UUID) (*cashdrawer.OpeningSession, error) {
	query := `
		SELECT id, cash_drawer_id, cashier_id, opening_balance, opened_at, closed_at
		FROM opening_sessions
		WHERE cashier_id = $1 AND closed_at IS NULL
		ORDER BY opened_at DESC
		LIMIT 1
	`

	var session cashdrawer.OpeningSession

	err := s.db.QueryRowContext(ctx, query, cashierID).Scan(
		&session.ID, &session.CashDrawerID, &session.CashierID,
		&session.OpeningBalance, &session.OpenedAt, &session.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cashdrawer.ErrNoOpenSession
		}

		return nil, fmt.Errorf("getting open session: %w", err)
	}

	return &session, nil
}
