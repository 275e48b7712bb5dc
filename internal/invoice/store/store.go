package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `id, number, total, total_paid, is_cash, issued_at, updated_at`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	if err := s.Scan(
		&inv.ID, &inv.Number, &inv.Total, &inv.TotalPaid, &inv.IsCash, &inv.IssuedAt, &inv.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, err
	}

	return &inv, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

type paymentTx struct {
	tx *sql.Tx
}

func (s *Store) BeginPayment(ctx context.Context) (invoice.PaymentTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payment tx: %w", err)
	}

	return &paymentTx{tx: dbTx}, nil
}

func (ptx *paymentTx) Commit() error   { return ptx.tx.Commit() }
func (ptx *paymentTx) Rollback() error { return ptx.tx.Rollback() }

func (ptx *paymentTx) GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`

	inv, err := scanInvoice(ptx.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("locking invoice: %w", err)
	}

	return inv, nil
}

func (ptx *paymentTx) UpdateTotalPaid(ctx context.Context, id uuid.UUID, totalPaid decimal.Decimal) error {
	query := `
		UPDATE invoices
		SET total_paid = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := ptx.tx.ExecContext(ctx, query, totalPaid, id); err != nil {
		return fmt.Errorf("updating invoice total paid: %w", err)
	}

	return nil
}
