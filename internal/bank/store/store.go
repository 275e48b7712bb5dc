package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/bank"
	"github.com/MrJamesThe3rd/caja/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateBank(ctx context.Context, b *bank.Bank) error {
	query := `
		INSERT INTO banks (name)
		VALUES ($1)
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, b.Name).Scan(&b.ID, &b.CreatedAt); err != nil {
		if database.IsUniqueViolation(err) {
			return bank.ErrBankExists
		}

		return fmt.Errorf("creating bank: %w", err)
	}

	return nil
}

func (s *Store) ListBanks(ctx context.Context) ([]*bank.Bank, error) {
	query := `SELECT id, name, created_at FROM banks ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing banks: %w", err)
	}
	defer rows.Close()

	var banks []*bank.Bank

	for rows.Next() {
		var b bank.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bank: %w", err)
		}

		banks = append(banks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating banks: %w", err)
	}

	return banks, nil
}

func (s *Store) DeleteBank(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return bank.ErrBankInUse
		}

		return fmt.Errorf("deleting bank: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting bank: %w", err)
	}

	if n == 0 {
		return bank.ErrNotFound
	}

	return nil
}

func (s *Store) CreateAccount(ctx context.Context, a *bank.Account) error {
	query := `
		INSERT INTO bank_accounts (bank_id, number, balance)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, a.BankID, a.Number, a.Balance).Scan(&a.ID, &a.CreatedAt); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return bank.ErrAccountExists
		case database.IsForeignKeyViolation(err):
			return bank.ErrNotFound
		}

		return fmt.Errorf("creating bank account: %w", err)
	}

	return nil
}

const selectAccountColumns = `id, bank_id, number, balance, created_at`

func (s *Store) ListAccounts(ctx context.Context) ([]*bank.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*bank.Account

	for rows.Next() {
		var a bank.Account
		if err := rows.Scan(&a.ID, &a.BankID, &a.Number, &a.Balance, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bank account: %w", err)
		}

		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank accounts: %w", err)
	}

	return accounts, nil
}

func (s *Store) ListCheques(ctx context.Context) ([]*bank.Cheque, error) {
	query := `
		SELECT id, number, is_received, amount, issued_at, involved, bank_id, account_id, created_at
		FROM cheques
		ORDER BY issued_at DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cheques: %w", err)
	}
	defer rows.Close()

	var cheques []*bank.Cheque

	for rows.Next() {
		var c bank.Cheque
		if err := rows.Scan(
			&c.ID, &c.Number, &c.IsReceived, &c.Amount, &c.IssuedAt,
			&c.Involved, &c.BankID, &c.AccountID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning cheque: %w", err)
		}

		cheques = append(cheques, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cheques: %w", err)
	}

	return cheques, nil
}

type chequeTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCheque(ctx context.Context) (bank.ChequeTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning cheque tx: %w", err)
	}

	return &chequeTx{tx: dbTx}, nil
}

func (t *chequeTx) Commit() error   { return t.tx.Commit() }
func (t *chequeTx) Rollback() error { return t.tx.Rollback() }

func (t *chequeTx) GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*bank.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts WHERE id = $1 FOR UPDATE`

	var a bank.Account

	err := t.tx.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.BankID, &a.Number, &a.Balance, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bank.ErrAccountNotFound
		}

		return nil, fmt.Errorf("locking bank account: %w", err)
	}

	return &a, nil
}

func (t *chequeTx) CreateCheque(ctx context.Context, ch *bank.Cheque) error {
	query := `
		INSERT INTO cheques (number, is_received, amount, issued_at, involved, bank_id, account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		ch.Number,
		ch.IsReceived,
		ch.Amount,
		ch.IssuedAt,
		ch.Involved,
		ch.BankID,
		ch.AccountID,
	).Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return bank.ErrChequeExists
		case database.IsForeignKeyViolation(err):
			return bank.ErrNotFound
		}

		return fmt.Errorf("creating cheque: %w", err)
	}

	return nil
}

func (t *chequeTx) AdjustAccountBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE bank_accounts
		SET balance = balance + $1
		WHERE id = $2
	`

	if _, err := t.tx.ExecContext(ctx, query, delta, id); err != nil {
		return fmt.Errorf("adjusting bank account balance: %w", err)
	}

	return nil
}
