package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/caja/internal/database"
	"github.com/MrJamesThe3rd/caja/internal/movement"
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

// Expected column order: id, amount, is_income, opening_session_id, invoice_id, created_at, cash_drawer_id
func scanMovement(s scanner) (*movement.Movement, error) {
	var m movement.Movement

	var invoiceID uuid.NullUUID

	if err := s.Scan(
		&m.ID, &m.Amount, &m.IsIncome, &m.OpeningSessionID, &invoiceID, &m.CreatedAt, &m.CashDrawerID,
	); err != nil {
		return nil, err
	}

	if invoiceID.Valid {
		m.InvoiceID = &invoiceID.UUID
	}

	return &m, nil
}

const selectMovementColumns = `
	m.id, m.amount, m.is_income, m.opening_session_id, m.invoice_id, m.created_at, s.cash_drawer_id
`

func (s *Store) ListMovements(ctx context.Context) ([]*movement.Movement, error) {
	query := `SELECT ` + selectMovementColumns + `
		FROM movements m
		JOIN opening_sessions s ON m.opening_session_id = s.id
		ORDER BY m.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	defer rows.Close()

	var movements []*movement.Movement

	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}

		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movement rows: %w", err)
	}

	return movements, nil
}

func (s *Store) GetMovement(ctx context.Context, id uuid.UUID) (*movement.Movement, error) {
	query := `SELECT ` + selectMovementColumns + `
		FROM movements m
		JOIN opening_sessions s ON m.opening_session_id = s.id
		WHERE m.id = $1`

	m, err := scanMovement(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, movement.ErrNotFound
		}

		return nil, fmt.Errorf("getting movement: %w", err)
	}

	if m.Details, err = s.listDetails(ctx, id); err != nil {
		return nil, err
	}

	if m.Receipt, err = s.getReceipt(ctx, id); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Store) listDetails(ctx context.Context, movementID uuid.UUID) ([]*movement.Detail, error) {
	query := `
		SELECT id, movement_id, amount, payment_method, concept
		FROM movement_details
		WHERE movement_id = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, movementID)
	if err != nil {
		return nil, fmt.Errorf("listing movement details: %w", err)
	}
	defer rows.Close()

	var details []*movement.Detail

	for rows.Next() {
		var (
			d       movement.Detail
			method  string
			concept sql.NullString
		)

		if err := rows.Scan(&d.ID, &d.MovementID, &d.Amount, &method, &concept); err != nil {
			return nil, fmt.Errorf("scanning movement detail: %w", err)
		}

		d.PaymentMethod = movement.PaymentMethod(method)
		d.Concept = concept.String
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movement detail rows: %w", err)
	}

	return details, nil
}

func (s *Store) getReceipt(ctx context.Context, movementID uuid.UUID) (*movement.Receipt, error) {
	query := `
		SELECT id, movement_id, user_id, amount, concept, created_at
		FROM receipts
		WHERE movement_id = $1`

	var r movement.Receipt

	err := s.db.QueryRowContext(ctx, query, movementID).
		Scan(&r.ID, &r.MovementID, &r.UserID, &r.Amount, &r.Concept, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting receipt: %w", err)
	}

	return &r, nil
}

type movementTx struct {
	tx *sql.Tx
}

// Begin opens the movement transaction at READ COMMITTED, the store's
// minimum for the detail-sum and uniqueness checks.
func (s *Store) Begin(ctx context.Context) (movement.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("beginning movement tx: %w", err)
	}

	return &movementTx{tx: dbTx}, nil
}

func (mtx *movementTx) Commit() error   { return mtx.tx.Commit() }
func (mtx *movementTx) Rollback() error { return mtx.tx.Rollback() }

func (mtx *movementTx) CreateMovement(ctx context.Context, m *movement.Movement) error {
	query := `
		INSERT INTO movements (amount, is_income, opening_session_id, invoice_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := mtx.tx.QueryRowContext(ctx, query,
		m.Amount,
		m.IsIncome,
		m.OpeningSessionID,
		m.InvoiceID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return classifyMovementError(err)
	}

	drawerQuery := `SELECT cash_drawer_id FROM opening_sessions WHERE id = $1`
	if err := mtx.tx.QueryRowContext(ctx, drawerQuery, m.OpeningSessionID).Scan(&m.CashDrawerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return movement.ErrOpeningSessionUnknown
		}

		return fmt.Errorf("resolving cash drawer: %w", err)
	}

	return nil
}

func classifyMovementError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return movement.ErrAlreadyExists
	case database.IsForeignKeyViolation(err):
		if strings.Contains(database.Constraint(err), "invoice") {
			return movement.ErrInvoiceUnknown
		}

		return movement.ErrOpeningSessionUnknown
	}

	return fmt.Errorf("creating movement: %w", err)
}

// CreateDetails inserts all details in one statement and returns the rows it
// wrote. Rows whose id already exists are skipped and left out of the result.
func (mtx *movementTx) CreateDetails(ctx context.Context, details []*movement.Detail) ([]*movement.Detail, error) {
	if len(details) == 0 {
		return nil, nil
	}

	var sb strings.Builder

	sb.WriteString(`INSERT INTO movement_details (id, movement_id, amount, payment_method, concept) VALUES `)

	args := make([]any, 0, len(details)*5)

	for i, d := range details {
		if i > 0 {
			sb.WriteString(", ")
		}

		n := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5)

		args = append(args, d.ID, d.MovementID, d.Amount, string(d.PaymentMethod), nullString(d.Concept))
	}

	sb.WriteString(` ON CONFLICT (id) DO NOTHING RETURNING id`)

	rows, err := mtx.tx.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("creating movement details: %w", err)
	}
	defer rows.Close()

	written := make(map[uuid.UUID]struct{}, len(details))

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning movement detail id: %w", err)
		}

		written[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("creating movement details: %w", err)
	}

	inserted := make([]*movement.Detail, 0, len(written))

	for _, d := range details {
		if _, ok := written[d.ID]; ok {
			inserted = append(inserted, d)
		}
	}

	return inserted, nil
}

func (mtx *movementTx) CreateReceipt(ctx context.Context, r *movement.Receipt) error {
	query := `
		INSERT INTO receipts (movement_id, user_id, amount, concept, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := mtx.tx.QueryRowContext(ctx, query, r.MovementID, r.UserID, r.Amount, r.Concept).
		Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return movement.ErrAlreadyExists
		}

		return fmt.Errorf("creating receipt: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
