package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caja/internal/bank"
	"github.com/MrJamesThe3rd/caja/internal/bank/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_CreateBank(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "Success"},
		{name: "Duplicate", dbErr: &pgconn.PgError{Code: "23505"}, wantErr: bank.ErrBankExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			exp := mock.ExpectQuery(`INSERT INTO banks \(name\)`).WithArgs("Banco Nación")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.NewString(), time.Now()))
			}

			b := &bank.Bank{Name: "Banco Nación"}
			err := s.CreateBank(context.Background(), b)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, b.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_DeleteBank(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "Deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM banks WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM banks`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: bank.ErrNotFound,
		},
		{
			name: "Referenced",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM banks`).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			wantErr: bank.ErrBankInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)
			tt.setup(mock)

			err := s.DeleteBank(context.Background(), uuid.New())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestStore_CreateAccount_UnknownBank(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(`INSERT INTO bank_accounts`).WillReturnError(&pgconn.PgError{Code: "23503"})

	err := s.CreateAccount(context.Background(), &bank.Account{BankID: uuid.New(), Number: "001-123"})
	assert.ErrorIs(t, err, bank.ErrNotFound)
}

func TestStore_ListAccounts(t *testing.T) {
	s, mock := newStore(t)

	bankID := uuid.New()

	mock.ExpectQuery(`SELECT id, bank_id, number, balance, created_at FROM bank_accounts`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bank_id", "number", "balance", "created_at"}).
			AddRow(uuid.NewString(), bankID.String(), "001-123", "10500.75", time.Now()))

	accounts, err := s.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, bankID, accounts[0].BankID)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("10500.75")))
}

func TestStore_ChequeTx(t *testing.T) {
	s, mock := newStore(t)

	accountID, bankID := uuid.New(), uuid.New()
	issuedAt := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bank_accounts WHERE id = \$1 FOR UPDATE`).
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bank_id", "number", "balance", "created_at"}).
			AddRow(accountID.String(), bankID.String(), "001-123", "100", time.Now()))
	mock.ExpectQuery(`INSERT INTO cheques`).
		WithArgs("00012345", false, sqlmock.AnyArg(), issuedAt, "Proveedor SA", bankID, accountID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.NewString(), time.Now()))
	mock.ExpectExec(`UPDATE bank_accounts\s+SET balance = balance \+ \$1`).
		WithArgs(sqlmock.AnyArg(), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()

	tx, err := s.BeginCheque(ctx)
	require.NoError(t, err)

	_, err = tx.GetAccountForUpdate(ctx, accountID)
	require.NoError(t, err)

	c := &bank.Cheque{
		Number:    "00012345",
		Amount:    decimal.NewFromInt(40),
		IssuedAt:  issuedAt,
		Involved:  "Proveedor SA",
		BankID:    bankID,
		AccountID: accountID,
	}
	require.NoError(t, tx.CreateCheque(ctx, c))
	require.NoError(t, tx.AdjustAccountBalance(ctx, accountID, c.Delta()))
	require.NoError(t, tx.Commit())

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ChequeTx_Errors(t *testing.T) {
	t.Run("UnknownAccount", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		tx, err := s.BeginCheque(context.Background())
		require.NoError(t, err)

		_, err = tx.GetAccountForUpdate(context.Background(), uuid.New())
		assert.ErrorIs(t, err, bank.ErrAccountNotFound)
	})

	t.Run("DuplicateNumber", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO cheques`).WillReturnError(&pgconn.PgError{Code: "23505"})

		tx, err := s.BeginCheque(context.Background())
		require.NoError(t, err)

		err = tx.CreateCheque(context.Background(), &bank.Cheque{Number: "1", Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, bank.ErrChequeExists)
	})
}
