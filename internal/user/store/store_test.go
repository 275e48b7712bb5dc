package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caja/internal/user"
	"github.com/MrJamesThe3rd/caja/internal/user/store"
)

func TestStore_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, password_hash, role, created_at\s+FROM users`).
		WithArgs("marta").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at"}).
			AddRow(id.String(), "marta", "$2a$hash", "ADMIN", now))

	u, err := store.New(db).GetByUsername(context.Background(), "marta")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, user.RoleAdmin, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetByUsername_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM users`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err = store.New(db).GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestStore_CreateUser_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("marta", "hash", "CAJERO").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = store.New(db).CreateUser(context.Background(), &user.User{
		Username:     "marta",
		PasswordHash: "hash",
		Role:         user.RoleCashier,
	})
	assert.ErrorIs(t, err, user.ErrAlreadyExists)
}
