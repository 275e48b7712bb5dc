package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
	"github.com/MrJamesThe3rd/caja/internal/user"
)

func hashed(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleCashier))
	assert.False(t, user.RoleCashier.AtLeast(user.RoleAdmin))
	assert.False(t, user.Role("GUEST").AtLeast(user.RoleCashier))
}

func TestService_Verify(t *testing.T) {
	admin := &user.User{ID: uuid.New(), Username: "admin", PasswordHash: hashed(t, "s3cret"), Role: user.RoleAdmin}
	cashier := &user.User{ID: uuid.New(), Username: "caja1", PasswordHash: hashed(t, "pass"), Role: user.RoleCashier}

	type testCase struct {
		name      string
		username  string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			username: "admin",
			password: "s3cret",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByUsername(gomock.Any(), "admin").Return(admin, nil)
			},
		},
		{
			name:     "WrongPassword",
			username: "admin",
			password: "nope",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByUsername(gomock.Any(), "admin").Return(admin, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "UnknownUser",
			username: "ghost",
			password: "x",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			name:     "InsufficientRole",
			username: "caja1",
			password: "pass",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByUsername(gomock.Any(), "caja1").Return(cashier, nil)
			},
			wantErr: user.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := user.NewService(repo).WithCost(bcrypt.MinCost).
				Verify(context.Background(), tt.username, tt.password, user.RoleAdmin)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, admin.ID, got.ID)
		})
	}
}

func TestService_Verify_UnknownUserPaysHashCost(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, user.ErrNotFound).Times(2)

	svc := user.NewService(repo).WithCost(bcrypt.MinCost + 1)

	for range 2 {
		_, err := svc.Verify(context.Background(), "ghost", "x", user.RoleCashier)
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	}

	dummy := svc.DummyHash()
	cost, err := bcrypt.Cost(dummy)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	// Built once and reused.
	assert.Equal(t, dummy, svc.DummyHash())
	assert.ErrorIs(t, bcrypt.CompareHashAndPassword(dummy, []byte("x")), bcrypt.ErrMismatchedHashAndPassword)
}

func TestService_Verify_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, errors.New("db down"))

	_, err := user.NewService(repo).Verify(context.Background(), "admin", "x", user.RoleAdmin)
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			return nil
		})

	svc := user.NewService(repo).WithCost(bcrypt.MinCost)

	u, err := svc.Create(context.Background(), "marta", "s3cret", user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := user.NewService(user.NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), "", "x", user.RoleAdmin)
	assert.ErrorIs(t, err, user.ErrMissingCredentials)

	_, err = svc.Create(context.Background(), "marta", "x", user.Role("ROOT"))
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
