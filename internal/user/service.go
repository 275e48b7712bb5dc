package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/caja/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, u *User) error
}

type Service struct {
	repo Repository
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost used when hashing new passwords.
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

// Verify checks username and password and requires the user to hold at least
// the minimum role.
func (s *Service) Verify(ctx context.Context, username, password string, minimum Role) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Unknown users cost one bcrypt comparison, like a wrong password.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
			return nil, ErrInvalidCredentials
		}

		return nil, apperr.Ensure("verifying credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !u.Role.AtLeast(minimum) {
		return nil, ErrInsufficientPrivilege
	}

	return u, nil
}

// dummyHash is a hash of a random password at the service's cost, built once.
func (s *Service) dummyHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.cost)
		if err != nil {
			slog.Error("generating dummy password hash", "error", err)
			return
		}

		s.dummy = hash
	})

	return s.dummy
}

func (s *Service) Create(ctx context.Context, username, password string, role Role) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, apperr.Ensure("creating user", err)
	}

	return u, nil
}
