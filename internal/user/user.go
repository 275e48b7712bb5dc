package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is a privilege level. Roles are ordered: a higher role satisfies every
// requirement of a lower one.
type Role string

const (
	RoleCashier Role = "CAJERO"
	RoleAdmin   Role = "ADMIN"
)

var roleRank = map[Role]int{
	RoleCashier: 1,
	RoleAdmin:   2,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r carries the privileges of minimum.
func (r Role) AtLeast(minimum Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}

	return rank >= roleRank[minimum]
}

// User is an operator of the till.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
