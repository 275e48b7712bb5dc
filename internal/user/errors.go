package user

import "github.com/MrJamesThe3rd/caja/internal/apperr"

var (
	ErrNotFound              = apperr.NotFound("user not found")
	ErrInvalidCredentials    = apperr.Auth("invalid credentials")
	ErrInsufficientPrivilege = apperr.Auth("insufficient privileges")
	ErrAlreadyExists         = apperr.Conflict("user already exists")
	ErrInvalidRole           = apperr.Validation("invalid role")
	ErrMissingCredentials    = apperr.Validation("username and password are required")
)
