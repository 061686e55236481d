package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInactiveAccount    = errors.New("inactive representative")
	ErrInvalidPhone       = errors.New("invalid phone number")

	ErrInvitationNotFound = errors.New("invalid or already used invitation code")
	ErrCodeCollision      = errors.New("could not generate a unique invitation code")

	ErrChildNotFound   = errors.New("child not found")
	ErrProductNotFound = errors.New("product not found")
)
