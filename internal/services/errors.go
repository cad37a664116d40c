package services

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is; the messages are the client-facing text.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already exists")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrProductNotFound  = errors.New("product not found")

	// ErrInvalidCredentials deliberately does not say whether the username or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
