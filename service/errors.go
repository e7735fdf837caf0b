package service

import "errors"

var (
	// ErrInvalidInput is wrapped by validation failures
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized means the credentials or token are missing or wrong
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is authenticated but lacks the role
	ErrForbidden = errors.New("forbidden")
	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")
)
