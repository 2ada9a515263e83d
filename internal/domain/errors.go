package domain

import "errors"

var (
	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidDate         = errors.New("invalid date")
	ErrEmptyDescription    = errors.New("description cannot be empty")

	// Member errors
	ErrMemberNotFound = errors.New("member not found")
	ErrEmptyName      = errors.New("member name cannot be empty")
	ErrInvalidEmail   = errors.New("invalid email format")
)
