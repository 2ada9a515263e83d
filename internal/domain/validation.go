package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 500
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateMemberName validates a member display name.
func ValidateMemberName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrEmptyName
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrEmptyName, MaxNameLength)
	}

	return nil
}

// ValidateEmail validates email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateAmount validates a transaction amount. Zero is allowed;
// the sign of an entry is carried by its type, never by the number.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDescription validates transaction description text.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return ErrEmptyDescription
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrEmptyDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateTransaction validates the fields the entry form would have
// enforced: known type, known category, non-negative amount and a
// non-empty description.
func ValidateTransaction(t *Transaction) error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}

	if !ValidCategory(t.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if err := ValidateDescription(t.Description); err != nil {
		return err
	}

	if t.Date.IsZero() {
		return ErrInvalidDate
	}

	return nil
}
