package core

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidAmount = errors.New("amount must be > 0")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth  = errors.New("month must be YYYY-MM")
	ErrInvalidSort   = errors.New("sort must be one of: date, amount, category")
	ErrInvalidLimit  = errors.New("limit must be >= 0")
	ErrNotFound      = errors.New("expense not found")
)

// IsValidation reports whether err belongs to the bad-input class of
// errors, as opposed to missing records or storage failures.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrEmptyCategory,
		ErrInvalidAmount,
		ErrInvalidDate,
		ErrInvalidMonth,
		ErrInvalidSort,
		ErrInvalidLimit,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Expense is a single expense record. The JSON field names and the date
// format are part of the on-disk contract and must not change.
type Expense struct {
	ID       string  `json:"id"`
	Date     Date    `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Note     string  `json:"note"`
}

// NormalizeCategory lowercases and trims a category label so equal labels
// always group together.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	return nil
}
