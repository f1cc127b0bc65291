package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingValue = errors.New("no monetary value provided")
	ErrInvalidValue = errors.New("invalid monetary value")
)

// Parse converts user-supplied monetary input into a decimal.
// Accepts either "," or "." as the fractional separator ("10,50" and
// "10.50" are equivalent). Error handling stays with the caller so it
// can produce a message specific to the field being parsed.
func Parse(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return decimal.Zero, ErrMissingValue
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrInvalidValue
	}

	return value, nil
}
