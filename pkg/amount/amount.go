// Package amount parses monetary values stored as NUMERIC(31,2).
package amount

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Scale is the number of fractional digits kept.
	Scale = 2

	// MaxIntegerDigits bounds the integer part of an amount.
	MaxIntegerDigits = 29
)

var (
	// ErrInvalid indicates the value is not a decimal number.
	ErrInvalid = errors.New("invalid amount")

	// ErrNegative indicates the value is below zero.
	ErrNegative = errors.New("negative amount")

	// ErrOverflow indicates the integer part exceeds MaxIntegerDigits.
	ErrOverflow = errors.New("amount out of range")
)

var limit = decimal.New(1, MaxIntegerDigits)

// Parse reads a decimal string, truncates it to Scale places and rejects
// negative or out of range values.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return check(d)
}

// FromJSON accepts a JSON number or a JSON string holding a number.
func FromJSON(raw json.RawMessage) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Parse(s)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalid, raw)
	}
	return Parse(n.String())
}

// String formats d with exactly Scale fractional digits.
func String(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

func check(d decimal.Decimal) (decimal.Decimal, error) {
	d = d.Truncate(Scale)
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	if d.GreaterThanOrEqual(limit) {
		return decimal.Zero, ErrOverflow
	}
	return d, nil
}
