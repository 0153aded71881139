package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceDecimals is the display precision of the contract balance.
const BalanceDecimals = 4

// Ledger holds the mock contract balance.
type Ledger struct {
	value   decimal.Decimal
	display string
}

// NewLedger creates a ledger showing initial verbatim until the first mutation.
func NewLedger(initial string) (*Ledger, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(initial))
	if err != nil {
		return nil, fmt.Errorf("parsing initial balance: %w", err)
	}
	if v.IsNegative() {
		return nil, errors.New("initial balance must not be negative")
	}
	return &Ledger{value: v, display: strings.TrimSpace(initial)}, nil
}

// Balance returns the display form of the balance.
func (l *Ledger) Balance() string {
	return l.display
}

// Credit adds amount, rounding the result to BalanceDecimals places.
func (l *Ledger) Credit(amount decimal.Decimal) string {
	l.value = l.value.Add(amount).Round(BalanceDecimals)
	l.display = l.value.StringFixed(BalanceDecimals)
	return l.display
}

// Drain empties the balance.
func (l *Ledger) Drain() string {
	l.value = decimal.Zero
	l.display = l.value.StringFixed(BalanceDecimals)
	return l.display
}

// ValueIn converts the balance at the given unit price, with 2 decimals.
func (l *Ledger) ValueIn(price decimal.Decimal) string {
	return l.value.Mul(price).StringFixed(2)
}

// Amount bounds, checked before any arithmetic on the parsed value.
const (
	// MaxAmountDecimals is the finest accepted precision (1 wei).
	MaxAmountDecimals = 18
	// MaxAmountIntegerDigits caps the integer part of an amount.
	MaxAmountIntegerDigits = 30
	// minAmountExponent rejects coefficients padded far below wei precision
	// before they are rescaled.
	minAmountExponent = -64
)

// ParseAmount parses a user-entered amount. It accepts only strictly
// positive decimal numbers within the amount bounds; surrounding whitespace
// is ignored.
func ParseAmount(input string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil || !v.IsPositive() {
		return decimal.Zero, false
	}

	exp := int64(v.Exponent())
	if exp < minAmountExponent {
		return decimal.Zero, false
	}
	if int64(len(v.Coefficient().String()))+exp > MaxAmountIntegerDigits {
		return decimal.Zero, false
	}
	// Trailing zeros past wei precision are fine, other digits are not.
	if exp < -MaxAmountDecimals && !v.Equal(v.Truncate(MaxAmountDecimals)) {
		return decimal.Zero, false
	}
	return v, true
}
