package valueobject

import (
	"fmt"

	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Money is an immutable currency-tagged amount with 2-decimal scale.
// Arithmetic between two Money values requires identical currencies.
// Amounts are rounded half away from zero on construction.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds a Money value. The amount must be non-negative and the
// currency exactly 3 letters (normalized to uppercase).
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", domain.ErrInvalidInput)
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount.Round(2), currency: cur}, nil
}

// NewMoneyUSD builds a USD Money value.
func NewMoneyUSD(amount decimal.Decimal) (Money, error) {
	return NewMoney(amount, "USD")
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// MoneyFromStore rehydrates a Money value from trusted, previously validated
// storage without re-running the constructor checks.
func MoneyFromStore(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: currency}
}

func normalizeCurrency(currency string) (string, error) {
	if len(currency) != 3 {
		return "", fmt.Errorf("%w: currency must be a 3-letter code, got %q", domain.ErrInvalidInput, currency)
	}
	up := make([]byte, 3)
	for i := 0; i < 3; i++ {
		c := currency[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return "", fmt.Errorf("%w: currency must be letters only, got %q", domain.ErrInvalidInput, currency)
		}
		up[i] = c
	}
	return string(up), nil
}

// Amount returns the decimal amount (already rounded to 2 decimals).
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the 3-letter uppercase currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", domain.ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

// Add returns m + other. Fails on differing currencies.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount).Round(2), currency: m.currency}, nil
}

// Sub returns m - other. Fails on differing currencies or a negative result.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	res := m.amount.Sub(other.amount)
	if res.IsNegative() {
		return Money{}, fmt.Errorf("%w: result would be negative", domain.ErrInvalidInput)
	}
	return Money{amount: res.Round(2), currency: m.currency}, nil
}

// Mul returns m scaled by factor. A scalar has no currency, so no check applies.
func (m Money) Mul(factor decimal.Decimal) (Money, error) {
	res := m.amount.Mul(factor)
	if res.IsNegative() {
		return Money{}, fmt.Errorf("%w: result would be negative", domain.ErrInvalidInput)
	}
	return Money{amount: res.Round(2), currency: m.currency}, nil
}

// Div returns m divided by divisor. Fails on a zero divisor.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, domain.ErrDivisionByZero
	}
	res := m.amount.Div(divisor)
	if res.IsNegative() {
		return Money{}, fmt.Errorf("%w: result would be negative", domain.ErrInvalidInput)
	}
	return Money{amount: res.Round(2), currency: m.currency}, nil
}

// GreaterThan compares amounts. Fails on differing currencies.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// LessThan compares amounts. Fails on differing currencies.
func (m Money) LessThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// GreaterOrEqual compares amounts. Fails on differing currencies.
func (m Money) GreaterOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// LessOrEqual compares amounts. Fails on differing currencies.
func (m Money) LessOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThanOrEqual(other.amount), nil
}

// Equal is structural equality (amount and currency). Never fails: two values
// in different currencies are simply not equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders "12.34 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}
