package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Money is a non-negative fixed-point monetary amount.
// The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

var ZeroMoney = Money{}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func ParseMoney(value string) (Money, error) {
	d, err := decimal.Parse(value)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	if d.IsNeg() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d}, nil
}

// MustParseMoney panics on a malformed amount. Use in tests and constants only.
func MustParseMoney(value string) Money {
	m, err := ParseMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPos()
}

func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.Cmp(other.amount) > 0
}

func (m Money) Equal(other Money) bool {
	return m.amount.Cmp(other.amount) == 0
}

func (m Money) Add(other Money) (Money, error) {
	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("money add: %w", err)
	}
	return Money{amount: sum}, nil
}

func (m Money) Multiply(quantity int) (Money, error) {
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return Money{}, fmt.Errorf("money multiplier %d: %w", quantity, err)
	}
	product, err := m.amount.Mul(q)
	if err != nil {
		return Money{}, fmt.Errorf("money multiply: %w", err)
	}
	return Money{amount: product}, nil
}

// String renders the amount with exactly two fractional digits,
// the form used in domain error messages and API responses.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
