package taxreport

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value as an exact amount of cents.
//
// The bank export is denominated in EUR; amounts are parsed exactly once at
// the ingestion boundary and everything downstream is integer arithmetic.
type Money struct {
	cents int64
}

// Cents returns a Money worth 'c' cents.
func Cents(c int64) Money { return Money{cents: c} }

// Cents returns the amount in cents.
func (m Money) Cents() int64 { return m.cents }

// ParseAmount parses a decimal amount into Money.
//
// The bank export uses a comma as decimal separator ("-12,34"); a dot is
// accepted too. Parsing is exact and rounds to cents once (half away from
// zero); no floating point value survives past this boundary.
func ParseAmount(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{cents: d.Shift(2).Round(0).IntPart()}, nil
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{cents: m.cents + n.cents} }
func (m Money) Sub(n Money) Money { return Money{cents: m.cents - n.cents} }

func (m Money) Neg() Money { return Money{cents: -m.cents} }

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	if m.cents < 0 {
		return m.Neg()
	}
	return m
}

func (m Money) Equal(n Money) bool { return m.cents == n.cents }
func (m Money) IsZero() bool       { return m.cents == 0 }
func (m Money) IsNegative() bool   { return m.cents < 0 }
func (m Money) IsPositive() bool   { return m.cents > 0 }

// String returns the string representation of the money value, formatted
// with the EUR currency metadata.
func (m Money) String() string {
	return money.New(m.cents, money.EUR).Display()
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.cents == 0 {
		return "-"
	}
	if m.cents > 0 {
		return "+" + m.String()
	}
	return m.String()
}
