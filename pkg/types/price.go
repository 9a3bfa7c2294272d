package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a currency amount. Arithmetic is exact decimal arithmetic so that
// ledger totals always equal the sum of their records. A Price encodes as a
// bare JSON number.
type Price struct {
	decimal.Decimal
}

// NewPrice wraps d as a Price.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// PriceFromFloat converts f to a Price.
func PriceFromFloat(f float64) Price {
	return Price{Decimal: decimal.NewFromFloat(f)}
}

// ParsePrice parses a decimal string such as "3.49".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return Price{Decimal: d}, nil
}

// Add returns p + q.
func (p Price) Add(q Price) Price {
	return Price{Decimal: p.Decimal.Add(q.Decimal)}
}

// Equal reports whether p and q represent the same amount.
func (p Price) Equal(q Price) bool {
	return p.Decimal.Equal(q.Decimal)
}

// MarshalJSON encodes the amount as a JSON number rather than the quoted
// string decimal.Decimal produces by default.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.Decimal.UnmarshalJSON(data)
}

// String formats the amount with two fractional digits.
func (p Price) String() string {
	return p.Decimal.StringFixed(2)
}
