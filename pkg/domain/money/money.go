package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by every Amount.
const Scale int32 = 3

// Amount is a fixed-point monetary value with exactly Scale fractional digits.
// Invariants:
//   - The underlying decimal is always rounded to Scale places.
//   - JSON output is a bare number with exactly Scale fractional digits.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{d: decimal.Zero}

// New returns d rounded to Scale places.
func New(d decimal.Decimal) Amount {
	return Amount{d: d.Round(Scale)}
}

// FromInt returns a whole-unit amount.
func FromInt(units int64) Amount {
	return New(decimal.NewFromInt(units))
}

// Parse reads a decimal string such as "777.777".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return New(d), nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

func (a Amount) Add(other Amount) Amount {
	return New(a.d.Add(other.d))
}

func (a Amount) Sub(other Amount) Amount {
	return New(a.d.Sub(other.d))
}

func (a Amount) Cmp(other Amount) int {
	return a.d.Cmp(other.d)
}

func (a Amount) Equal(other Amount) bool {
	return a.d.Equal(other.d)
}

func (a Amount) LessThan(other Amount) bool {
	return a.d.LessThan(other.d)
}

func (a Amount) GreaterThan(other Amount) bool {
	return a.d.GreaterThan(other.d)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Between reports whether min <= a <= max.
func (a Amount) Between(min, max Amount) bool {
	return a.d.GreaterThanOrEqual(min.d) && a.d.LessThanOrEqual(max.d)
}

// String renders the amount with exactly Scale fractional digits.
func (a Amount) String() string {
	return a.d.StringFixed(Scale)
}

// MarshalJSON renders the amount as a JSON number, e.g. 50.000.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = New(d)
	return nil
}

// Value implements driver.Valuer for NUMERIC columns.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (a *Amount) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	*a = New(d)
	return nil
}
