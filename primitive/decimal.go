package primitive

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var decimalPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Decimal is a FHIR decimal. It keeps the literal it was parsed from so that
// precision ("1.50" vs "1.5") survives a decode/encode cycle.
type Decimal struct {
	value   decimal.Decimal
	literal string
}

// ParseDecimal parses a JSON number literal.
func ParseDecimal(literal string) (Decimal, error) {
	if !decimalPattern.MatchString(literal) {
		return Decimal{}, fmt.Errorf("invalid decimal %q", literal)
	}
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", literal, err)
	}
	return Decimal{value: d, literal: literal}, nil
}

// MustDecimal is like ParseDecimal but panics on invalid input.
// It is meant for literals in code and tests.
func MustDecimal(literal string) Decimal {
	d, err := ParseDecimal(literal)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimal wraps an arbitrary-precision decimal.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{value: d, literal: d.String()}
}

// DecimalFromFloat converts a float using the shortest exact representation.
func DecimalFromFloat(f float64) Decimal {
	return NewDecimal(decimal.NewFromFloat(f))
}

// Value returns the arbitrary-precision value.
func (d Decimal) Value() decimal.Decimal {
	return d.value
}

// Float64 returns the nearest float64.
func (d Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

// Equal compares numeric values, ignoring the literal form.
func (d Decimal) Equal(other Decimal) bool {
	return d.value.Equal(other.value)
}

// String returns the JSON literal.
func (d Decimal) String() string {
	if d.literal == "" {
		return d.value.String()
	}
	return d.literal
}

// MarshalJSON writes the preserved literal.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON reads a JSON number literal.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDecimal(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
