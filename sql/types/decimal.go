package types

import (
	"github.com/shopspring/decimal"
)

// ParseNumericLiteral parses a base-10 string literal into the
// scaled-bigint encoding of a NUMERIC/DECIMAL(dimension, scale) value,
// the representation spec section 3 mandates for fixed-point Datums.
// It is grounded on the teacher's DecimalType_.ConvertToNullDecimal,
// which leans on shopspring/decimal to parse and validate a decimal
// string before the teacher re-encodes it for MySQL wire output; here
// the re-encoding target is the spec's scaled int64 instead of a wire
// value.
func ParseNumericLiteral(s string, target TypeInfo) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrTypeMismatch.New("not a valid numeric literal: " + s)
	}
	scaled := d.Shift(int32(target.Scale))
	if scaled.Exponent() < 0 {
		scaled = scaled.Truncate(0)
	}
	return scaled.IntPart(), nil
}
