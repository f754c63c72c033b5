package types

// Datum is a tagged union of scalar values, holding exactly the field
// that Kind names. Fixed-point NUMERIC/DECIMAL values are stored in
// Bigint, scaled by 10^scale (spec section 3). It corresponds to
// Analyzer.cpp's Datum union, minus the union aliasing: Go has no
// native union, so each arm gets its own field.
type Datum struct {
	Kind     Kind
	Smallint int16
	Int      int32
	Bigint   int64
	Float    float32
	Double   float64
	Boolean  bool
	Str      string
}

// SmallintDatum, IntDatum, BigintDatum, FloatDatum, DoubleDatum,
// BoolDatum, StringDatum construct a Datum of the matching Kind.
func SmallintDatum(v int16) Datum { return Datum{Kind: SMALLINT, Smallint: v} }
func IntDatum(v int32) Datum      { return Datum{Kind: INT, Int: v} }
func BigintDatum(v int64) Datum   { return Datum{Kind: BIGINT, Bigint: v} }
func FloatDatum(v float32) Datum  { return Datum{Kind: FLOAT, Float: v} }
func DoubleDatum(v float64) Datum { return Datum{Kind: DOUBLE, Double: v} }
func BoolDatum(v bool) Datum      { return Datum{Kind: BOOLEAN, Boolean: v} }
func StringDatum(v string) Datum  { return Datum{Kind: TEXT, Str: v} }

// NumericDatum constructs a fixed-point Datum, stored as the bigint
// v scaled by 10^scale (the value has already been scaled by the
// caller; this constructor just tags it NUMERIC or DECIMAL).
func NumericDatum(kind Kind, scaledValue int64) Datum {
	return Datum{Kind: kind, Bigint: scaledValue}
}
