package types

// CastNumber folds a numeric-to-numeric cast of d (whose Kind must
// match from.Kind) into a fresh Datum of kind to.Kind, per spec
// section 4.2. It is ported from Analyzer.cpp's Constant::cast_number,
// fixing the fall-through bug flagged in spec section 9: that source
// has "case kNUMERIC: case kDECIMAL: ... default: assert(false);"
// with no break before the NUMERIC/DECIMAL target case falls into the
// internal-error branch. Here every branch returns immediately after
// producing its target value.
func CastNumber(d Datum, from, to TypeInfo) (Datum, error) {
	switch from.Kind {
	case SMALLINT:
		return castFromInt(int64(d.Smallint), to)
	case INT:
		return castFromInt(int64(d.Int), to)
	case BIGINT:
		return castFromInt(d.Bigint, to)
	case FLOAT:
		return castFromFloat(float64(d.Float), to)
	case DOUBLE:
		return castFromFloat(d.Double, to)
	case NUMERIC, DECIMAL:
		return castFromFixedPoint(d.Bigint, from.Scale, to)
	default:
		return Datum{}, ErrInternalError.New("cast_number: " + from.Kind.String() + " is not numeric")
	}
}

// castFromInt converts an already-widened int64 source value (the
// caller has already narrowed SMALLINT/INT to their Go width, so the
// truncation here is the standard two's-complement narrowing spec
// section 4.2 calls for) to the target numeric kind.
func castFromInt(v int64, to TypeInfo) (Datum, error) {
	switch to.Kind {
	case SMALLINT:
		return SmallintDatum(int16(v)), nil
	case INT:
		return IntDatum(int32(v)), nil
	case BIGINT:
		return BigintDatum(v), nil
	case FLOAT:
		return FloatDatum(float32(v)), nil
	case DOUBLE:
		return DoubleDatum(float64(v)), nil
	case NUMERIC, DECIMAL:
		return NumericDatum(to.Kind, ScaleUp(v, to.Scale)), nil
	default:
		return Datum{}, ErrInternalError.New("cast_number: unreachable target " + to.Kind.String())
	}
}

// castFromFloat converts a float32/float64 source value, already
// widened to float64 by the caller, to the target numeric kind.
func castFromFloat(v float64, to TypeInfo) (Datum, error) {
	switch to.Kind {
	case SMALLINT:
		return SmallintDatum(int16(v)), nil
	case INT:
		return IntDatum(int32(v)), nil
	case BIGINT:
		return BigintDatum(int64(v)), nil
	case FLOAT:
		return FloatDatum(float32(v)), nil
	case DOUBLE:
		return DoubleDatum(v), nil
	case NUMERIC, DECIMAL:
		scaled := v
		for i := 0; i < to.Scale; i++ {
			scaled *= 10
		}
		return NumericDatum(to.Kind, int64(scaled)), nil
	default:
		return Datum{}, ErrInternalError.New("cast_number: unreachable target " + to.Kind.String())
	}
}

// castFromFixedPoint converts a scaled-bigint NUMERIC/DECIMAL source
// value to the target numeric kind, per spec section 4.2's "NUMERIC/
// DECIMAL -> int divides by 10^source.scale first" and its siblings.
func castFromFixedPoint(scaledValue int64, sourceScale int, to TypeInfo) (Datum, error) {
	switch to.Kind {
	case SMALLINT:
		return SmallintDatum(int16(ScaleDown(scaledValue, sourceScale))), nil
	case INT:
		return IntDatum(int32(ScaleDown(scaledValue, sourceScale))), nil
	case BIGINT:
		return BigintDatum(ScaleDown(scaledValue, sourceScale)), nil
	case FLOAT:
		f := float32(scaledValue)
		for i := 0; i < sourceScale; i++ {
			f /= 10
		}
		return FloatDatum(f), nil
	case DOUBLE:
		f := float64(scaledValue)
		for i := 0; i < sourceScale; i++ {
			f /= 10
		}
		return DoubleDatum(f), nil
	case NUMERIC, DECIMAL:
		switch {
		case to.Scale > sourceScale:
			return NumericDatum(to.Kind, ScaleUp(scaledValue, to.Scale-sourceScale)), nil
		case to.Scale < sourceScale:
			return NumericDatum(to.Kind, ScaleDown(scaledValue, sourceScale-to.Scale)), nil
		default:
			return NumericDatum(to.Kind, scaledValue), nil
		}
	default:
		return Datum{}, ErrInternalError.New("cast_number: unreachable target " + to.Kind.String())
	}
}

// CastStringValue folds a string-to-string cast, per spec section 4.2:
// keeping the first to.Dimension bytes of s (the C++ source's
// to.Dimension+1 byte buffer includes the terminating NUL) when the
// target kind isn't TEXT and s is longer than the target's declared
// dimension; otherwise the original string is reused unchanged.
// Ported from Analyzer.cpp's Constant::cast_string.
func CastStringValue(s string, to TypeInfo) string {
	if to.Kind != TEXT && to.Dimension < len(s) {
		return s[:to.Dimension]
	}
	return s
}
