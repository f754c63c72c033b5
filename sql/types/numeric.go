package types

// CommonNumericType computes the smallest SQL numeric type that
// losslessly contains both a and b, per the promotion lattice of spec
// section 4.1. It is commutative by construction and is ported
// branch-for-branch from Analyzer.cpp's BinOper::common_numeric_type,
// generalized into symmetric dispatch instead of one switch per left
// kind.
func CommonNumericType(a, b TypeInfo) (TypeInfo, error) {
	if !a.IsNumber() {
		return TypeInfo{}, ErrInternalError.New("common_numeric_type: " + a.Kind.String() + " is not numeric")
	}
	if !b.IsNumber() {
		return TypeInfo{}, ErrInternalError.New("common_numeric_type: " + b.Kind.String() + " is not numeric")
	}

	if a.Kind == b.Kind {
		if a.Kind.IsFixedPoint() {
			return TypeInfo{
				Kind:      a.Kind,
				Dimension: max(a.Dimension, b.Dimension),
				Scale:     max(a.Scale, b.Scale),
			}, nil
		}
		return TypeInfo{Kind: a.Kind}, nil
	}

	if t, ok := unifyOrdered(a, b); ok {
		return t, nil
	}
	if t, ok := unifyOrdered(b, a); ok {
		return t, nil
	}
	return TypeInfo{}, ErrInternalError.New("common_numeric_type: unreachable lattice entry for " + a.Kind.String() + " and " + b.Kind.String())
}

// unifyOrdered handles the rules of spec section 4.1 that are naturally
// stated for one specific ordering of (x, y); the caller tries both
// orderings of its two operands since the lattice is commutative.
func unifyOrdered(x, y TypeInfo) (TypeInfo, bool) {
	switch {
	case x.Kind.IsInteger() && y.Kind.IsInteger():
		return TypeInfo{Kind: WiderInteger(x.Kind, y.Kind)}, true

	case x.Kind.IsInteger() && y.Kind == FLOAT:
		if x.Kind == BIGINT {
			return Double, true
		}
		return Float, true

	case x.Kind.IsInteger() && y.Kind == DOUBLE:
		return Double, true

	case x.Kind == FLOAT && y.Kind == DOUBLE:
		return Double, true

	case x.Kind.IsFixedPoint() && (y.Kind == FLOAT || y.Kind == DOUBLE):
		return Double, true

	case x.Kind.IsInteger() && y.Kind.IsFixedPoint():
		return intNumericUnify(x.Kind, y), true

	case x.Kind.IsFixedPoint() && y.Kind.IsFixedPoint():
		scale := max(x.Scale, y.Scale)
		dimension := max(x.Dimension-x.Scale, y.Dimension-y.Scale) + scale
		return Numeric(dimension, scale), true
	}
	return TypeInfo{}, false
}

// intNumericUnify computes the common type of an integer kind and a
// NUMERIC/DECIMAL type, per spec section 4.1's SMALLINT/INT/BIGINT x
// NUMERIC rules.
func intNumericUnify(intKind Kind, numeric TypeInfo) TypeInfo {
	scale := numeric.Scale
	var dimension int
	switch intKind {
	case SMALLINT:
		dimension = max(5+scale, numeric.Dimension)
	case INT:
		dimension = max(min(19, 10+scale), numeric.Dimension)
	case BIGINT:
		dimension = MaxNumericDimension
	}
	return Numeric(dimension, scale)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
