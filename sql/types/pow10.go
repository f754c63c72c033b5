package types

import "math/big"

// ScaleUp multiplies v by 10^n, returning the result narrowed back to
// int64. Used to fold an integer constant into the scaled-bigint
// encoding of a NUMERIC/DECIMAL value (spec section 4.2: "int ->
// NUMERIC/DECIMAL multiplies by 10^target.scale and stores in bigint").
// math/big.Int is used instead of a fixed power-of-ten table because
// 10^19 itself overflows int64, so repeated int64 multiplication by 10
// would silently wrap for the upper end of the dimension<=19 invariant;
// big.Int keeps every intermediate exact.
func ScaleUp(v int64, n int) int64 {
	if n <= 0 {
		return v
	}
	bv := big.NewInt(v)
	bv.Mul(bv, pow10(n))
	return bv.Int64()
}

// ScaleDown divides v by 10^n using truncating integer division,
// mirroring Analyzer.cpp's repeated "bigintval /= 10" loop when
// narrowing a NUMERIC/DECIMAL value down in scale.
func ScaleDown(v int64, n int) int64 {
	if n <= 0 {
		return v
	}
	bv := big.NewInt(v)
	bv.Quo(bv, pow10(n))
	return bv.Int64()
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
