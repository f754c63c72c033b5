package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relquery/sqlsem/sql/types"
)

// S3 — constant cast INT(42) -> NUMERIC(10,3).
func TestCastNumberIntToNumeric(t *testing.T) {
	got, err := types.CastNumber(types.IntDatum(42), types.Int, types.Numeric(10, 3))
	require.NoError(t, err)
	require.Equal(t, int64(42000), got.Bigint)
	require.Equal(t, types.NUMERIC, got.Kind)
}

func TestCastNumberNumericToIntTruncates(t *testing.T) {
	d := types.NumericDatum(types.NUMERIC, 42999)
	got, err := types.CastNumber(d, types.Numeric(10, 3), types.Int)
	require.NoError(t, err)
	require.Equal(t, int32(42), got.Int)
}

func TestCastNumberNumericRescale(t *testing.T) {
	d := types.NumericDatum(types.NUMERIC, 1250) // 1.250 at scale 3
	got, err := types.CastNumber(d, types.Numeric(10, 3), types.Numeric(10, 5))
	require.NoError(t, err)
	require.Equal(t, int64(125000), got.Bigint)

	back, err := types.CastNumber(got, types.Numeric(10, 5), types.Numeric(10, 3))
	require.NoError(t, err)
	require.Equal(t, int64(1250), back.Bigint)
}

func TestCastNumberBigintToDouble(t *testing.T) {
	got, err := types.CastNumber(types.BigintDatum(7), types.Bigint, types.Double)
	require.NoError(t, err)
	require.Equal(t, float64(7), got.Double)
}

// S4 — string truncation.
func TestCastStringValueTruncates(t *testing.T) {
	got := types.CastStringValue("HELLO", types.Char(3))
	require.Equal(t, "HEL", got)
}

func TestCastStringValueTextNeverTruncates(t *testing.T) {
	got := types.CastStringValue("HELLO WORLD", types.TextType)
	require.Equal(t, "HELLO WORLD", got)
}

func TestCastStringValueReusesWhenShortEnough(t *testing.T) {
	got := types.CastStringValue("HI", types.Char(10))
	require.Equal(t, "HI", got)
}
