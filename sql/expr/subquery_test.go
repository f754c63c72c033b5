package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relquery/sqlsem/sql/expr"
	"github.com/relquery/sqlsem/sql/types"
)

func TestSubqueryDeepCopyUnsupported(t *testing.T) {
	sq := expr.NewSubquery(types.Int, nil)
	_, err := sq.DeepCopy()
	require.True(t, expr.ErrUnsupported.Is(err))
}

func TestSubqueryAddCastUnsupported(t *testing.T) {
	sq := expr.NewSubquery(types.Int, nil)
	_, err := sq.AddCast(types.Bigint)
	require.True(t, expr.ErrUnsupported.Is(err))
}

func TestSubqueryCollectRTEIdxNoOp(t *testing.T) {
	sq := expr.NewSubquery(types.Int, nil)
	set := map[int]struct{}{}
	sq.CollectRTEIdx(set)
	require.Empty(t, set)
}

func TestSubqueryCheckGroupByAlwaysSucceeds(t *testing.T) {
	sq := expr.NewSubquery(types.Int, nil)
	require.NoError(t, sq.CheckGroupBy(nil))
}
