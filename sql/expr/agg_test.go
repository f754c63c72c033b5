package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/expr"
	"github.com/relquery/sqlsem/sql/types"
)

func TestAggExprCountStarHasNilArg(t *testing.T) {
	agg := expr.NewAggExpr(types.Bigint, expr.AggCount, nil, false, 0)
	require.Nil(t, agg.Arg)
	require.Equal(t, types.Bigint, agg.Type())

	copied, err := agg.DeepCopy()
	require.NoError(t, err)
	cp := copied.(*expr.AggExpr)
	require.Nil(t, cp.Arg)
}

func TestAggExprSumDeepCopyIndependent(t *testing.T) {
	col := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	agg := expr.NewAggExpr(types.Bigint, expr.AggSum, col, false, 0)

	copied, err := agg.DeepCopy()
	require.NoError(t, err)
	cp := copied.(*expr.AggExpr)
	require.NotSame(t, agg.Arg, cp.Arg)
	require.Equal(t, agg.Arg.(*expr.ColumnVar).ColumnID, cp.Arg.(*expr.ColumnVar).ColumnID)
}

// CheckGroupBy always succeeds: a column under an aggregate is exempt
// from the GROUP BY membership rule, per spec section 4.7.
func TestAggExprCheckGroupByAlwaysSucceeds(t *testing.T) {
	col := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	agg := expr.NewAggExpr(types.Bigint, expr.AggSum, col, false, 0)
	require.NoError(t, agg.CheckGroupBy(nil))
}

func TestAggExprRewriteWithTargetListFindsByAggIdx(t *testing.T) {
	agg := expr.NewAggExpr(types.Bigint, expr.AggCount, nil, false, 1)
	other := expr.NewAggExpr(types.Bigint, expr.AggCount, nil, false, 1)
	tlist := []*expr.TargetEntry{expr.NewTargetEntry("c", other)}

	rewritten, err := agg.RewriteWithTargetList(tlist)
	require.NoError(t, err)
	got := rewritten.(*expr.AggExpr)
	require.Equal(t, 1, got.AggIdx)
	require.NotSame(t, other, got)
}

func TestAggExprRewriteWithTargetListNoMatchIsInternalError(t *testing.T) {
	agg := expr.NewAggExpr(types.Bigint, expr.AggCount, nil, false, 1)
	other := expr.NewAggExpr(types.Bigint, expr.AggCount, nil, false, 2)
	tlist := []*expr.TargetEntry{expr.NewTargetEntry("c", other)}

	_, err := agg.RewriteWithTargetList(tlist)
	require.Error(t, err)
	require.True(t, expr.ErrInternalError.Is(err))
}
