package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/expr"
	"github.com/relquery/sqlsem/sql/types"
)

func TestInValuesHasConstant(t *testing.T) {
	arg := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	values := []expr.Expression{
		mustConstant(t, types.Int, 1),
		mustConstant(t, types.Int, 2),
		mustConstant(t, types.Int, 3),
	}
	in := expr.NewInValues(arg, values)

	require.True(t, in.HasConstant(types.IntDatum(2)))
	require.False(t, in.HasConstant(types.IntDatum(4)))
}

func TestInValuesHasConstantStringKind(t *testing.T) {
	arg := expr.NewColumnVar(types.TextType, catalog.TableID(1), catalog.ColumnID(1), 0)
	values := []expr.Expression{
		mustConstant(t, types.TextType, "a"),
		mustConstant(t, types.TextType, "b"),
	}
	in := expr.NewInValues(arg, values)

	require.True(t, in.HasConstant(types.StringDatum("a")))
	require.False(t, in.HasConstant(types.StringDatum("c")))
}

func TestInValuesDeepCopyIndependent(t *testing.T) {
	arg := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	values := []expr.Expression{mustConstant(t, types.Int, 1)}
	in := expr.NewInValues(arg, values)

	copied, err := in.DeepCopy()
	require.NoError(t, err)
	cp := copied.(*expr.InValues)
	require.True(t, cp.HasConstant(types.IntDatum(1)))
	require.NotSame(t, in.ValueList[0], cp.ValueList[0])
}

func TestInValuesGroupPredicatesScan(t *testing.T) {
	arg := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	in := expr.NewInValues(arg, []expr.Expression{mustConstant(t, types.Int, 1)})

	var scan, join, constant []expr.Expression
	in.GroupPredicates(&scan, &join, &constant)
	require.Equal(t, []expr.Expression{in}, scan)
}

func TestInValuesType(t *testing.T) {
	arg := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	in := expr.NewInValues(arg, nil)
	require.Equal(t, types.Boolean, in.Type())
}
