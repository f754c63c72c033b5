package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/expr"
	"github.com/relquery/sqlsem/sql/types"
)

func mustConstant(t *testing.T, ti types.TypeInfo, raw interface{}) *expr.Constant {
	c, err := expr.NewConstant(ti, raw)
	require.NoError(t, err)
	return c
}

// S5 — predicate classification.
func TestGroupPredicatesClassification(t *testing.T) {
	ta := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0) // t1.a
	tb := expr.NewColumnVar(types.Int, catalog.TableID(2), catalog.ColumnID(1), 1) // t2.b
	tc := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(2), 0) // t1.c

	joinPred := expr.NewBinOper(types.Boolean, types.EQ, types.QualifierNone, ta, tb)
	scanPred := expr.NewBinOper(types.Boolean, types.GT, types.QualifierNone, tc, mustConstant(t, types.Int, 5))
	constPred := expr.NewBinOper(types.Boolean, types.EQ, types.QualifierNone,
		mustConstant(t, types.Int, 1), mustConstant(t, types.Int, 1))

	root := expr.NewBinOper(types.Boolean, types.AND, types.QualifierNone,
		expr.NewBinOper(types.Boolean, types.AND, types.QualifierNone, joinPred, scanPred),
		constPred,
	)

	var scan, join, constant []expr.Expression
	root.GroupPredicates(&scan, &join, &constant)

	require.Equal(t, []expr.Expression{scanPred}, scan)
	require.Equal(t, []expr.Expression{joinPred}, join)
	require.Equal(t, []expr.Expression{constPred}, constant)
}

// S6 — normalize reversed predicate.
func TestNormalizeSimplePredicateReversed(t *testing.T) {
	ta := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	five := mustConstant(t, types.Int, 5)
	reversed := expr.NewBinOper(types.Boolean, types.LT, types.QualifierNone, five, ta) // 5 < t1.a

	normalized, rteIdx := reversed.NormalizeSimplePredicate()
	require.NotNil(t, normalized)
	require.Equal(t, 0, rteIdx)
	require.Equal(t, types.GT, normalized.Op)
	require.IsType(t, &expr.ColumnVar{}, normalized.Left)
	require.IsType(t, &expr.Constant{}, normalized.Right)

	// original unchanged
	require.Equal(t, types.LT, reversed.Op)
	require.Same(t, five, reversed.Left)
	require.Same(t, ta, reversed.Right)
}

func TestNormalizeSimplePredicateAlreadyCanonical(t *testing.T) {
	ta := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	five := mustConstant(t, types.Int, 5)
	canonical := expr.NewBinOper(types.Boolean, types.GT, types.QualifierNone, ta, five)

	normalized, rteIdx := canonical.NormalizeSimplePredicate()
	require.NotNil(t, normalized)
	require.Equal(t, 0, rteIdx)
	require.Equal(t, types.GT, normalized.Op)
}

func TestNormalizeSimplePredicateNoMatch(t *testing.T) {
	ta := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	tb := expr.NewColumnVar(types.Int, catalog.TableID(2), catalog.ColumnID(1), 1)
	colToCol := expr.NewBinOper(types.Boolean, types.EQ, types.QualifierNone, ta, tb)

	normalized, rteIdx := colToCol.NormalizeSimplePredicate()
	require.Nil(t, normalized)
	require.Equal(t, -1, rteIdx)
}

func TestBinOperCheckGroupByRecurses(t *testing.T) {
	ta := expr.NewColumnVar(types.Int, catalog.TableID(1), catalog.ColumnID(1), 0)
	tb := expr.NewColumnVar(types.Int, catalog.TableID(2), catalog.ColumnID(1), 1)
	bin := expr.NewBinOper(types.Boolean, types.EQ, types.QualifierNone, ta, tb)

	err := bin.CheckGroupBy([]expr.Expression{ta})
	require.True(t, expr.ErrGroupByViolation.Is(err))

	err = bin.CheckGroupBy([]expr.Expression{ta, tb})
	require.NoError(t, err)
}

func TestSplitConjunction(t *testing.T) {
	ta := expr.NewColumnVar(types.Boolean, catalog.TableID(1), catalog.ColumnID(1), 0)
	tb := expr.NewColumnVar(types.Boolean, catalog.TableID(1), catalog.ColumnID(2), 0)
	tc := expr.NewColumnVar(types.Boolean, catalog.TableID(1), catalog.ColumnID(3), 0)

	conj := expr.NewBinOper(types.Boolean, types.AND, types.QualifierNone,
		expr.NewBinOper(types.Boolean, types.AND, types.QualifierNone, ta, tb),
		tc,
	)

	require.Equal(t, []expr.Expression{ta, tb, tc}, expr.SplitConjunction(conj))

	notConj := expr.NewBinOper(types.Boolean, types.OR, types.QualifierNone, ta, tb)
	require.Equal(t, []expr.Expression{notConj}, expr.SplitConjunction(notConj))
}
