package expr

import "github.com/relquery/sqlsem/sql/types"

// AggFunc identifies the aggregate function carried by an AggExpr.
type AggFunc int

const (
	AggCount AggFunc = iota
	AggCountDistinct
	AggSum
	AggAvg
	AggMin
	AggMax
)

// AggExpr is an aggregate function call over Arg (nil for COUNT(*)).
// AggIdx names the projection slot this aggregate occupies in its
// owning query's target list, the same role table_id/column_id play
// for a ColumnVar; RewriteWithTargetList scans by AggIdx identity
// rather than by structural equality of Arg. Grounded on Analyzer.cpp's
// AggExpr. An AggExpr can only ever appear directly in a target list
// or HAVING clause; spec section 4.7's check_group_by rule treats any
// column reference nested inside one as already satisfied, which is
// why CheckGroupBy below is a no-op rather than delegating to Arg.
type AggExpr struct {
	typeInfo types.TypeInfo
	Func     AggFunc
	Arg      Expression // nil for COUNT(*)
	Distinct bool
	AggIdx   int
}

// NewAggExpr constructs an AggExpr.
func NewAggExpr(typeInfo types.TypeInfo, fn AggFunc, arg Expression, distinct bool, aggIdx int) *AggExpr {
	return &AggExpr{typeInfo: typeInfo, Func: fn, Arg: arg, Distinct: distinct, AggIdx: aggIdx}
}

var _ Expression = (*AggExpr)(nil)

func (a *AggExpr) Type() types.TypeInfo { return a.typeInfo }

func (a *AggExpr) DeepCopy() (Expression, error) {
	if a.Arg == nil {
		return NewAggExpr(a.typeInfo, a.Func, nil, a.Distinct, a.AggIdx), nil
	}
	arg, err := a.Arg.DeepCopy()
	if err != nil {
		return nil, err
	}
	return NewAggExpr(a.typeInfo, a.Func, arg, a.Distinct, a.AggIdx), nil
}

func (a *AggExpr) CollectRTEIdx(set map[int]struct{}) {
	if a.Arg != nil {
		a.Arg.CollectRTEIdx(set)
	}
}

// GroupPredicates classifies an AggExpr as a whole rather than
// recursing into Arg. Per Analyzer.cpp, AggExpr never appears in a
// WHERE or JOIN ON clause (only in target lists and HAVING), so in
// practice group_predicates never visits one; this mirrors the
// teacher's fallback behavior of classifying unrecognized nodes by
// their own RTE footprint.
func (a *AggExpr) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(a, a, scan, join, constant)
}

// RewriteWithTargetList scans tlist for the AggExpr whose AggIdx
// matches the receiver's and returns its deep copy, per spec section
// 4.5: "AggExpr: scan tlist for an AggExpr whose agg_idx matches;
// return its deep copy". This is the same by-identity lookup
// ColumnVar.RewriteWithTargetList performs by (table_id, column_id),
// not a rewrite of Arg in place: once a query's projection has been
// built, a HAVING/ORDER BY reference to an aggregate must resolve to
// that materialized slot, not recompute its own copy of the aggregate.
func (a *AggExpr) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	for _, tle := range tlist {
		other, ok := tle.Expr.(*AggExpr)
		if !ok {
			continue
		}
		if other.AggIdx == a.AggIdx {
			return other.DeepCopy()
		}
	}
	return nil, ErrInternalError.New("cannot find AggExpr in targetlist")
}

// CheckGroupBy always succeeds: per spec section 4.7, a column
// reference nested inside an aggregate is exempt from the GROUP BY
// membership rule. Ported from Analyzer.cpp's AggExpr::check_group_by,
// which returns without descending into the argument.
func (a *AggExpr) CheckGroupBy(groupBy []Expression) error {
	return nil
}

func (a *AggExpr) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(a, a.typeInfo, newType)
}
