package expr

import "github.com/relquery/sqlsem/sql/types"

// LikeExpr is a LIKE predicate: arg LIKE like_expr [ESCAPE escape_expr].
// Grounded on Analyzer.cpp's LikeExpr. Only the expression shape is
// modeled here; pattern matching itself is row-data evaluation, which
// spec section 1's Non-goals exclude.
type LikeExpr struct {
	Arg        Expression
	Pattern    Expression
	EscapeExpr Expression // nil if no ESCAPE clause
}

// NewLikeExpr constructs a LikeExpr.
func NewLikeExpr(arg, pattern, escape Expression) *LikeExpr {
	return &LikeExpr{Arg: arg, Pattern: pattern, EscapeExpr: escape}
}

var _ Expression = (*LikeExpr)(nil)

func (l *LikeExpr) Type() types.TypeInfo { return types.Boolean }

func (l *LikeExpr) DeepCopy() (Expression, error) {
	arg, err := l.Arg.DeepCopy()
	if err != nil {
		return nil, err
	}
	pattern, err := l.Pattern.DeepCopy()
	if err != nil {
		return nil, err
	}
	var escape Expression
	if l.EscapeExpr != nil {
		escape, err = l.EscapeExpr.DeepCopy()
		if err != nil {
			return nil, err
		}
	}
	return NewLikeExpr(arg, pattern, escape), nil
}

func (l *LikeExpr) CollectRTEIdx(set map[int]struct{}) {
	l.Arg.CollectRTEIdx(set)
}

func (l *LikeExpr) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(l, l.Arg, scan, join, constant)
}

func (l *LikeExpr) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	arg, err := l.Arg.RewriteWithTargetList(tlist)
	if err != nil {
		return nil, err
	}
	pattern, err := l.Pattern.RewriteWithTargetList(tlist)
	if err != nil {
		return nil, err
	}
	var escape Expression
	if l.EscapeExpr != nil {
		escape, err = l.EscapeExpr.RewriteWithTargetList(tlist)
		if err != nil {
			return nil, err
		}
	}
	return NewLikeExpr(arg, pattern, escape), nil
}

func (l *LikeExpr) CheckGroupBy(groupBy []Expression) error {
	return l.Arg.CheckGroupBy(groupBy)
}

func (l *LikeExpr) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(l, types.Boolean, newType)
}
