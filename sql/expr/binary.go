package expr

import "github.com/relquery/sqlsem/sql/types"

// BinOper is a binary operator node: logical, comparison, or
// arithmetic, optionally qualified (ANY/ALL) for a subquery
// comparison. Grounded on Analyzer.cpp's BinOper.
type BinOper struct {
	typeInfo  types.TypeInfo
	Op        types.Op
	Qualifier types.Qualifier
	Left      Expression
	Right     Expression
}

// NewBinOper constructs a BinOper directly from already-unified
// operand types and a precomputed result type. Callers that need
// spec section 4.1's type unification and implicit CAST insertion
// should go through sql/analyzer's AnalyzeBinOp instead, which calls
// this after resolving result/newLeft/newRight.
func NewBinOper(typeInfo types.TypeInfo, op types.Op, qualifier types.Qualifier, left, right Expression) *BinOper {
	return &BinOper{typeInfo: typeInfo, Op: op, Qualifier: qualifier, Left: left, Right: right}
}

var _ Expression = (*BinOper)(nil)

func (b *BinOper) Type() types.TypeInfo { return b.typeInfo }

func (b *BinOper) DeepCopy() (Expression, error) {
	left, err := b.Left.DeepCopy()
	if err != nil {
		return nil, err
	}
	right, err := b.Right.DeepCopy()
	if err != nil {
		return nil, err
	}
	return NewBinOper(b.typeInfo, b.Op, b.Qualifier, left, right), nil
}

func (b *BinOper) CollectRTEIdx(set map[int]struct{}) {
	b.Left.CollectRTEIdx(set)
	b.Right.CollectRTEIdx(set)
}

// GroupPredicates flattens a top-level AND into its operands before
// classifying them independently, per spec section 4.3; any other
// operator (OR, a comparison, ...) is classified as a whole. Ported
// from Analyzer.cpp's BinOper::group_predicates.
func (b *BinOper) GroupPredicates(scan, join, constant *[]Expression) {
	if b.Op == types.AND {
		b.Left.GroupPredicates(scan, join, constant)
		b.Right.GroupPredicates(scan, join, constant)
		return
	}
	set := make(map[int]struct{})
	b.Left.CollectRTEIdx(set)
	b.Right.CollectRTEIdx(set)
	switch {
	case len(set) > 1:
		*join = append(*join, b)
	case len(set) == 1:
		*scan = append(*scan, b)
	default:
		*constant = append(*constant, b)
	}
}

func (b *BinOper) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	left, err := b.Left.RewriteWithTargetList(tlist)
	if err != nil {
		return nil, err
	}
	right, err := b.Right.RewriteWithTargetList(tlist)
	if err != nil {
		return nil, err
	}
	return NewBinOper(b.typeInfo, b.Op, b.Qualifier, left, right), nil
}

func (b *BinOper) CheckGroupBy(groupBy []Expression) error {
	if err := b.Left.CheckGroupBy(groupBy); err != nil {
		return err
	}
	return b.Right.CheckGroupBy(groupBy)
}

func (b *BinOper) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(b, b.typeInfo, newType)
}

// NormalizeSimplePredicate recognizes the form "column <op> constant"
// or "constant <op> column" with op a comparison operator, per spec
// section 4.4. On a match it returns a deep copy in the canonical
// "column <op> constant" orientation (commuting the operator if the
// input was reversed) and the column's RTEIdx; on no match it returns
// (nil, -1). Ported from Analyzer.cpp's BinOper::normalize_simple_predicate.
func (b *BinOper) NormalizeSimplePredicate() (*BinOper, int) {
	if !b.Op.IsComparisonOp() {
		return nil, -1
	}
	if cv, ok := b.Left.(*ColumnVar); ok {
		if _, ok := b.Right.(*Constant); ok {
			// Left/Right are a ColumnVar and a Constant here, neither of
			// which can ever fail to deep-copy (only Subquery does).
			cp, _ := b.DeepCopy()
			return cp.(*BinOper), cv.RTEIdx
		}
	}
	if cv, ok := b.Right.(*ColumnVar); ok {
		if _, ok := b.Left.(*Constant); ok {
			left, _ := b.Right.DeepCopy()
			right, _ := b.Left.DeepCopy()
			return NewBinOper(b.typeInfo, types.CommuteComparison(b.Op), b.Qualifier, left, right), cv.RTEIdx
		}
	}
	return nil, -1
}
