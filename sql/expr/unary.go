package expr

import "github.com/relquery/sqlsem/sql/types"

// UnaryOp identifies the operator carried by a UOper node.
type UnaryOp int

const (
	CAST UnaryOp = iota
	NOT
	UnaryMinus
)

// UOper is a unary operator node: CAST, boolean NOT, or arithmetic
// negation. Grounded on Analyzer.cpp's UOper.
type UOper struct {
	typeInfo types.TypeInfo
	Op       UnaryOp
	Operand  Expression
}

// NewUOper constructs a UOper.
func NewUOper(typeInfo types.TypeInfo, op UnaryOp, operand Expression) *UOper {
	return &UOper{typeInfo: typeInfo, Op: op, Operand: operand}
}

var _ Expression = (*UOper)(nil)

func (u *UOper) Type() types.TypeInfo { return u.typeInfo }

func (u *UOper) DeepCopy() (Expression, error) {
	operand, err := u.Operand.DeepCopy()
	if err != nil {
		return nil, err
	}
	return NewUOper(u.typeInfo, u.Op, operand), nil
}

func (u *UOper) CollectRTEIdx(set map[int]struct{}) {
	u.Operand.CollectRTEIdx(set)
}

func (u *UOper) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(u, u.Operand, scan, join, constant)
}

func (u *UOper) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	rewritten, err := u.Operand.RewriteWithTargetList(tlist)
	if err != nil {
		return nil, err
	}
	return NewUOper(u.typeInfo, u.Op, rewritten), nil
}

func (u *UOper) CheckGroupBy(groupBy []Expression) error {
	return u.Operand.CheckGroupBy(groupBy)
}

func (u *UOper) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(u, u.typeInfo, newType)
}

// genericAddCast is Expr::add_cast from Analyzer.cpp: if newType is
// already the node's type, the node is returned unchanged (a no-op
// cast); otherwise it is wrapped in a fresh CAST UOper. Every variant
// that doesn't fold literal casts itself (everything but Constant)
// falls back to this.
func genericAddCast(self Expression, current, newType types.TypeInfo) (Expression, error) {
	if newType == current {
		return self, nil
	}
	return NewUOper(newType, CAST, self), nil
}
