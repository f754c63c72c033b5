package expr

import (
	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/types"
)

// Var is a parameter/projection-slot reference: like ColumnVar, it
// names a table_id/column_id pair, but Varno addresses a slot in an
// already-built projection rather than a range-table entry, and
// IsInner marks whether the slot comes from the inner side of a join.
// Grounded on Analyzer.cpp's Var.
type Var struct {
	typeInfo types.TypeInfo
	TableID  catalog.TableID
	ColumnID catalog.ColumnID
	IsInner  bool
	Varno    int
}

// NewVar constructs a Var.
func NewVar(typeInfo types.TypeInfo, tableID catalog.TableID, columnID catalog.ColumnID, isInner bool, varno int) *Var {
	return &Var{typeInfo: typeInfo, TableID: tableID, ColumnID: columnID, IsInner: isInner, Varno: varno}
}

var _ Expression = (*Var)(nil)

func (v *Var) Type() types.TypeInfo { return v.typeInfo }

func (v *Var) DeepCopy() (Expression, error) {
	return NewVar(v.typeInfo, v.TableID, v.ColumnID, v.IsInner, v.Varno), nil
}

// CollectRTEIdx is a no-op: a Var addresses a projection slot, not a
// range-table entry, so it never contributes to the RTE set a
// predicate's leaves reference.
func (v *Var) CollectRTEIdx(set map[int]struct{}) {}

func (v *Var) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(v, v, scan, join, constant)
}

func (v *Var) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	return v.DeepCopy()
}

func (v *Var) CheckGroupBy(groupBy []Expression) error {
	return nil
}

func (v *Var) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(v, v.typeInfo, newType)
}
