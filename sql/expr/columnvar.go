package expr

import (
	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/types"
)

// ColumnVar references a catalog column through the range table of the
// owning Query: table_id/column_id identify the column, rte_idx names
// the range-table entry it came from. Grounded on Analyzer.cpp's
// ColumnVar and the teacher's sql/expression/get_field.go GetField.
type ColumnVar struct {
	typeInfo types.TypeInfo
	TableID  catalog.TableID
	ColumnID catalog.ColumnID
	RTEIdx   int
}

// NewColumnVar constructs a ColumnVar.
func NewColumnVar(typeInfo types.TypeInfo, tableID catalog.TableID, columnID catalog.ColumnID, rteIdx int) *ColumnVar {
	return &ColumnVar{typeInfo: typeInfo, TableID: tableID, ColumnID: columnID, RTEIdx: rteIdx}
}

var _ Expression = (*ColumnVar)(nil)

func (c *ColumnVar) Type() types.TypeInfo { return c.typeInfo }

func (c *ColumnVar) DeepCopy() (Expression, error) {
	return NewColumnVar(c.typeInfo, c.TableID, c.ColumnID, c.RTEIdx), nil
}

func (c *ColumnVar) CollectRTEIdx(set map[int]struct{}) {
	set[c.RTEIdx] = struct{}{}
}

// GroupPredicates implements the "bare-boolean-column WHERE form" rule
// of spec section 4.3: a bare ColumnVar only counts as a scan predicate
// when its type is BOOLEAN; otherwise it is classified nowhere, per
// Analyzer.cpp's ColumnVar::group_predicates.
func (c *ColumnVar) GroupPredicates(scan, join, constant *[]Expression) {
	if c.typeInfo.Kind == types.BOOLEAN {
		*scan = append(*scan, c)
	}
}

func (c *ColumnVar) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	for _, tle := range tlist {
		other, ok := tle.Expr.(*ColumnVar)
		if !ok {
			continue
		}
		if other.TableID == c.TableID && other.ColumnID == c.ColumnID {
			return other.DeepCopy()
		}
	}
	return nil, ErrInternalError.New("cannot find ColumnVar in targetlist")
}

func (c *ColumnVar) CheckGroupBy(groupBy []Expression) error {
	for _, g := range groupBy {
		other, ok := g.(*ColumnVar)
		if !ok {
			continue
		}
		if other.TableID == c.TableID && other.ColumnID == c.ColumnID {
			return nil
		}
	}
	return ErrGroupByViolation.New(c.TableID, c.ColumnID)
}

func (c *ColumnVar) AddCast(newType types.TypeInfo) (Expression, error) {
	return genericAddCast(c, c.typeInfo, newType)
}
