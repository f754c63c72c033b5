package expr

import "github.com/relquery/sqlsem/sql/types"

// Subquery wraps a nested query appearing in an expression context
// (scalar subquery, or the right-hand side of an IN/ANY/ALL
// comparison). Grounded on Analyzer.cpp's Subquery. The nested query
// itself is opaque here (sql/query.Query, imported by callers, not by
// this package, to avoid a cycle); analysis of its body is out of
// scope for an expression node and belongs to sql/query and
// sql/analyzer.
type Subquery struct {
	typeInfo types.TypeInfo
	Query    interface{} // *query.Query; kept untyped to avoid an import cycle
}

// NewSubquery constructs a Subquery.
func NewSubquery(typeInfo types.TypeInfo, q interface{}) *Subquery {
	return &Subquery{typeInfo: typeInfo, Query: q}
}

var _ Expression = (*Subquery)(nil)

func (s *Subquery) Type() types.TypeInfo { return s.typeInfo }

// DeepCopy is unsupported, matching Analyzer.cpp's Subquery::deep_copy
// (CHECK(false)): the analyzer never needs to duplicate a subquery node
// independently of its enclosing Query. Returned as an ordinary error
// rather than a panic so it aborts analysis of the current query the
// same way AddCast's Unsupported error does.
func (s *Subquery) DeepCopy() (Expression, error) {
	return nil, ErrUnsupported.New("Subquery.DeepCopy")
}

// CollectRTEIdx is a no-op: a Subquery's range-table entries belong to
// its own nested Query, not to the enclosing one, so it contributes
// nothing to the enclosing predicate's RTE footprint.
func (s *Subquery) CollectRTEIdx(set map[int]struct{}) {}

func (s *Subquery) GroupPredicates(scan, join, constant *[]Expression) {
	classifyByRTECount(s, s, scan, join, constant)
}

// RewriteWithTargetList returns the receiver itself, not a copy: a
// Subquery cannot be deep-copied (see DeepCopy), and its body is not
// rewritten against the enclosing query's target list.
func (s *Subquery) RewriteWithTargetList(tlist []*TargetEntry) (Expression, error) {
	return s, nil
}

func (s *Subquery) CheckGroupBy(groupBy []Expression) error {
	return nil
}

// AddCast is unsupported, matching Analyzer.cpp's
// Subquery::add_cast (CHECK(false)): a subquery's result type is fixed
// by its target list, not retargetable by an implicit cast the way a
// column or literal is.
func (s *Subquery) AddCast(newType types.TypeInfo) (Expression, error) {
	return nil, ErrUnsupported.New("Subquery.AddCast")
}
