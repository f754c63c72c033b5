// Package expr implements the polymorphic SQL expression algebra of
// spec section 3: column references, parameters, constants, unary and
// binary operators, subqueries, IN-lists, LIKE expressions, and
// aggregates. It is grounded on Analyzer.cpp's Expr class hierarchy,
// re-architected per spec section 9 as a small set of interface
// methods dispatched by concrete type instead of C++ virtual dispatch,
// and on the teacher's sql/expression package for Go idiom (small
// per-node-kind files, a shared Walk helper).
package expr

import "github.com/relquery/sqlsem/sql/types"

// Expression is the common interface implemented by every node of the
// algebra. Every owned child is exclusively owned by its parent;
// DeepCopy always returns a freshly owned subtree (spec section 3's
// ownership invariant).
type Expression interface {
	// Type returns the node's TypeInfo.
	Type() types.TypeInfo

	// DeepCopy returns an independent subtree with identical semantic
	// content, sharing no owned node with the receiver. It fails with
	// ErrUnsupported for a Subquery, per spec section 9.
	DeepCopy() (Expression, error)

	// CollectRTEIdx adds the range-table indices this subtree's leaves
	// reference to set.
	CollectRTEIdx(set map[int]struct{})

	// GroupPredicates classifies the receiver (recursing through
	// top-level conjunctions) and appends it to *scan, *join, or
	// *constant according to spec section 4.3.
	GroupPredicates(scan, join, constant *[]Expression)

	// RewriteWithTargetList returns a freshly owned Expression with
	// every base-column/aggregate leaf replaced by the matching
	// projection slot from tlist, per spec section 4.5. A Subquery,
	// which cannot be deep-copied, is returned as the same node.
	RewriteWithTargetList(tlist []*TargetEntry) (Expression, error)

	// CheckGroupBy verifies that every ColumnVar reachable from the
	// receiver outside an AggExpr matches some entry of groupBy by
	// (table_id, column_id), per spec section 4.7.
	CheckGroupBy(groupBy []Expression) error

	// AddCast returns an Expression equivalent to the receiver cast to
	// newType: literal folding where possible, else a CAST wrapper.
	AddCast(newType types.TypeInfo) (Expression, error)
}

// classifyByRTECount is the default GroupPredicates behavior shared by
// every variant except ColumnVar (which special-cases bare booleans)
// and BinOper (which flattens AND). It collects the range-table indices
// referenced by collector and appends self to the list matching spec
// section 4.3: 0 RTEs is constant, 1 is scan, >=2 is join.
func classifyByRTECount(self Expression, collector Expression, scan, join, constant *[]Expression) {
	set := make(map[int]struct{})
	collector.CollectRTEIdx(set)
	switch {
	case len(set) > 1:
		*join = append(*join, self)
	case len(set) == 1:
		*scan = append(*scan, self)
	default:
		*constant = append(*constant, self)
	}
}
