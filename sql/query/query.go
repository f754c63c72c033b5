package query

import "github.com/relquery/sqlsem/sql/expr"

// Query is the composite query tree of spec section 3: a target list,
// range table, and the optional WHERE/GROUP BY/HAVING/ORDER
// BY/next-query clauses of a single SELECT, chained to a sibling Query
// for a set operation (UNION/INTERSECT/EXCEPT) via Next. Grounded on
// Analyzer.cpp's Query and the teacher's sql/plan node composition for
// Go idiom (plain struct fields rather than a builder).
type Query struct {
	TargetList []*expr.TargetEntry
	RangeTable []*RangeTblEntry
	Where      expr.Expression   // nil if no WHERE clause
	GroupBy    []expr.Expression // nil if no GROUP BY clause
	Having     expr.Expression   // nil if no HAVING clause
	OrderBy    []OrderByItem
	Next       *Query // chained set-operation query, nil if none
}

// OrderByItem is one ORDER BY key: an expression (typically a Var
// naming a projection slot) and its sort direction.
type OrderByItem struct {
	Expr expr.Expression
	Desc bool
}

// NewQuery constructs an empty Query ready to accumulate range-table
// entries and a target list.
func NewQuery() *Query {
	return &Query{}
}

// AddRTE appends rte to the range table and returns its rte_idx, the
// entry's position. Ported from Analyzer.cpp's Query::add_rte.
func (q *Query) AddRTE(rte *RangeTblEntry) int {
	q.RangeTable = append(q.RangeTable, rte)
	return len(q.RangeTable) - 1
}

// GetRTEIdx returns the index of the range-table entry whose alias
// equals name, or -1 if none matches. Ported from Analyzer.cpp's
// Query::get_rte_idx.
func (q *Query) GetRTEIdx(name string) int {
	for i, rte := range q.RangeTable {
		if rte.Alias == name {
			return i
		}
	}
	return -1
}

// CheckGroupBy verifies that every ColumnVar reachable from the
// query's target-list and HAVING expressions outside an
// AggExpr matches some expression of GroupBy by (table_id,
// column_id). Ported from Analyzer.cpp's Query::check_group_by, which
// delegates to each Expr's own check_group_by.
func (q *Query) CheckGroupBy() error {
	for _, tle := range q.TargetList {
		if err := tle.Expr.CheckGroupBy(q.GroupBy); err != nil {
			return err
		}
	}
	if q.Having != nil {
		if err := q.Having.CheckGroupBy(q.GroupBy); err != nil {
			return err
		}
	}
	return nil
}
