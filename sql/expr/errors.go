package expr

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnsupported is raised by operations Analyzer.cpp itself marks
	// unsupported: casting or deep-copying a Subquery.
	ErrUnsupported = errors.NewKind("unsupported: %s")

	// ErrInternalError is raised when a rewrite pass cannot find the
	// targetlist entry it expects, which indicates the projection was
	// built incorrectly upstream rather than a malformed query.
	ErrInternalError = errors.NewKind("internal error: %s")

	// ErrGroupByViolation is raised when a ColumnVar outside an AggExpr
	// doesn't match any expression in the query's GROUP BY list.
	ErrGroupByViolation = errors.NewKind("column (table %v, column %v) must appear in the GROUP BY clause or be used in an aggregate function")
)
