// Package query implements the query tree and range-table bookkeeping
// of spec sections 3, 4.6, and 4.7: a RangeTblEntry binds an alias to a
// catalog table (or a view sub-query) and caches the column
// descriptors the analyzer has looked up so far; a Query owns a target
// list, range table, and the optional WHERE/GROUP BY/HAVING/ORDER
// BY/next-query clauses. Grounded on the teacher's sql/plan package
// for the general shape of a query tree (a composite of named clauses)
// and on Analyzer.cpp's RangeTblEntry and Query for the exact
// bookkeeping rules.
package query

import (
	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/expr"
)

// RangeTblEntry binds a range-variable alias to a catalog table, or to
// a view sub-query when ViewQuery is non-nil. ColumnDescs caches the
// column descriptors the analyzer has resolved so far, populated
// lazily by GetColumnDesc or in bulk by AddAllColumnDescs.
type RangeTblEntry struct {
	Alias       string
	Table       *catalog.TableDescriptor
	ColumnDescs []*catalog.ColumnDescriptor
	ViewQuery   *Query // non-nil when this RTE is a view sub-query rather than a base table
}

// NewRangeTblEntry constructs a RangeTblEntry over a base table.
func NewRangeTblEntry(alias string, table *catalog.TableDescriptor) *RangeTblEntry {
	return &RangeTblEntry{Alias: alias, Table: table}
}

// NewViewRangeTblEntry constructs a RangeTblEntry over a view
// sub-query; Table is left nil since a view has no catalog table of
// its own.
func NewViewRangeTblEntry(alias string, viewQuery *Query) *RangeTblEntry {
	return &RangeTblEntry{Alias: alias, ViewQuery: viewQuery}
}

// AddAllColumnDescs populates ColumnDescs from the catalog, replacing
// whatever was cached before. Ported from Analyzer.cpp's
// RangeTblEntry::add_all_column_descs.
func (r *RangeTblEntry) AddAllColumnDescs(cat catalog.Catalog) error {
	if r.Table == nil {
		return nil
	}
	cols, err := cat.GetAllColumns(r.Table.TableID)
	if err != nil {
		return err
	}
	r.ColumnDescs = cols
	return nil
}

// GetColumnDesc returns the descriptor for name, serving it from cache
// when present and otherwise consulting the catalog and caching the
// result on a hit. Ported from Analyzer.cpp's
// RangeTblEntry::get_column_desc.
func (r *RangeTblEntry) GetColumnDesc(cat catalog.Catalog, name string) (*catalog.ColumnDescriptor, error) {
	for _, c := range r.ColumnDescs {
		if c.ColumnName == name {
			return c, nil
		}
	}
	if r.Table == nil {
		return nil, nil
	}
	col, err := cat.GetColumn(r.Table.TableID, name)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, nil
	}
	r.ColumnDescs = append(r.ColumnDescs, col)
	return col, nil
}

// ExpandStarInTargetList appends a fresh TargetEntry for every column
// of this RTE to tlist, for a `SELECT t.*` or `SELECT *` expansion
// naming rteIdx as the owning range-table entry. For a base-table RTE
// it refreshes ColumnDescs from cat before enumerating, the same way
// Analyzer.cpp's RangeTblEntry::expand_star_in_targetlist re-fetches
// column_descs on every call rather than trusting a possibly-stale
// cache populated by an earlier AddAllColumnDescs call.
//
// When the RTE is a view (ViewQuery non-nil), the base table has no
// catalog columns of its own to enumerate: the star instead expands to
// one ColumnVar per output slot of the view's own target list, named
// and typed after that slot. Analyzer.cpp's RangeTblEntry predates
// view-backed range-table entries and has no equivalent case; this is
// a supplemental rule consistent with how every other star expansion
// here walks "the columns visible through this RTE".
func (r *RangeTblEntry) ExpandStarInTargetList(cat catalog.Catalog, tlist []*expr.TargetEntry, rteIdx int) ([]*expr.TargetEntry, error) {
	if r.ViewQuery != nil {
		for i, vt := range r.ViewQuery.TargetList {
			cv := expr.NewColumnVar(vt.Expr.Type(), catalog.TableID(0), catalog.ColumnID(i), rteIdx)
			tlist = append(tlist, expr.NewTargetEntry(vt.Name, cv))
		}
		return tlist, nil
	}
	if err := r.AddAllColumnDescs(cat); err != nil {
		return nil, err
	}
	tableID := catalog.TableID(0)
	if r.Table != nil {
		tableID = r.Table.TableID
	}
	for _, c := range r.ColumnDescs {
		cv := expr.NewColumnVar(c.ColumnType, tableID, c.ColumnID, rteIdx)
		tlist = append(tlist, expr.NewTargetEntry(c.ColumnName, cv))
	}
	return tlist, nil
}
