// Package catalog defines the read-only metadata lookup surface the
// analyzer consults. It is grounded on the teacher's sql/catalog.go
// Catalog interface and sql/column.go Column, narrowed to the subset
// spec section 6 names: a per-table column listing and a by-name
// column lookup. Catalog storage itself is out of scope (spec section
// 1); this package only describes the shape a storage layer must
// expose to the analyzer.
package catalog

import "github.com/relquery/sqlsem/sql/types"

// TableID and ColumnID identify a table and a column within it. The
// analyzer treats both as opaque keys borrowed from the catalog.
type TableID int
type ColumnID int

// TableDescriptor is the minimal table metadata the analyzer borrows
// from the catalog.
type TableDescriptor struct {
	TableID TableID
}

// ColumnDescriptor is the minimal column metadata the analyzer borrows
// from the catalog.
type ColumnDescriptor struct {
	ColumnID   ColumnID
	ColumnName string
	ColumnType types.TypeInfo
}

// Catalog is the read-only interface the analyzer consults for table
// and column metadata. Implementations hold the actual catalog storage
// and outlive any single Query's analysis (spec section 5).
type Catalog interface {
	// GetAllColumns returns every column of tableID, in catalog-defined
	// order.
	GetAllColumns(tableID TableID) ([]*ColumnDescriptor, error)

	// GetColumn returns the descriptor for the column named name on
	// tableID, or nil if no such column exists.
	GetColumn(tableID TableID, name string) (*ColumnDescriptor, error)
}
