package expr

// TargetEntry pairs an output column name with the owned Expression
// projected into that slot. Grounded on Analyzer.cpp's TargetEntry.
type TargetEntry struct {
	Name string
	Expr Expression
}

// NewTargetEntry constructs a TargetEntry.
func NewTargetEntry(name string, e Expression) *TargetEntry {
	return &TargetEntry{Name: name, Expr: e}
}

// DeepCopy returns a TargetEntry with an independently owned Expr.
func (t *TargetEntry) DeepCopy() (*TargetEntry, error) {
	expr, err := t.Expr.DeepCopy()
	if err != nil {
		return nil, err
	}
	return &TargetEntry{Name: t.Name, Expr: expr}, nil
}
