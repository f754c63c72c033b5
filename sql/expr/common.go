package expr

import "github.com/relquery/sqlsem/sql/types"

// SplitConjunction flattens a tree of top-level AND BinOpers into its
// individual conjuncts, left to right. A predicate with no top-level
// AND returns a single-element slice containing itself. This is kept
// as a standalone, reusable helper rather than inlined into
// GroupPredicates, the way the teacher's sql/analyzer/filters.go keeps
// splitConjunction separate from the rules that call it (see
// SPEC_FULL.md's supplemented-features note).
func SplitConjunction(e Expression) []Expression {
	bin, ok := e.(*BinOper)
	if !ok || bin.Op != types.AND {
		return []Expression{e}
	}
	return append(SplitConjunction(bin.Left), SplitConjunction(bin.Right)...)
}

// deepCopyChildren is a small shared helper: it deep-copies each of
// children and returns the copied slice, or the first error
// encountered. Used wherever a node's spec section 4.5 rewrite rule
// deep-copies a child sequence unconditionally rather than rewriting
// it against a target list (e.g. InValues.value_list).
func deepCopyChildren(children []Expression) ([]Expression, error) {
	out := make([]Expression, len(children))
	for i, c := range children {
		copied, err := c.DeepCopy()
		if err != nil {
			return nil, err
		}
		out[i] = copied
	}
	return out, nil
}
