// Package analyzer wires the type-unification lattice of sql/types
// into the expression algebra of sql/expr: given a binary operator and
// its raw operand expressions, it computes the unified result type and
// inserts CAST wrappers around whichever operand needs one, per spec
// section 4.1's "the caller is expected to wrap the operands in CAST
// unary operators". Grounded on the teacher's sql/analyzer package for
// the Analyzer struct shape and its debug-logging convention.
package analyzer

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/relquery/sqlsem/sql/catalog"
	"github.com/relquery/sqlsem/sql/expr"
	"github.com/relquery/sqlsem/sql/types"
)

// Analyzer holds the configuration a single analysis pass needs: a
// catalog to resolve table and column metadata against, and a Debug
// flag gating verbose logging. Grounded on the teacher's
// sql/analyzer.Analyzer{Debug, Catalog}; Parallelism, Batches, and
// Verbose have no counterpart here since this package has no rule
// engine of its own to parallelize or trace (spec section 5: the
// analyzer is single-threaded and non-suspending).
type Analyzer struct {
	Catalog catalog.Catalog
	Debug   bool

	debugCtx []string
}

// NewAnalyzer constructs an Analyzer over cat.
func NewAnalyzer(cat catalog.Catalog) *Analyzer {
	return &Analyzer{Catalog: cat}
}

// Log writes a debug message through logrus when a.Debug is set,
// prefixing it with the current debug context. Ported from the
// teacher's sql/analyzer.Analyzer.Log.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a == nil || !a.Debug {
		return
	}
	if len(a.debugCtx) > 0 {
		ctx := strings.Join(a.debugCtx, "/")
		logrus.Infof("%s: "+msg, append([]interface{}{ctx}, args...)...)
		return
	}
	logrus.Infof(msg, args...)
}

// PushDebugContext pushes msg onto the debug context stack used by Log.
func (a *Analyzer) PushDebugContext(msg string) {
	a.debugCtx = append(a.debugCtx, msg)
}

// PopDebugContext pops the most recently pushed debug context.
func (a *Analyzer) PopDebugContext() {
	if len(a.debugCtx) > 0 {
		a.debugCtx = a.debugCtx[:len(a.debugCtx)-1]
	}
}

// AnalyzeBinOp computes the unified type of a binary operator applied
// to left and right, wraps either operand in a CAST when its type
// doesn't match the unified operand type, and returns the fully typed
// *expr.BinOper. This is the glue spec section 4.1 describes as the
// caller's responsibility once analyze_type_info has returned
// new_left/new_right: sql/types.AnalyzeBinOpType computes the types,
// this function performs the casting sql/expr.BinOper's own
// constructor deliberately leaves undone.
func (a *Analyzer) AnalyzeBinOp(op types.Op, qualifier types.Qualifier, left, right expr.Expression) (*expr.BinOper, error) {
	result, newLeft, newRight, err := types.AnalyzeBinOpType(op, left.Type(), right.Type())
	if err != nil {
		a.Log("AnalyzeBinOp: %v", err)
		return nil, err
	}

	if newLeft != left.Type() {
		left, err = left.AddCast(newLeft)
		if err != nil {
			return nil, err
		}
	}
	if newRight != right.Type() {
		right, err = right.AddCast(newRight)
		if err != nil {
			return nil, err
		}
	}

	return expr.NewBinOper(result, op, qualifier, left, right), nil
}
