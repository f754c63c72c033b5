package types

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTypeMismatch is raised when a logical, comparison, or
	// arithmetic operator is applied to operand types it cannot accept.
	ErrTypeMismatch = errors.NewKind("type mismatch: %s")

	// ErrInvalidOperator is raised when a binary operator value is
	// outside the logic/comparison/arithmetic families.
	ErrInvalidOperator = errors.NewKind("invalid binary operator type")

	// ErrInternalError is raised when the numeric promotion lattice is
	// asked to unify a non-numeric type, which indicates a caller bug
	// rather than a malformed query.
	ErrInternalError = errors.NewKind("internal error: %s")
)
