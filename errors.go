package linsys

import "errors"

var (
	// ErrInvalidRule reports a production rule whose left-hand side is not
	// exactly one symbol.
	ErrInvalidRule = errors.New("left-hand side of production must be a single symbol")

	// ErrEmptyStack reports a branch-close symbol with no matching open.
	ErrEmptyStack = errors.New("branch stack is empty")
)
