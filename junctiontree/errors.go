package junctiontree

import (
	"errors"
	"fmt"
)

// ErrPrecondition is returned when the input elimination tree is
// malformed: a nil node, or a factor attached to a node whose key set
// does not include that node's own key. It is never recoverable;
// BuildJunctionTree attempts no partial construction.
//
// ErrInternal is returned when an assertion the traversal driver and the
// constructor's visitors rely on fails — chiefly that a clique's
// recorded children count matches the number of child symbolic
// conditionals collected for it. It indicates a bug in this package,
// not in the caller's input.
//
// Callers branch on these with errors.Is, never string matching.
var (
	ErrPrecondition = errors.New("junctiontree: malformed elimination tree")
	ErrInternal     = errors.New("junctiontree: internal invariant violation")
)

// preconditionf formats a precondition violation with context while
// preserving ErrPrecondition for errors.Is.
func preconditionf(format string, args ...interface{}) error {
	return fmt.Errorf("junctiontree: "+format+": %w", append(args, ErrPrecondition)...)
}

// internalf formats an internal invariant violation with context while
// preserving ErrInternal for errors.Is.
func internalf(format string, args ...interface{}) error {
	return fmt.Errorf("junctiontree: "+format+": %w", append(args, ErrInternal)...)
}
