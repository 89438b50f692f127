package elimtree

import "github.com/arboriq/jtree/symbolic"

// Forest combines independently constructed trees into a single
// multi-root EliminationTree, preserving each tree's own roots in the
// order the trees are given and concatenating their remaining factors.
func Forest(trees ...*Tree) *Tree {
	var roots []*Node
	var remaining []symbolic.Factor
	for _, t := range trees {
		roots = append(roots, t.roots...)
		remaining = append(remaining, t.remainingFactors...)
	}
	return NewTree(roots, remaining...)
}
