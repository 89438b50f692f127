package elimtree

import "github.com/arboriq/jtree/symbolic"

// BalancedBinary builds a complete binary elimination tree of the given
// depth (depth=0 is a single root). Each non-root node carries a pairwise
// factor linking it to its parent's key, using level-order indices
// through idFn: the root is idFn(0), and node i's children are idFn(2i+1)
// and idFn(2i+2).
//
// Panics if depth < 0.
func BalancedBinary(depth int, idFn IDFn) *Tree {
	if depth < 0 {
		panic("elimtree: BalancedBinary: depth must be >= 0")
	}

	count := 1<<(depth+1) - 1
	keys := make([]symbolic.Key, count)
	for i := 0; i < count; i++ {
		keys[i] = idFn(i)
	}

	nodes := make([]*Node, count)
	nodes[0] = NewNode(keys[0])
	for i := 1; i < count; i++ {
		parentIdx := (i - 1) / 2
		nodes[i] = NewNode(keys[i], symbolic.NewSymbolicFactor(keys[i], keys[parentIdx]))
	}
	for i := 1; i < count; i++ {
		parentIdx := (i - 1) / 2
		nodes[parentIdx].AddChild(nodes[i])
	}

	return NewTree([]*Node{nodes[0]})
}
