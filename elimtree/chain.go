package elimtree

import "github.com/arboriq/jtree/symbolic"

// Chain builds a linear elimination tree over n keys produced by idFn, in
// elimination order: keys[0] is eliminated first (the deepest leaf),
// keys[n-1] is the root. Consecutive keys[i], keys[i+1] share a pairwise
// factor, attached to the deeper of the two (keys[i], the deepest node
// whose key is among the factor's keys) — the classic pairwise Markov
// chain, not a single n-ary factor.
//
// Panics if n < 2.
func Chain(n int, idFn IDFn) *Tree {
	if n < 2 {
		panic("elimtree: Chain: n must be >= 2")
	}

	keys := make([]symbolic.Key, n)
	for i := 0; i < n; i++ {
		keys[i] = idFn(i)
	}

	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		var factors []symbolic.Factor
		if i+1 < n {
			factors = []symbolic.Factor{symbolic.NewSymbolicFactor(keys[i], keys[i+1])}
		}
		nodes[i] = NewNode(keys[i], factors...)
	}
	for i := 0; i < n-1; i++ {
		nodes[i+1].AddChild(nodes[i])
	}

	return NewTree([]*Node{nodes[n-1]})
}
