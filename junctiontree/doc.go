// Package junctiontree builds a junction tree (clique tree) from an
// already-built elimination tree.
//
// BuildJunctionTree performs a single bottom-up pass over the
// elimination tree via treetraversal.DepthFirstForest. At each node it
// symbolically eliminates the node's key against its own factors plus
// the residuals handed up from its children, then decides which
// children absorb into the current clique: a child absorbs when its
// conditional's parent count equals the current node's parent count plus
// the clique's frontal-key count so far. That count grows with each
// absorbed child, so which siblings absorb depends on their order. See
// constructor.go for the merge predicate and the index bookkeeping that
// makes absorbing children mid-loop safe.
//
// The package performs no probabilistic reasoning and never inspects a
// factor's numeric content — it only ever calls Keys() on one.
package junctiontree
