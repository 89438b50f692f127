package junctiontree

import "github.com/arboriq/jtree/symbolic"

// EliminationTreeNode is the core's read-only view of one node of an
// already-built elimination tree: the single key eliminated here, the
// numeric factors attached at this node (their keys' union includes
// Key()), and this node's children in the order they should be visited.
type EliminationTreeNode interface {
	Key() symbolic.Key
	Factors() []symbolic.Factor
	Children() []EliminationTreeNode
}

// EliminationTree is the core's read-only view of an elimination forest:
// its roots, in order, plus any factors that were never attached to a
// node (carried over verbatim into the junction tree's RemainingFactors).
type EliminationTree interface {
	Roots() []EliminationTreeNode
	RemainingFactors() []symbolic.Factor
}

// JunctionTreeNode is one clique of the output junction tree.
//
// OrderedFrontalKeys lists the keys jointly eliminated in this clique,
// in elimination order: each absorbed subtree's keys first (most
// recently absorbed child first), and the elimination-tree node's own
// key last, since it is eliminated only after every subtree merged into
// it. Factors lists every numeric factor assigned to the clique, in
// elimination-tree source order followed by each absorbed child's
// factors in the order that child was absorbed. Children lists the
// clique's surviving (non-absorbed) child cliques. ProblemSize is a
// monotone integer estimate — max of this clique's own elimination cost
// and the ProblemSize of every child it absorbed — that a downstream
// scheduler can use to balance work across cliques.
//
// A JunctionTreeNode is built incrementally during BuildJunctionTree's
// post-visit and is immutable once the call returns.
type JunctionTreeNode struct {
	orderedFrontalKeys []symbolic.Key
	factors            []symbolic.Factor
	children           []*JunctionTreeNode
	problemSize        int
}

// OrderedFrontalKeys returns the clique's jointly eliminated keys, in
// elimination order — the elimination-tree node's own key last. The
// caller must not mutate the returned slice.
func (n *JunctionTreeNode) OrderedFrontalKeys() []symbolic.Key {
	return n.orderedFrontalKeys
}

// Factors returns the numeric factors assigned to this clique. The
// caller must not mutate the returned slice.
func (n *JunctionTreeNode) Factors() []symbolic.Factor {
	return n.factors
}

// Children returns this clique's surviving child cliques, left to right.
// The caller must not mutate the returned slice.
func (n *JunctionTreeNode) Children() []*JunctionTreeNode {
	return n.children
}

// ProblemSize returns the clique's monotone scheduling estimate.
func (n *JunctionTreeNode) ProblemSize() int {
	return n.problemSize
}

// JunctionTree is the output forest of cliques produced by
// BuildJunctionTree, plus the elimination tree's factors that were never
// attached to any node.
type JunctionTree struct {
	roots            []*JunctionTreeNode
	remainingFactors []symbolic.Factor
}

// Roots returns the junction tree's top-level cliques, in the order
// their elimination-tree roots were visited. The caller must not mutate
// the returned slice.
func (t *JunctionTree) Roots() []*JunctionTreeNode {
	return t.roots
}

// RemainingFactors returns the input elimination tree's unassigned
// factors, copied verbatim. The caller must not mutate the returned
// slice.
func (t *JunctionTree) RemainingFactors() []symbolic.Factor {
	return t.remainingFactors
}
