package elimtree

import (
	"github.com/arboriq/jtree/junctiontree"
	"github.com/arboriq/jtree/symbolic"
)

// Node is a mutable, in-memory junctiontree.EliminationTreeNode. It exists
// purely for building test and example fixtures — production callers are
// expected to adapt whatever variable-ordering structure they already
// have rather than go through Node.
type Node struct {
	key      symbolic.Key
	factors  []symbolic.Factor
	children []*Node
}

// NewNode creates a leaf node with the given key and factors. Use AddChild
// to attach descendants afterward.
func NewNode(key symbolic.Key, factors ...symbolic.Factor) *Node {
	return &Node{key: key, factors: factors}
}

// AddChild attaches child as the next child of n, in left-to-right order,
// and returns n for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// Key implements junctiontree.EliminationTreeNode.
func (n *Node) Key() symbolic.Key { return n.key }

// Factors implements junctiontree.EliminationTreeNode.
func (n *Node) Factors() []symbolic.Factor { return n.factors }

// Children implements junctiontree.EliminationTreeNode.
func (n *Node) Children() []junctiontree.EliminationTreeNode {
	out := make([]junctiontree.EliminationTreeNode, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Tree is a mutable, in-memory junctiontree.EliminationTree.
type Tree struct {
	roots            []*Node
	remainingFactors []symbolic.Factor
}

// NewTree wraps roots (and any unattached factors) as a junctiontree.EliminationTree.
func NewTree(roots []*Node, remainingFactors ...symbolic.Factor) *Tree {
	return &Tree{roots: roots, remainingFactors: remainingFactors}
}

// Roots implements junctiontree.EliminationTree.
func (t *Tree) Roots() []junctiontree.EliminationTreeNode {
	out := make([]junctiontree.EliminationTreeNode, len(t.roots))
	for i, r := range t.roots {
		out[i] = r
	}
	return out
}

// RemainingFactors implements junctiontree.EliminationTree.
func (t *Tree) RemainingFactors() []symbolic.Factor { return t.remainingFactors }
