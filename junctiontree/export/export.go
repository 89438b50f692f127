package export

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/arboriq/jtree/junctiontree"
)

// CliqueNode is a gonum graph node wrapping one junction-tree clique.
// Its Attributes render for gonum's DOT encoder so a caller can pipe
// ToGonumGraph's output straight into `dot -Tsvg`.
type CliqueNode struct {
	id     int64
	clique *junctiontree.JunctionTreeNode
}

// ID implements graph.Node.
func (n CliqueNode) ID() int64 { return n.id }

// Clique returns the wrapped clique.
func (n CliqueNode) Clique() *junctiontree.JunctionTreeNode { return n.clique }

// Attributes implements encoding.Attributer.
func (n CliqueNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%v", n.clique.OrderedFrontalKeys())},
		{Key: "problem_size", Value: fmt.Sprintf("%d", n.clique.ProblemSize())},
	}
}

// ToGonumGraph walks jt depth-first and returns an equivalent gonum
// directed graph — one node per clique, one edge per parent-to-child
// link, oriented the same way the junction tree itself is (parent to
// child) — plus a lookup from clique to the node that represents it,
// so a caller can find where a particular clique landed.
func ToGonumGraph(jt *junctiontree.JunctionTree) (*simple.DirectedGraph, map[*junctiontree.JunctionTreeNode]CliqueNode) {
	g := simple.NewDirectedGraph()
	nodes := make(map[*junctiontree.JunctionTreeNode]CliqueNode)

	var nextID int64
	var visit func(clique *junctiontree.JunctionTreeNode) CliqueNode
	visit = func(clique *junctiontree.JunctionTreeNode) CliqueNode {
		n := CliqueNode{id: nextID, clique: clique}
		nextID++
		nodes[clique] = n
		g.AddNode(n)

		for _, child := range clique.Children() {
			childNode := visit(child)
			g.SetEdge(simple.Edge{F: n, T: childNode})
		}
		return n
	}

	for _, root := range jt.Roots() {
		visit(root)
	}

	return g, nodes
}
