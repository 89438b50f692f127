package export_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"

	"github.com/arboriq/jtree/elimtree"
	"github.com/arboriq/jtree/junctiontree"
	"github.com/arboriq/jtree/junctiontree/export"
)

func TestToGonumGraph_OneNodePerCliqueOneEdgePerLink(t *testing.T) {
	tree := elimtree.Chain(3, elimtree.SymbolIDFn)
	jt, err := junctiontree.BuildJunctionTree(tree)
	require.NoError(t, err)

	g, nodes := export.ToGonumGraph(jt)

	require.Len(t, nodes, 2, "chain(3) merges to a root clique plus one surviving child")
	require.Equal(t, 2, g.Nodes().Len())
	require.Equal(t, 1, g.Edges().Len())

	root := jt.Roots()[0]
	rootNode, ok := nodes[root]
	require.True(t, ok)
	require.Len(t, root.Children(), 1)
	childNode, ok := nodes[root.Children()[0]]
	require.True(t, ok)

	var foundEdge graph.Edge
	edges := g.Edges()
	for edges.Next() {
		foundEdge = edges.Edge()
	}
	require.NotNil(t, foundEdge)
	require.Equal(t, rootNode.ID(), foundEdge.From().ID())
	require.Equal(t, childNode.ID(), foundEdge.To().ID())
}

func TestCliqueNode_AttributesIncludeFrontalKeysAndProblemSize(t *testing.T) {
	tree := elimtree.Chain(2, elimtree.SymbolIDFn)
	jt, err := junctiontree.BuildJunctionTree(tree)
	require.NoError(t, err)

	_, nodes := export.ToGonumGraph(jt)
	node := nodes[jt.Roots()[0]]

	attrs := node.Attributes()
	require.Len(t, attrs, 2)
	require.Equal(t, "label", attrs[0].Key)
	require.Equal(t, "[A B]", attrs[0].Value)
	require.Equal(t, "problem_size", attrs[1].Key)
	require.Equal(t, "2", attrs[1].Value)
}
