package junctiontree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arboriq/jtree/elimtree"
	"github.com/arboriq/jtree/junctiontree"
	"github.com/arboriq/jtree/symbolic"
)

// cliqueSnapshot is a plain, exported-field mirror of JunctionTreeNode
// used only to get readable cmp.Diff output in tests — JunctionTreeNode
// itself keeps its fields private, so a direct cmp.Diff would need
// cmp.AllowUnexported and produce far noisier failure output.
type cliqueSnapshot struct {
	Frontals    []symbolic.Key
	ProblemSize int
	Children    []cliqueSnapshot
}

func snapshot(n *junctiontree.JunctionTreeNode) cliqueSnapshot {
	var children []cliqueSnapshot
	for _, c := range n.Children() {
		children = append(children, snapshot(c))
	}
	return cliqueSnapshot{
		Frontals:    n.OrderedFrontalKeys(),
		ProblemSize: n.ProblemSize(),
		Children:    children,
	}
}

func TestBuildJunctionTree_BalancedBinaryDepthOneSnapshot(t *testing.T) {
	// depth-1 balanced binary: root 0 with children 1 and 2, each linked
	// to the root by their own pairwise factor, no factor between the
	// two leaves — structurally identical to the Y-shape case, so only
	// the first-visited leaf (1) merges into the root.
	tree := elimtree.BalancedBinary(1, elimtree.DefaultIDFn)

	jt, err := junctiontree.BuildJunctionTree(tree)
	require.NoError(t, err)
	require.Len(t, jt.Roots(), 1)

	want := cliqueSnapshot{
		Frontals:    []symbolic.Key{"1", "0"},
		ProblemSize: 2,
		Children: []cliqueSnapshot{
			{Frontals: []symbolic.Key{"2"}, ProblemSize: 2},
		},
	}
	got := snapshot(jt.Roots()[0])
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("junction tree shape mismatch (-want +got):\n%s", diff)
	}
}
