package treetraversal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboriq/jtree/treetraversal"
)

// fakeNode is a minimal treetraversal.Node for exercising the driver in
// isolation from junctiontree.
type fakeNode struct {
	id       string
	children []treetraversal.Node
}

func (n *fakeNode) Children() []treetraversal.Node { return n.children }

func leaf(id string) *fakeNode { return &fakeNode{id: id} }

func TestDepthFirstForest_OrderIsPreThenChildrenThenPost(t *testing.T) {
	// A
	// ├── B
	// └── C
	b, c := leaf("B"), leaf("C")
	a := &fakeNode{id: "A", children: []treetraversal.Node{b, c}}

	var events []string
	pre := func(n treetraversal.Node, _ interface{}) (interface{}, error) {
		events = append(events, "pre:"+n.(*fakeNode).id)
		return nil, nil
	}
	post := func(n treetraversal.Node, _ interface{}) error {
		events = append(events, "post:"+n.(*fakeNode).id)
		return nil
	}

	err := treetraversal.DepthFirstForest([]treetraversal.Node{a}, nil, pre, post)
	require.NoError(t, err)
	require.Equal(t, []string{"pre:A", "pre:B", "post:B", "pre:C", "post:C", "post:A"}, events)
}

func TestDepthFirstForest_RootDataPropagatesToRoots(t *testing.T) {
	root := leaf("R")
	var seen interface{}
	pre := func(n treetraversal.Node, parentData interface{}) (interface{}, error) {
		seen = parentData
		return nil, nil
	}
	post := func(treetraversal.Node, interface{}) error { return nil }

	err := treetraversal.DepthFirstForest([]treetraversal.Node{root}, "dummy-root", pre, post)
	require.NoError(t, err)
	require.Equal(t, "dummy-root", seen)
}

func TestDepthFirstForest_MultipleRootsInInputOrder(t *testing.T) {
	r1, r2 := leaf("R1"), leaf("R2")
	var order []string
	pre := func(n treetraversal.Node, _ interface{}) (interface{}, error) {
		order = append(order, n.(*fakeNode).id)
		return nil, nil
	}
	post := func(treetraversal.Node, interface{}) error { return nil }

	err := treetraversal.DepthFirstForest([]treetraversal.Node{r1, r2}, nil, pre, post)
	require.NoError(t, err)
	require.Equal(t, []string{"R1", "R2"}, order)
}

func TestDepthFirstForest_PreVisitErrorAbortsAndPropagates(t *testing.T) {
	boom := errors.New("boom")
	b := leaf("B")
	a := &fakeNode{id: "A", children: []treetraversal.Node{b}}

	var postCalled bool
	pre := func(n treetraversal.Node, _ interface{}) (interface{}, error) {
		if n.(*fakeNode).id == "A" {
			return nil, boom
		}
		return nil, nil
	}
	post := func(treetraversal.Node, interface{}) error {
		postCalled = true
		return nil
	}

	err := treetraversal.DepthFirstForest([]treetraversal.Node{a}, nil, pre, post)
	require.ErrorIs(t, err, boom)
	require.False(t, postCalled, "post-visit must never run once pre-visit fails")
}

func TestDepthFirstForest_PostVisitErrorFromChildAbortsAncestors(t *testing.T) {
	boom := errors.New("boom")
	b := leaf("B")
	a := &fakeNode{id: "A", children: []treetraversal.Node{b}}

	var aPostCalled bool
	pre := func(treetraversal.Node, interface{}) (interface{}, error) { return nil, nil }
	post := func(n treetraversal.Node, _ interface{}) error {
		if n.(*fakeNode).id == "B" {
			return boom
		}
		aPostCalled = true
		return nil
	}

	err := treetraversal.DepthFirstForest([]treetraversal.Node{a}, nil, pre, post)
	require.ErrorIs(t, err, boom)
	require.False(t, aPostCalled, "A's post-visit must not run once B's post-visit fails")
}
