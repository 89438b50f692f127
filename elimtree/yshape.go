package elimtree

import "github.com/arboriq/jtree/symbolic"

// YShape builds a two-leaf elimination tree: root, with leafA and leafB as
// its children, each connected to root by its own pairwise factor (no
// factor directly links leafA and leafB). leafA is visited before leafB,
// matching the order the caller supplies — traversal order decides which
// of the two is eligible to merge into root first, since the merge loop
// is order-sensitive once one child has already been absorbed.
func YShape(root, leafA, leafB symbolic.Key) *Tree {
	rootNode := NewNode(root)
	rootNode.AddChild(NewNode(leafA, symbolic.NewSymbolicFactor(leafA, root)))
	rootNode.AddChild(NewNode(leafB, symbolic.NewSymbolicFactor(leafB, root)))
	return NewTree([]*Node{rootNode})
}
