package junctiontree

import (
	"go.uber.org/zap"

	"github.com/arboriq/jtree/symbolic"
	"github.com/arboriq/jtree/treetraversal"
)

// constructor supplies the pre/post visitor pair BuildJunctionTree hands
// to treetraversal.DepthFirstForest.
type constructor struct {
	logger  *zap.Logger
	metrics *Metrics
}

// preVisit allocates a fresh clique carrying this elimination-tree
// node's key and factors, and links it as a child of the parent's
// clique. No symbolic work happens here — that is entirely a post-visit
// concern. A nil node, an empty key, or a factor that does not mention
// the node's key fails with ErrPrecondition.
func (c *constructor) preVisit(node treetraversal.Node, parentData interface{}) (interface{}, error) {
	et := etreeNode(node)
	if et == nil {
		return nil, preconditionf("nil elimination-tree node")
	}
	parent, ok := parentData.(*traversalData)
	if !ok || parent == nil {
		return nil, internalf("pre-visit for node %q received invalid parent traversal data", et.Key())
	}
	if et.Key() == "" {
		return nil, preconditionf("elimination-tree node has empty key")
	}
	for _, f := range et.Factors() {
		if !containsKey(f.Keys(), et.Key()) {
			return nil, preconditionf("factor %v attached to node %q does not mention that node's key", f.Keys(), et.Key())
		}
	}

	clique := &JunctionTreeNode{
		orderedFrontalKeys: []symbolic.Key{et.Key()},
		factors:            append([]symbolic.Factor(nil), et.Factors()...),
	}
	parent.clique.children = append(parent.clique.children, clique)

	return &traversalData{parent: parent, clique: clique}, nil
}

// postVisit runs the elimination and merge-decision pass, in five steps:
// eliminate this node's own key, compute the merge predicate, absorb
// eligible children, restore frontal-key order, then record the
// clique's size.
func (c *constructor) postVisit(node treetraversal.Node, data interface{}) error {
	et := etreeNode(node)
	myData, ok := data.(*traversalData)
	if !ok || myData == nil {
		return internalf("post-visit for node %q received invalid traversal data", et.Key())
	}
	clique := myData.clique

	// Step 1: symbolic elimination over this node's own factors plus
	// every residual its children passed up.
	symbolicFactors := make([]symbolic.Factor, 0, len(et.Factors())+len(myData.childSymbolicFactors))
	symbolicFactors = append(symbolicFactors, et.Factors()...)
	symbolicFactors = append(symbolicFactors, myData.childSymbolicFactors...)

	cond, residual := symbolic.EliminateSymbolic(symbolicFactors, []symbolic.Key{et.Key()})
	myData.parent.childSymbolicConditionals = append(myData.parent.childSymbolicConditionals, cond)
	myData.parent.childSymbolicFactors = append(myData.parent.childSymbolicFactors, residual)

	// Step 2: merge decision setup. myNrParents is fixed here and never
	// revisited inside the loop below. myNrFrontals, by contrast, grows
	// by each absorbed child's frontal count, and that running total
	// feeds the predicate for every later sibling.
	myNrFrontals := 1
	myNrParents := cond.NrParents()
	combinedProblemSize := cond.Size() * len(symbolicFactors)

	if len(clique.children) != len(myData.childSymbolicConditionals) {
		return internalf("clique %q has %d children but %d child symbolic conditionals",
			et.Key(), len(clique.children), len(myData.childSymbolicConditionals))
	}

	// Step 3: merge loop. childSymbolicConditionals is indexed by the
	// original child position; clique.children shrinks by one each time
	// a child is absorbed, so clique.children is indexed at
	// i-nrMerged to account for entries already removed.
	nrMerged := 0
	for i, childCond := range myData.childSymbolicConditionals {
		if childCond.NrParents() != myNrParents+myNrFrontals {
			continue
		}

		child := clique.children[i-nrMerged]

		// Append child's frontal keys in reverse; the single reverse
		// in step 4 restores absorption order for the whole clique.
		for j := len(child.orderedFrontalKeys) - 1; j >= 0; j-- {
			clique.orderedFrontalKeys = append(clique.orderedFrontalKeys, child.orderedFrontalKeys[j])
		}
		clique.factors = append(clique.factors, child.factors...)
		clique.children = append(clique.children, child.children...)

		if child.problemSize > combinedProblemSize {
			combinedProblemSize = child.problemSize
		}
		myNrFrontals += len(child.orderedFrontalKeys)

		clique.children = append(clique.children[:i-nrMerged], clique.children[i-nrMerged+1:]...)
		nrMerged++

		c.logger.Debug("absorbed child clique",
			zap.String("key", et.Key()),
			zap.Strings("absorbed_frontals", child.orderedFrontalKeys),
		)
	}

	// Step 4: single reverse. Frontal keys were appended node.Key()
	// first, then each absorbed child's block in reverse internal order,
	// in absorption order. Reversing the whole slice once restores each
	// block's internal order but also flips the block order itself, so
	// node.Key() ends up LAST and the most recently absorbed child's
	// block ends up first. This matches elimination order within the
	// clique: node.Key() really is the last variable eliminated here,
	// since every absorbed child finished eliminating before it did.
	reverseKeys(clique.orderedFrontalKeys)

	// Step 5: record size.
	clique.problemSize = combinedProblemSize
	c.metrics.recordClique(combinedProblemSize)

	return nil
}

// reverseKeys reverses keys in place.
func reverseKeys(keys []symbolic.Key) {
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
}
