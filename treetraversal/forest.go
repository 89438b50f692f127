package treetraversal

// Node is anything that can appear in a rooted forest subject to
// depth-first traversal. Children are visited left to right.
type Node interface {
	Children() []Node
}

// PreVisitFunc runs on descent into node, before any of its descendants
// are visited. parentData is the value produced for node's parent (or
// rootData, for a root). The returned value is threaded to node's own
// children as their parentData, and back to PostVisitFunc as data.
type PreVisitFunc func(node Node, parentData interface{}) (interface{}, error)

// PostVisitFunc runs on ascent from node, after every descendant of node
// has been fully visited (pre- and post-). data is the value PreVisitFunc
// produced for this node.
type PostVisitFunc func(node Node, data interface{}) error

// DepthFirstForest walks roots left to right and, recursively, each
// node's Children() left to right, invoking preVisit on descent and
// postVisit on ascent.
//
// Guarantees: preVisit(node) happens-before any call involving node's
// descendants; postVisit(node) happens-after every call involving node's
// descendants; rootData is passed as the synthetic parent data for every
// root. The walk never recovers from a visitor error — the first one
// returned aborts the remaining traversal and is propagated to the
// caller unmodified.
func DepthFirstForest(roots []Node, rootData interface{}, preVisit PreVisitFunc, postVisit PostVisitFunc) error {
	for _, root := range roots {
		if err := visit(root, rootData, preVisit, postVisit); err != nil {
			return err
		}
	}

	return nil
}

// visit runs the pre/post visitor pair on node and, between them,
// recurses into node's children in order.
func visit(node Node, parentData interface{}, preVisit PreVisitFunc, postVisit PostVisitFunc) error {
	data, err := preVisit(node, parentData)
	if err != nil {
		return err
	}

	for _, child := range node.Children() {
		if err := visit(child, data, preVisit, postVisit); err != nil {
			return err
		}
	}

	return postVisit(node, data)
}
