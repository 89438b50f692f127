package junctiontree

import (
	"go.uber.org/multierr"

	"github.com/arboriq/jtree/symbolic"
)

// Validate walks tree and reports every structural violation it finds,
// rather than stopping at the first one the way BuildJunctionTree's own
// fatal fast-path does. Use it ahead of a build (WithValidation) when
// debugging a hand-assembled or externally generated elimination tree.
//
// A well-formed tree satisfies, for every node: the node is non-nil, its
// Key() is non-empty, and every one of its Factors() includes that key
// — each factor belongs to exactly one node, the deepest node whose key
// is among the factor's keys.
func Validate(tree EliminationTree) error {
	if tree == nil {
		return preconditionf("elimination tree is nil")
	}

	var errs error
	for _, root := range tree.Roots() {
		errs = multierr.Append(errs, validateNode(root, nil))
	}
	return errs
}

// validateNode checks node itself and recurses into its children,
// aggregating violations from the whole subtree via multierr rather than
// returning on the first one.
func validateNode(node EliminationTreeNode, path []symbolic.Key) error {
	if node == nil {
		return preconditionf("nil node under path %v", path)
	}

	var errs error
	key := node.Key()
	if key == "" {
		errs = multierr.Append(errs, preconditionf("node under path %v has empty key", path))
	}

	for _, f := range node.Factors() {
		if !containsKey(f.Keys(), key) {
			errs = multierr.Append(errs, preconditionf(
				"factor %v attached to node %q does not mention that node's key", f.Keys(), key))
		}
	}

	childPath := append(append([]symbolic.Key(nil), path...), key)
	for _, child := range node.Children() {
		errs = multierr.Append(errs, validateNode(child, childPath))
	}

	return errs
}

func containsKey(keys []symbolic.Key, k symbolic.Key) bool {
	for _, candidate := range keys {
		if candidate == k {
			return true
		}
	}
	return false
}
