// Package treetraversal implements a generic depth-first walk over a
// rooted forest with paired pre- and post-order visitor hooks.
//
// It generalizes the familiar visit-recurse-exit traversal pattern from
// walking one concrete graph type to walking any forest of Node, carrying
// a per-node user value whose lifetime brackets the subtree. junctiontree
// is the only caller today, but nothing here is specific to it.
package treetraversal
