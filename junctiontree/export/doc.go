// Package export converts a built junctiontree.JunctionTree into a
// gonum graph.Directed, so callers can run gonum's traversal, layout,
// or DOT-encoding routines over the clique structure without this
// module needing to depend on any particular visualization stack
// itself.
package export
