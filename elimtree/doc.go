// Package elimtree provides deterministic elimination-tree fixtures for
// exercising junctiontree.BuildJunctionTree in tests and examples.
//
// Constructing an elimination tree is explicitly out of scope for the
// junctiontree core (it is normally the output of a variable-ordering
// pass over a factor graph), so this package fills the gap with a
// handful of canonical topology constructors — Chain, YShape,
// BalancedBinary, Forest — that turn a symbolic key sequence into a
// ready-to-build junctiontree.EliminationTree.
package elimtree
