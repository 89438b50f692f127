// Package jtree turns an elimination tree into a junction tree (a.k.a.
// clique tree) for block-wise probabilistic inference.
//
// What is a junction tree?
//
//	A rooted tree of cliques — groups of jointly eliminated variables —
//	built by walking a pre-built elimination tree bottom-up, symbolically
//	eliminating each node's key, and absorbing a child into its parent's
//	clique when the child's conditional has exactly as many parents as
//	the parent's own conditional plus the clique's frontal keys so far.
//
// Why this package?
//
//   - Single-purpose – it consumes an elimination tree and a narrow
//     "what keys does this factor touch" contract, nothing else
//   - No numeric coupling – factors are opaque key sets; no linear
//     algebra, no probability, ever enters the core
//   - Deterministic – same elimination tree in, same clique shapes,
//     frontal orderings, and problem-size estimates out, every time
//
// Everything is organized under these subpackages:
//
//	symbolic/           — SymbolicFactor, SymbolicConditional, EliminateSymbolic
//	treetraversal/      — generic depth-first forest traversal with pre/post visitors
//	junctiontree/       — EliminationTree input, JunctionTree output, BuildJunctionTree
//	junctiontree/export — convert a built JunctionTree to a gonum graph
//	elimtree/           — deterministic elimination-tree fixtures for tests and demos
//
// Quick ASCII example (chain A–B–C, factors {A,B} and {B,C}, eliminating
// A then B then C):
//
//	A──B──C             ⟹   clique {B,C}
//	(elimination tree)         │
//	                        clique {A}
//
// B's own conditional has one parent (C); A's conditional also has one
// parent (B), one short of the count B's clique needs to absorb it, so A
// survives as its own clique. C's conditional has zero parents, exactly
// matching what B's clique needs, so B merges all the way up into C.
//
// See junctiontree's doc.go for the construction algorithm itself.
package jtree
