// Package symbolic implements the variable-set-level bookkeeping that
// mirrors numerical elimination but never touches a value.
//
// A SymbolicFactor is nothing but the set of keys it involves. Eliminating
// a single key from a collection of factors produces a SymbolicConditional
// (the eliminated key plus the union of every other key those factors
// mentioned) and a SymbolicFactor residual over exactly that parent set.
// This is the primitive the junctiontree package runs at every node of an
// elimination tree to decide which cliques collapse into one.
package symbolic
