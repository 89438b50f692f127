package symbolic

// EliminateSymbolic eliminates every key in keysToEliminate from
// factors, returning the resulting conditional and residual factor.
//
// The conditional's frontal keys equal keysToEliminate, in the given
// order. Its parents are the union of every other key appearing across
// factors, in first-appearance order while scanning factors left to
// right. The residual is a SymbolicFactor over exactly those parent
// keys.
//
// Only single-key elimination is required by the junction-tree
// constructor, but the signature accepts an ordered slice so a caller
// eliminating a block of frontals at once (e.g. after a merge) can reuse
// the same primitive; keysToEliminate must be non-empty.
//
// Complexity: O(Σ|Keys(f)|) time and space.
func EliminateSymbolic(factors []Factor, keysToEliminate []Key) (*SymbolicConditional, *SymbolicFactor) {
	frontalSet := make(map[Key]struct{}, len(keysToEliminate))
	for _, k := range keysToEliminate {
		frontalSet[k] = struct{}{}
	}

	parents := make([]Key, 0)
	seenParent := make(map[Key]struct{})
	for _, f := range factors {
		for _, k := range f.Keys() {
			if _, isFrontal := frontalSet[k]; isFrontal {
				continue
			}
			if _, ok := seenParent[k]; ok {
				continue
			}
			seenParent[k] = struct{}{}
			parents = append(parents, k)
		}
	}

	conditional := &SymbolicConditional{
		frontals: append([]Key(nil), keysToEliminate...),
		parents:  parents,
	}
	residual := &SymbolicFactor{keys: parents}

	return conditional, residual
}
