package symbolic

// Key identifies a variable. The core never interprets a Key; it only
// compares keys for equality, so any comparable, loggable identifier
// (a COLAMD-assigned index rendered as a string, a named symbol, ...)
// works.
type Key = string

// Factor is the one method the core requires of a numeric or symbolic
// factor: the set of keys it touches. Any concrete factor type that
// implements this plugs straight into EliminateSymbolic and
// junctiontree.BuildJunctionTree.
type Factor interface {
	Keys() []Key
}

// SymbolicFactor is an unordered set of keys and nothing else.
type SymbolicFactor struct {
	keys []Key
}

// NewSymbolicFactor builds a SymbolicFactor over the given keys,
// deduplicating while preserving first-appearance order.
func NewSymbolicFactor(keys ...Key) *SymbolicFactor {
	return &SymbolicFactor{keys: dedup(keys)}
}

// Keys returns the factor's keys in first-appearance order. The caller
// must not mutate the returned slice.
func (f *SymbolicFactor) Keys() []Key {
	if f == nil {
		return nil
	}
	return f.keys
}

// SymbolicConditional is an ordered sequence of frontal keys followed by
// an ordered sequence of parent keys, produced by eliminating the
// frontals from some set of factors. It is immutable once returned by
// EliminateSymbolic.
type SymbolicConditional struct {
	frontals []Key
	parents  []Key
}

// Frontals returns the keys jointly eliminated to produce this
// conditional, in the order they were eliminated.
func (c *SymbolicConditional) Frontals() []Key {
	return c.frontals
}

// Parents returns the separator keys, in first-appearance order among
// the factors that were eliminated.
func (c *SymbolicConditional) Parents() []Key {
	return c.parents
}

// NrFrontals reports len(Frontals()).
func (c *SymbolicConditional) NrFrontals() int {
	return len(c.frontals)
}

// NrParents reports len(Parents()).
func (c *SymbolicConditional) NrParents() int {
	return len(c.parents)
}

// Size reports NrFrontals() + NrParents().
func (c *SymbolicConditional) Size() int {
	return len(c.frontals) + len(c.parents)
}

// dedup removes repeated keys, keeping the first occurrence of each.
func dedup(keys []Key) []Key {
	if len(keys) == 0 {
		return nil
	}
	seen := make(map[Key]struct{}, len(keys))
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
