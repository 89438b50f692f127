package elimtree

import (
	"strconv"

	"github.com/arboriq/jtree/symbolic"
)

// IDFn generates a symbolic key from a zero-based index. It must be pure
// and deterministic: the same idx always yields the same key.
type IDFn func(idx int) symbolic.Key

// DefaultIDFn returns the decimal string of idx, e.g. 0 -> "0", 12 -> "12".
func DefaultIDFn(idx int) symbolic.Key {
	return symbolic.Key(strconv.Itoa(idx))
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0,25].
// Panics if idx is outside that range.
func SymbolIDFn(idx int) symbolic.Key {
	if idx < 0 || idx > 25 {
		panic("elimtree: SymbolIDFn: idx must be in [0,25]")
	}
	return symbolic.Key(string('A' + rune(idx)))
}
