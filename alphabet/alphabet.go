// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"unicode"
)

// Alphabet is an ordered set of distinct symbols. It is immutable once built.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds an Alphabet whose k-th symbol (numbering from 0) has index k.
// Returns ErrEmptyAlphabet, ErrDuplicateSymbol or ErrReservedSymbol.
// Complexity: O(n) time and memory.
func New(chars string) (*Alphabet, error) {
	symbols := []rune(chars)
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if IsReserved(r) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrReservedSymbol, r, i)
		}
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: symbols, index: index}, nil
}

// Default returns the alphabet of upper-case Latin letters A..Z.
func Default() *Alphabet {
	a, err := New(UpperLatin)
	if err != nil {
		// UpperLatin is a constant without duplicates or reserved runes.
		panic(err)
	}

	return a
}

// IsReserved reports whether r has structural meaning in cycle text or
// setup directives and therefore cannot be an alphabet symbol.
func IsReserved(r rune) bool {
	return r == '(' || r == ')' || r == '*' || unicode.IsSpace(r)
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is one of the symbols.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToInt returns the index of r, or ErrSymbolNotFound.
func (a *Alphabet) ToInt(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrSymbolNotFound, r)
	}

	return i, nil
}

// ToChar returns the symbol at index i. The caller guarantees 0 <= i < Size().
func (a *Alphabet) ToChar(i int) rune {
	return a.symbols[i]
}

// Letters returns the symbols in index order.
func (a *Alphabet) Letters() string {
	return string(a.symbols)
}

// Equal reports whether a and b hold the same symbols in the same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.symbols) != len(b.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if b.symbols[i] != r {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (a *Alphabet) String() string {
	return a.Letters()
}
