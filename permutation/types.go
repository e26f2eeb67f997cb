// SPDX-License-Identifier: MIT

package permutation

import "errors"

// Sentinel errors for permutation operations.
var (
	// ErrMalformedCycle indicates unparsable cycle text or a symbol placed twice.
	ErrMalformedCycle = errors.New("permutation: malformed cycle")

	// ErrInvalidSymbol indicates a symbol outside the permutation's alphabet.
	ErrInvalidSymbol = errors.New("permutation: invalid symbol")
)

// cycle is one orbit of the permutation, stored as alphabet indices.
// implicit marks singletons synthesised for symbols no declared cycle covers.
type cycle struct {
	syms     []int
	implicit bool
}
