// SPDX-License-Identifier: MIT

package alphabet

import "errors"

// Sentinel errors for alphabet operations.
var (
	// ErrEmptyAlphabet indicates an alphabet with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols")

	// ErrDuplicateSymbol indicates a symbol listed more than once.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrReservedSymbol indicates a structural symbol ('(', ')', '*' or whitespace).
	ErrReservedSymbol = errors.New("alphabet: reserved symbol")

	// ErrSymbolNotFound indicates a symbol that is not part of the alphabet.
	ErrSymbolNotFound = errors.New("alphabet: symbol not in alphabet")
)

// UpperLatin lists the symbols of the default alphabet.
const UpperLatin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
