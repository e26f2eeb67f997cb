// Package alphabet defines the ordered symbol set every enigma component
// works over.
//
// What:
//
//   - Alphabet is an immutable, duplicate-free sequence of runes.
//   - Symbol k has index k; ToInt and ToChar convert between the two.
//   - Default returns the 26 upper-case Latin letters A..Z.
//
// Why:
//
//   - Permutations, rotors and machines compute on indices in [0, Size).
//     The alphabet is the single place where symbols are translated.
//   - One Alphabet value is shared read-only by every component built on it.
//
// Reserved symbols:
//
//	'(' and ')' delimit cycles, '*' opens a setup directive and whitespace
//	separates tokens. None of them may be part of an alphabet.
//
// Complexity:
//
//   - New:     O(n) time, O(n) memory.
//   - ToInt:   O(1) (map lookup).
//   - ToChar:  O(1).
//
// Errors:
//
//   - ErrEmptyAlphabet:   no symbols given.
//   - ErrDuplicateSymbol: a symbol occurs twice.
//   - ErrReservedSymbol:  a structural symbol was used.
//   - ErrSymbolNotFound:  ToInt on a symbol outside the alphabet.
package alphabet
