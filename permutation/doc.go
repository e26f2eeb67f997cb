// Package permutation models a bijective substitution over an alphabet,
// written in cycle notation.
//
// 🚀 What is a permutation here?
//
//	A partition of the alphabet into disjoint cycles. The cycle
//	(s0 s1 ... sn) maps s0→s1→...→sn→s0. A symbol that appears in no
//	declared cycle is a singleton cycle and maps to itself. Singletons
//	are synthesised structurally when the permutation is built, so the
//	invariant "every symbol lies in exactly one cycle" always holds.
//
// ✨ Operations:
//   - Permute, Invert: index level, arguments wrapped modulo Size.
//   - PermuteRune, InvertRune: symbol level, ErrInvalidSymbol outside the alphabet.
//   - AddCycle: append cycles during configuration assembly.
//   - Derangement, Involution: structural predicates used to validate
//     reflectors and plugboards.
//
// Permute and Invert look up the declared mapping for the symbol at index
// Wrap(i); they do not just rotate the index. Rotor offsets are applied
// around them by the rotor package, so rotor output is the same either way.
//
// ⚙️ Usage:
//
//	a := alphabet.Default()
//	p, err := permutation.New("(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", a)
//	if err != nil {
//	  // errors.Is(err, permutation.ErrMalformedCycle)
//	}
//	e, _ := p.PermuteRune('A') // 'E'
//
// Cycle text grammar:
//
//	cycles := { ws | "(" symbol { ws | symbol } ")" }
//
//	Empty "()" groups, nested or unbalanced parentheses, symbols outside
//	any group, symbols outside the alphabet and a symbol placed twice are
//	all rejected with ErrMalformedCycle.
//
// Performance:
//
//   - New / AddCycle: O(n + len(text)) time, O(n) memory.
//   - Permute / Invert (both levels): O(1) via precomputed tables.
package permutation
