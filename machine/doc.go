// Package machine composes rotors and a plugboard into a rotor cipher
// machine of the Enigma family.
//
// 🚀 What is Machine?
//
//	An ordered array of rotor slots. Slot 0 holds the reflector, the
//	rightmost `pawls` slots hold moving rotors and the slots in between
//	hold non-moving rotors. A plugboard permutation, hosted on a fixed
//	pseudo-rotor, wraps the whole stack.
//
// Signal path for one symbol:
//
//	advance rotors
//	→ plugboard
//	→ slots n-1 … 1 forward
//	→ reflector (slot 0)
//	→ slots 1 … n-1 backward
//	→ plugboard
//
// Stepping:
//
//	The fastest rotor (slot n-1) always steps. A rotor with a pawl also
//	steps when its right neighbour sits on a notch, and (double step) when
//	it sits on its own notch while the rotor to its left has a pawl. The
//	step set is computed from the settings before any rotor moves, then
//	applied at once.
//
// Self-reciprocity:
//
//	With the same start settings, converting a message and converting the
//	result again yields the original message.
//
// Ownership:
//
//	InsertRotors checks rotors out of the inventory as private clones, so
//	machines built from one inventory never share stepping state. A Machine
//	itself is not safe for concurrent use; give each goroutine its own.
//
// Complexity:
//
//   - Advance:       O(n) for n slots.
//   - Convert:       O(n).
//   - ConvertString: O(n·m) for m symbols.
//
// Errors:
//
//   - ErrBadGeometry:      1 < numRotors and 0 <= pawls < numRotors violated.
//   - ErrRotorCount, ErrDuplicateRotor, ErrNoReflector, ErrBadSlot,
//     ErrAlphabetMismatch: InsertRotors.
//   - ErrSettingLength, ErrInvalidSymbol: SetRotors.
//   - ErrBadPlugboard, ErrAlphabetMismatch: SetPlugboard.
//   - ErrNotReady, ErrBadIndex, ErrInvalidSymbol: conversion.
package machine
