// Package rotor models the wheels of a rotor cipher machine.
//
// What:
//
//   - Rotor is a tagged variant over Kind: Plain, Moving, Fixed, Reflector.
//     All variants share a name, a permutation (the wiring at setting 0)
//     and a current setting; Moving rotors also carry notch positions.
//   - ConvertForward / ConvertBackward push a contact index through the
//     wiring rotated by the current setting.
//   - Inventory is the named collection of available rotors. Checkout hands
//     out private clones so one rotor instance is never stepped by two
//     machines at once.
//
// Behaviour by kind:
//
//	kind       rotates  reflecting  Advance   Set
//	Plain      no       no          no-op     any position
//	Moving     yes      no          +1 mod n  any position
//	Fixed      no       no          no-op     any position
//	Reflector  no       yes         no-op     only 0
//
// Complexity:
//
//   - ConvertForward / ConvertBackward / Advance / AtNotch: O(1) (AtNotch is
//     O(k) for k notches, k is tiny in practice).
//   - Inventory.Checkout: O(k) to copy notches.
//
// Errors:
//
//   - ErrEmptyName, ErrNilPermutation, ErrBadNotch, ErrNotDerangement: construction.
//   - ErrBadSetting, ErrReflectorSetting: Set / SetRune.
//   - ErrBadKind: ParseKind.
//   - ErrNilRotor, ErrDuplicateRotor, ErrUnknownRotor: Inventory.
package rotor
