// Package config reads machine descriptions: the alphabet, the slot and
// pawl counts, and the inventory of available rotors.
//
// Two formats are accepted.
//
// Text (".conf" and anything not YAML):
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ            # alphabet
//	5 3                                   # slots, pawls
//	I MQ (AELTPHQXRU) (BKNW) (CMOY) ...   # name, type, cycles
//	B R (AE) (BN) (CK) (DQ) (FU) (GY)
//	  (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)  # a line starting with "(" continues
//
// The type token is M followed by the notch symbols (moving), N (fixed)
// or R (reflector). Blank lines are ignored.
//
// YAML (".yaml", ".yml"):
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	slots: 5
//	pawls: 3
//	rotors:
//	  - {name: I, kind: moving, notches: Q, cycles: "(AELTPHQXRU) (BKNW) ..."}
//	  - {name: B, kind: reflector, cycles: "(AE) (BN) ..."}
//
// Default returns the embedded naval inventory (rotors I..VIII, Beta,
// Gamma, reflectors B and C) in the five-slot, three-pawl geometry.
//
// Errors:
//
//   - ErrTruncated:           the input ends before a required field.
//   - ErrBadHeader:           alphabet or slot/pawl line unusable.
//   - ErrBadRotorDescription: malformed rotor line, kind or YAML entry.
//
// Errors from the alphabet, permutation and rotor packages are wrapped, so
// errors.Is works against their sentinels as well.
package config
