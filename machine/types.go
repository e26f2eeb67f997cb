// SPDX-License-Identifier: MIT

package machine

import (
	"errors"
	"strings"
)

// Sentinel errors for machine assembly and conversion.
var (
	// ErrBadGeometry indicates an impossible slot or pawl count.
	ErrBadGeometry = errors.New("machine: bad rotor/pawl count")

	// ErrRotorCount indicates a rotor list whose length is not the slot count.
	ErrRotorCount = errors.New("machine: wrong number of rotors")

	// ErrDuplicateRotor indicates one rotor named twice in a setup.
	ErrDuplicateRotor = errors.New("machine: rotor named more than once")

	// ErrNoReflector indicates slot 0 does not hold a reflector.
	ErrNoReflector = errors.New("machine: first rotor must be a reflector")

	// ErrBadSlot indicates a rotor of the wrong kind for its slot.
	ErrBadSlot = errors.New("machine: rotor kind does not fit slot")

	// ErrAlphabetMismatch indicates a rotor or plugboard over another alphabet.
	ErrAlphabetMismatch = errors.New("machine: alphabet mismatch")

	// ErrSettingLength indicates a setting string not of length numRotors-1.
	ErrSettingLength = errors.New("machine: wrong setting length")

	// ErrBadPlugboard indicates a plugboard cycle longer than two symbols.
	ErrBadPlugboard = errors.New("machine: plugboard cycles must pair symbols")

	// ErrNotReady indicates conversion before InsertRotors succeeded.
	ErrNotReady = errors.New("machine: rotors not inserted")

	// ErrBadIndex indicates a contact index outside [0, alphabet size).
	ErrBadIndex = errors.New("machine: index out of range")

	// ErrInvalidSymbol indicates a symbol outside the machine's alphabet.
	ErrInvalidSymbol = errors.New("machine: invalid symbol")
)

// Trace describes one converted symbol for diagnostics.
type Trace struct {
	// Settings holds the rotor settings of slots 1..n-1 after stepping.
	Settings string
	// Path starts with the input symbol and lists the symbol after the
	// plugboard, after every rotor pass and after the final plugboard.
	Path []rune
}

// String renders the trace as "[AXLE] F -> ... -> Q".
func (tr Trace) String() string {
	parts := make([]string, len(tr.Path))
	for i, r := range tr.Path {
		parts[i] = string(r)
	}

	return "[" + tr.Settings + "] " + strings.Join(parts, " -> ")
}
