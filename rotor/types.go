// SPDX-License-Identifier: MIT

package rotor

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rotor construction, setting and inventory lookups.
var (
	// ErrEmptyName indicates a rotor without a name.
	ErrEmptyName = errors.New("rotor: empty name")

	// ErrNilPermutation indicates a rotor without wiring.
	ErrNilPermutation = errors.New("rotor: nil permutation")

	// ErrNilRotor indicates a nil rotor handed to an Inventory.
	ErrNilRotor = errors.New("rotor: nil rotor")

	// ErrBadNotch indicates a notch symbol outside the alphabet, or notches
	// given to a rotor kind that does not move.
	ErrBadNotch = errors.New("rotor: bad notch")

	// ErrNotDerangement indicates reflector wiring with a fixed point.
	ErrNotDerangement = errors.New("rotor: reflector wiring maps a symbol to itself")

	// ErrBadSetting indicates a position outside [0, size).
	ErrBadSetting = errors.New("rotor: setting out of range")

	// ErrReflectorSetting indicates an attempt to move a reflector off position 0.
	ErrReflectorSetting = errors.New("rotor: reflector has only one position")

	// ErrBadKind indicates an unknown rotor kind designator.
	ErrBadKind = errors.New("rotor: unknown kind")

	// ErrDuplicateRotor indicates two rotors sharing one name.
	ErrDuplicateRotor = errors.New("rotor: duplicate rotor name")

	// ErrUnknownRotor indicates a name absent from the inventory.
	ErrUnknownRotor = errors.New("rotor: unknown rotor")
)

// Kind tags the rotor variant.
type Kind int

const (
	// Plain is the base rotor: it neither steps nor reflects.
	Plain Kind = iota
	// Moving rotors step and carry notches.
	Moving
	// Fixed rotors never step. The plugboard is hosted on one.
	Fixed
	// Reflector is a fixed rotor pinned at setting 0 that folds the signal back.
	Reflector
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Moving:
		return "moving"
	case Fixed:
		return "fixed"
	case Reflector:
		return "reflector"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Letter returns the single-letter designator used in text configurations
// ("M", "N", "R"); Plain has none and returns "P".
func (k Kind) Letter() string {
	switch k {
	case Moving:
		return "M"
	case Fixed:
		return "N"
	case Reflector:
		return "R"
	default:
		return "P"
	}
}

// ParseKind accepts either a designator letter (M, N, R, P) or a kind word
// (moving, fixed, reflector, plain), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "moving":
		return Moving, nil
	case "n", "fixed":
		return Fixed, nil
	case "r", "reflector", "reflecting":
		return Reflector, nil
	case "p", "plain":
		return Plain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadKind, s)
	}
}
