// SPDX-License-Identifier: MIT

package rotor

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// Rotor is one wheel: a permutation seen through a rotatable offset.
// The permutation is shared and never mutated by the rotor; the setting
// belongs to this instance alone.
type Rotor struct {
	name    string
	kind    Kind
	perm    *permutation.Permutation
	setting int
	notches []int // Moving only
}

// New builds a rotor of the given kind. notches is only meaningful for
// Moving rotors; any other kind with notches returns ErrBadNotch.
func New(name string, kind Kind, perm *permutation.Permutation, notches string) (*Rotor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if perm == nil {
		return nil, fmt.Errorf("rotor %s: %w", name, ErrNilPermutation)
	}
	r := &Rotor{name: name, kind: kind, perm: perm}
	switch kind {
	case Moving:
		for _, c := range notches {
			i, err := perm.Alphabet().ToInt(c)
			if err != nil {
				return nil, fmt.Errorf("rotor %s: %w: %w", name, ErrBadNotch, err)
			}
			r.notches = append(r.notches, i)
		}
	case Plain, Fixed, Reflector:
		if notches != "" {
			return nil, fmt.Errorf("rotor %s: %w: %s rotors have no notches", name, ErrBadNotch, kind)
		}
		if kind == Reflector && !perm.Derangement() {
			return nil, fmt.Errorf("rotor %s: %w", name, ErrNotDerangement)
		}
	default:
		return nil, fmt.Errorf("rotor %s: %w: %d", name, ErrBadKind, int(kind))
	}

	return r, nil
}

// NewPlain returns a base rotor that neither steps nor reflects.
func NewPlain(name string, perm *permutation.Permutation) (*Rotor, error) {
	return New(name, Plain, perm, "")
}

// NewMoving returns a stepping rotor with notches at the given ring symbols.
func NewMoving(name string, perm *permutation.Permutation, notches string) (*Rotor, error) {
	return New(name, Moving, perm, notches)
}

// NewFixed returns a rotor that never steps.
func NewFixed(name string, perm *permutation.Permutation) (*Rotor, error) {
	return New(name, Fixed, perm, "")
}

// NewReflector returns a reflector; its wiring must be a derangement.
func NewReflector(name string, perm *permutation.Permutation) (*Rotor, error) {
	return New(name, Reflector, perm, "")
}

// Name returns the rotor's name.
func (r *Rotor) Name() string { return r.name }

// Kind returns the variant tag.
func (r *Rotor) Kind() Kind { return r.kind }

// Permutation returns the wiring at setting 0.
func (r *Rotor) Permutation() *permutation.Permutation { return r.perm }

// Alphabet returns the alphabet of the wiring.
func (r *Rotor) Alphabet() *alphabet.Alphabet { return r.perm.Alphabet() }

// Size returns the alphabet size.
func (r *Rotor) Size() int { return r.perm.Size() }

// Rotates reports whether the rotor has a ratchet and can step.
func (r *Rotor) Rotates() bool { return r.kind == Moving }

// Reflecting reports whether the rotor is a reflector.
func (r *Rotor) Reflecting() bool { return r.kind == Reflector }

// Setting returns the current position in [0, Size()).
func (r *Rotor) Setting() int { return r.setting }

// SettingRune returns the ring symbol at the current position.
func (r *Rotor) SettingRune() rune { return r.Alphabet().ToChar(r.setting) }

// Set moves the rotor to posn.
// Returns ErrBadSetting outside [0, Size()) and ErrReflectorSetting for a
// reflector asked for anything but 0. Setting a reflector to 0 is a no-op.
func (r *Rotor) Set(posn int) error {
	if r.kind == Reflector && posn != 0 {
		return fmt.Errorf("rotor %s: %w: %d", r.name, ErrReflectorSetting, posn)
	}
	if posn < 0 || posn >= r.Size() {
		return fmt.Errorf("rotor %s: %w: %d not in [0,%d)", r.name, ErrBadSetting, posn, r.Size())
	}
	r.setting = posn

	return nil
}

// SetRune moves the rotor to the position of ring symbol c.
func (r *Rotor) SetRune(c rune) error {
	i, err := r.Alphabet().ToInt(c)
	if err != nil {
		return fmt.Errorf("rotor %s: %w: %w", r.name, ErrBadSetting, err)
	}

	return r.Set(i)
}

// Notches returns the notch symbols in declaration order; empty unless Moving.
func (r *Rotor) Notches() string {
	out := make([]rune, len(r.notches))
	for i, n := range r.notches {
		out[i] = r.Alphabet().ToChar(n)
	}

	return string(out)
}

// AtNotch reports whether a Moving rotor currently sits on one of its notches.
// Complexity: O(k) for k notches.
func (r *Rotor) AtNotch() bool {
	if r.kind != Moving {
		return false
	}
	for _, n := range r.notches {
		if n == r.setting {
			return true
		}
	}

	return false
}

// Advance steps a Moving rotor by one position with wraparound. Other kinds
// ignore the call.
// Complexity: O(1).
func (r *Rotor) Advance() {
	if r.kind == Moving {
		r.setting = (r.setting + 1) % r.Size()
	}
}

// ConvertForward maps contact p (in [0, Size())) through the wiring at the
// current setting: shift in by the setting, permute, shift back out.
// Complexity: O(1).
func (r *Rotor) ConvertForward(p int) int {
	out := r.perm.Permute(p + r.setting)
	return r.perm.Wrap(out - r.setting)
}

// ConvertBackward is the inverse of ConvertForward at the same setting.
// Complexity: O(1).
func (r *Rotor) ConvertBackward(e int) int {
	out := r.perm.Invert(e + r.setting)
	return r.perm.Wrap(out - r.setting)
}

// Clone returns an independent copy sharing the immutable wiring.
// Complexity: O(k) for k notches.
func (r *Rotor) Clone() *Rotor {
	c := *r
	c.notches = append([]int(nil), r.notches...)

	return &c
}

// String implements fmt.Stringer.
func (r *Rotor) String() string {
	return "Rotor " + r.name
}
