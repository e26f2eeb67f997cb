// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

// plugboardName names the fixed pseudo-rotor hosting the plugboard.
const plugboardName = "plugboard"

// Machine is a configured rotor cipher machine. Its rotor settings change
// with every converted symbol.
type Machine struct {
	alpha     *alphabet.Alphabet
	inventory *rotor.Inventory
	slots     []*rotor.Rotor // nil until InsertRotors succeeds
	numRotors int
	pawls     int
	plugboard *rotor.Rotor
	step      []bool // scratch buffer for Advance
	cfg       machineConfig
}

// New returns a machine over alpha with numRotors slots, pawls of which
// can step, drawing rotors from inv.
// Returns ErrBadGeometry unless 1 < numRotors and 0 <= pawls < numRotors.
func New(alpha *alphabet.Alphabet, numRotors, pawls int, inv *rotor.Inventory, opts ...Option) (*Machine, error) {
	if numRotors <= 1 || pawls < 0 || pawls >= numRotors {
		return nil, fmt.Errorf("%w: %d rotors, %d pawls", ErrBadGeometry, numRotors, pawls)
	}
	if inv == nil {
		inv, _ = rotor.NewInventory()
	}
	plug, err := rotor.NewFixed(plugboardName, permutation.Identity(alpha))
	if err != nil {
		return nil, err
	}

	return &Machine{
		alpha:     alpha,
		inventory: inv,
		numRotors: numRotors,
		pawls:     pawls,
		plugboard: plug,
		step:      make([]bool, numRotors),
		cfg:       newMachineConfig(opts...),
	}, nil
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *alphabet.Alphabet { return m.alpha }

// Inventory returns the rotors available to InsertRotors.
func (m *Machine) Inventory() *rotor.Inventory { return m.inventory }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, i.e. of moving rotors.
func (m *Machine) NumPawls() int { return m.pawls }

// Ready reports whether rotors have been inserted.
func (m *Machine) Ready() bool { return m.slots != nil }

// Rotor returns the rotor in slot k (0 is the reflector, NumRotors()-1 the
// fast rotor), or nil before InsertRotors. Mutating it bypasses the
// machine's validation.
func (m *Machine) Rotor(k int) *rotor.Rotor {
	if m.slots == nil || k < 0 || k >= len(m.slots) {
		return nil
	}

	return m.slots[k]
}

// InsertRotors fills the slots with private clones of the named inventory
// rotors; names[0] names the reflector. Settings are whatever the
// inventory rotors hold; call SetRotors afterwards.
// On error the previous slot assignment is kept.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return fmt.Errorf("%w: got %d, want %d", ErrRotorCount, len(names), m.numRotors)
	}
	seen := make(map[string]struct{}, len(names))
	slots := make([]*rotor.Rotor, len(names))
	for i, name := range names {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateRotor, name)
		}
		seen[name] = struct{}{}

		r, err := m.inventory.Checkout(name)
		if err != nil {
			return fmt.Errorf("machine: slot %d: %w", i, err)
		}
		if !r.Alphabet().Equal(m.alpha) {
			return fmt.Errorf("%w: rotor %s", ErrAlphabetMismatch, name)
		}
		if err := m.fits(i, r); err != nil {
			return err
		}
		slots[i] = r
	}
	m.slots = slots
	m.cfg.logger.Debug("rotors inserted", slog.Any("rotors", names))

	return nil
}

// fits checks the slot discipline: reflector in slot 0, non-moving rotors
// in [1, n-pawls), moving rotors in [n-pawls, n).
func (m *Machine) fits(i int, r *rotor.Rotor) error {
	switch {
	case i == 0:
		if !r.Reflecting() {
			return fmt.Errorf("%w: %s", ErrNoReflector, r.Name())
		}
	case r.Reflecting():
		return fmt.Errorf("%w: reflector %s in slot %d", ErrBadSlot, r.Name(), i)
	case i < m.numRotors-m.pawls && r.Rotates():
		return fmt.Errorf("%w: moving rotor %s in non-moving slot %d", ErrBadSlot, r.Name(), i)
	case i >= m.numRotors-m.pawls && !r.Rotates():
		return fmt.Errorf("%w: %s rotor %s in moving slot %d", ErrBadSlot, r.Kind(), r.Name(), i)
	}

	return nil
}

// SetRotors positions slots 1..n-1 from setting, one symbol per slot,
// leftmost first. The reflector stays at 0.
// Returns ErrNotReady, ErrSettingLength or ErrInvalidSymbol; on error no
// rotor moves.
func (m *Machine) SetRotors(setting string) error {
	if m.slots == nil {
		return ErrNotReady
	}
	syms := []rune(setting)
	if len(syms) != m.numRotors-1 {
		return fmt.Errorf("%w: %q has %d symbols, want %d", ErrSettingLength, setting, len(syms), m.numRotors-1)
	}
	posns := make([]int, len(syms))
	for i, r := range syms {
		p, err := m.alpha.ToInt(r)
		if err != nil {
			return fmt.Errorf("%w: setting %q: %w", ErrInvalidSymbol, setting, err)
		}
		posns[i] = p
	}
	for i, p := range posns {
		if err := m.slots[i+1].Set(p); err != nil {
			return err
		}
	}
	m.cfg.logger.Debug("rotors set", slog.String("setting", setting))

	return nil
}

// Plugboard returns the current plugboard permutation.
func (m *Machine) Plugboard() *permutation.Permutation {
	return m.plugboard.Permutation()
}

// SetPlugboard installs p as the plugboard; nil restores the identity.
// Returns ErrAlphabetMismatch or ErrBadPlugboard (a cycle of three or more).
func (m *Machine) SetPlugboard(p *permutation.Permutation) error {
	if p == nil {
		p = permutation.Identity(m.alpha)
	}
	if !p.Alphabet().Equal(m.alpha) {
		return fmt.Errorf("%w: plugboard", ErrAlphabetMismatch)
	}
	if !p.Involution() {
		return fmt.Errorf("%w: %s", ErrBadPlugboard, p)
	}
	plug, err := rotor.NewFixed(plugboardName, p)
	if err != nil {
		return err
	}
	m.plugboard = plug
	m.cfg.logger.Debug("plugboard set", slog.String("cycles", p.String()))

	return nil
}

// Settings returns one symbol per slot, slot 0 (the reflector) first.
// Empty before InsertRotors.
func (m *Machine) Settings() string {
	out := make([]rune, len(m.slots))
	for i, r := range m.slots {
		out[i] = r.SettingRune()
	}

	return string(out)
}

// rotorSettings is Settings without the reflector slot.
func (m *Machine) rotorSettings() string {
	out := make([]rune, 0, len(m.slots))
	for _, r := range m.slots[1:] {
		out = append(out, r.SettingRune())
	}

	return string(out)
}
