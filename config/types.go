package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

// Sentinel errors for configuration intake.
var (
	// ErrTruncated indicates input that ends before required fields.
	ErrTruncated = errors.New("config: configuration truncated")

	// ErrBadHeader indicates an unusable alphabet or slot/pawl line.
	ErrBadHeader = errors.New("config: bad header")

	// ErrBadRotorDescription indicates a malformed rotor description.
	ErrBadRotorDescription = errors.New("config: bad rotor description")
)

// Config is a parsed machine description. The inventory is shared by every
// machine built from it; machines check rotors out as private clones.
type Config struct {
	Alphabet  *alphabet.Alphabet
	NumRotors int
	Pawls     int
	Inventory *rotor.Inventory
}

// NewMachine returns a fresh machine for this configuration.
func (c *Config) NewMachine(opts ...machine.Option) (*machine.Machine, error) {
	return machine.New(c.Alphabet, c.NumRotors, c.Pawls, c.Inventory, opts...)
}

// checkGeometry mirrors machine.New's slot and pawl rule so bad headers
// are reported where they are read.
func checkGeometry(slots, pawls int) error {
	if slots <= 1 || pawls < 0 || pawls >= slots {
		return fmt.Errorf("%w: need 1 < slots and 0 <= pawls < slots, got %d %d", ErrBadHeader, slots, pawls)
	}

	return nil
}

// description is one rotor as read, before its wiring is complete.
type description struct {
	line    int
	name    string
	kind    rotor.Kind
	notches string
	cycles  string
}

// build turns d into a rotor over a.
func (d description) build(a *alphabet.Alphabet) (*rotor.Rotor, error) {
	p, err := permutation.New(d.cycles, a)
	if err != nil {
		return nil, fmt.Errorf("config: line %d: rotor %s: %w", d.line, d.name, err)
	}
	r, err := rotor.New(d.name, d.kind, p, d.notches)
	if err != nil {
		return nil, fmt.Errorf("config: line %d: %w", d.line, err)
	}

	return r, nil
}
