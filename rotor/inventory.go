// SPDX-License-Identifier: MIT

package rotor

import "fmt"

// Inventory is the named collection of rotors a machine may be built from.
// Names keep their declaration order.
type Inventory struct {
	order  []string
	byName map[string]*Rotor
}

// NewInventory collects rotors, rejecting duplicate names with ErrDuplicateRotor.
func NewInventory(rotors ...*Rotor) (*Inventory, error) {
	inv := &Inventory{byName: make(map[string]*Rotor, len(rotors))}
	for _, r := range rotors {
		if err := inv.Add(r); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

// Add registers r under its name.
func (inv *Inventory) Add(r *Rotor) error {
	if r == nil {
		return ErrNilRotor
	}
	if _, dup := inv.byName[r.name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateRotor, r.name)
	}
	inv.order = append(inv.order, r.name)
	inv.byName[r.name] = r

	return nil
}

// Get returns the inventory's own instance of the named rotor.
// Callers that step rotors should use Checkout instead.
func (inv *Inventory) Get(name string) (*Rotor, bool) {
	r, ok := inv.byName[name]
	return r, ok
}

// Checkout returns a private clone of the named rotor, or ErrUnknownRotor.
func (inv *Inventory) Checkout(name string) (*Rotor, error) {
	r, ok := inv.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRotor, name)
	}

	return r.Clone(), nil
}

// Names returns rotor names in declaration order.
func (inv *Inventory) Names() []string {
	return append([]string(nil), inv.order...)
}

// Rotors returns the inventory's instances in declaration order.
func (inv *Inventory) Rotors() []*Rotor {
	out := make([]*Rotor, len(inv.order))
	for i, n := range inv.order {
		out[i] = inv.byName[n]
	}

	return out
}

// Len returns the number of rotors.
func (inv *Inventory) Len() int {
	return len(inv.order)
}
