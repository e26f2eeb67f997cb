// SPDX-License-Identifier: MIT

package machine

import "fmt"

// Convert advances the rotors and returns the encoding of contact index c.
// Returns ErrNotReady before InsertRotors and ErrBadIndex outside
// [0, alphabet size); in both cases no rotor moves.
// Complexity: O(n) for n slots.
func (m *Machine) Convert(c int) (int, error) {
	if m.slots == nil {
		return 0, ErrNotReady
	}
	if c < 0 || c >= m.alpha.Size() {
		return 0, fmt.Errorf("%w: %d", ErrBadIndex, c)
	}

	return m.convert(c), nil
}

// ConvertRune is Convert on symbols.
func (m *Machine) ConvertRune(r rune) (rune, error) {
	if m.slots == nil {
		return 0, ErrNotReady
	}
	c, err := m.alpha.ToInt(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
	}

	return m.alpha.ToChar(m.convert(c)), nil
}

// ConvertString converts msg symbol by symbol, left to right, carrying rotor
// state between symbols. The whole message is validated first, so a message
// with a symbol outside the alphabet is rejected before any rotor moves.
// Complexity: O(L·n) for a message of L symbols and n slots.
func (m *Machine) ConvertString(msg string) (string, error) {
	if m.slots == nil {
		return "", ErrNotReady
	}
	syms := []rune(msg)
	idx := make([]int, len(syms))
	for i, r := range syms {
		c, err := m.alpha.ToInt(r)
		if err != nil {
			return "", fmt.Errorf("%w: position %d: %w", ErrInvalidSymbol, i, err)
		}
		idx[i] = c
	}
	out := make([]rune, len(idx))
	for i, c := range idx {
		out[i] = m.alpha.ToChar(m.convert(c))
	}

	return string(out), nil
}

// convert runs the full signal path for a valid index.
func (m *Machine) convert(c int) int {
	m.Advance()

	var tr *Trace
	if m.cfg.tracer != nil {
		tr = &Trace{Settings: m.rotorSettings(), Path: make([]rune, 0, 2*m.numRotors+2)}
		tr.Path = append(tr.Path, m.alpha.ToChar(c))
	}
	visit := func(c int) int {
		if tr != nil {
			tr.Path = append(tr.Path, m.alpha.ToChar(c))
		}
		return c
	}

	// plugboard, then right to left up to the reflector
	c = visit(m.plugboard.ConvertForward(c))
	for i := m.numRotors - 1; i > 0; i-- {
		c = visit(m.slots[i].ConvertForward(c))
	}
	c = visit(m.slots[0].ConvertForward(c))
	// back out left to right through the inverse wirings
	for i := 1; i < m.numRotors; i++ {
		c = visit(m.slots[i].ConvertBackward(c))
	}
	c = visit(m.plugboard.ConvertBackward(c))

	if tr != nil {
		m.cfg.tracer(*tr)
	}

	return c
}
