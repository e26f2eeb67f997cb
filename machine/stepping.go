// SPDX-License-Identifier: MIT

package machine

// hasPawl reports whether slot i can be driven by the stepping mechanism:
// it is one of the rightmost pawls slots and holds a moving rotor.
func (m *Machine) hasPawl(i int) bool {
	return i >= 1 && i >= m.numRotors-m.pawls && m.slots[i].Rotates()
}

// Advance steps the rotors once, as happens before every converted symbol.
//
// Eligibility is decided for all slots from the pre-step notch states, and
// only then are the eligible rotors advanced:
//
//   - the fastest rotor (slot n-1) always steps;
//   - a rotor with a pawl steps when its right neighbour is at a notch;
//   - a rotor at its own notch steps together with its left neighbour when
//     that neighbour has a pawl (double step).
//
// Advance is a no-op before InsertRotors.
// Complexity: O(n) for n slots, no allocation.
func (m *Machine) Advance() {
	if m.slots == nil {
		return
	}
	last := m.numRotors - 1
	// Decide every slot against the unmoved rotors first.
	for i := range m.step {
		m.step[i] = false
	}
	for i := last; i >= 1; i-- {
		if !m.hasPawl(i) {
			continue
		}
		switch {
		case i == last:
			m.step[i] = true
		case m.slots[i+1].AtNotch():
			m.step[i] = true
		case m.hasPawl(i-1) && m.slots[i].AtNotch():
			m.step[i] = true
		}
	}
	// Then move them together.
	for i, s := range m.step {
		if s {
			m.slots[i].Advance()
		}
	}
}
