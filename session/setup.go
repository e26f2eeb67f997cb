package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
)

// Setup is one parsed setup line.
type Setup struct {
	// Rotors lists rotor names left to right, reflector first.
	Rotors []string
	// Settings holds one symbol per non-reflector rotor.
	Settings string
	// Plugboard holds the plugboard cycles; empty means none.
	Plugboard string
}

// IsSetup reports whether line is a setup line.
func IsSetup(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "*")
}

// ParseSetup parses "* REFLECTOR ROTOR... SETTINGS [CYCLES...]". The
// marker may touch the first name ("*B Beta ..."). Once a token starting
// with "(" appears, everything after it belongs to the plugboard.
func ParseSetup(line string) (Setup, error) {
	if !IsSetup(line) {
		return Setup{}, ErrNotSetup
	}
	body := strings.TrimPrefix(strings.TrimSpace(line), "*")
	fields := strings.Fields(body)

	var s Setup
	words := fields
	for i, f := range fields {
		if strings.HasPrefix(f, "(") {
			words = fields[:i]
			s.Plugboard = strings.Join(fields[i:], " ")
			break
		}
	}
	// reflector, at least one rotor, settings
	if len(words) < 3 {
		return Setup{}, fmt.Errorf("%w: want reflector, rotors and settings in %q", ErrBadSetup, line)
	}
	s.Rotors = append([]string(nil), words[:len(words)-1]...)
	s.Settings = words[len(words)-1]

	return s, nil
}

// String renders s as a setup line that ParseSetup accepts.
func (s Setup) String() string {
	parts := append([]string{"*"}, s.Rotors...)
	parts = append(parts, s.Settings)
	if s.Plugboard != "" {
		parts = append(parts, s.Plugboard)
	}

	return strings.Join(parts, " ")
}

// Apply inserts the rotors, sets them, and installs the plugboard (the
// identity when none is given). The plugboard text is checked before the
// machine is touched; a later failure can leave the new rotors inserted.
func (s Setup) Apply(m *machine.Machine) error {
	pb, err := permutation.New(s.Plugboard, m.Alphabet())
	if err != nil {
		return fmt.Errorf("%w: plugboard: %w", ErrBadSetup, err)
	}
	if err := m.InsertRotors(s.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(s.Settings); err != nil {
		return err
	}

	return m.SetPlugboard(pb)
}
