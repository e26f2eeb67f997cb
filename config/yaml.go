package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/rotor"
)

// fileConfig is the YAML document shape.
type fileConfig struct {
	Alphabet string      `yaml:"alphabet"`
	Slots    int         `yaml:"slots"`
	Pawls    int         `yaml:"pawls"`
	Rotors   []fileRotor `yaml:"rotors"`
}

type fileRotor struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Notches string `yaml:"notches,omitempty"`
	Cycles  string `yaml:"cycles,omitempty"`
}

// ParseYAML reads the YAML format from r. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrTruncated)
		}
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return fc.build()
}

func (fc fileConfig) build() (*Config, error) {
	if fc.Alphabet == "" {
		return nil, fmt.Errorf("%w: missing alphabet", ErrTruncated)
	}
	a, err := alphabet.New(fc.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if err := checkGeometry(fc.Slots, fc.Pawls); err != nil {
		return nil, err
	}
	inv, err := rotor.NewInventory()
	if err != nil {
		return nil, err
	}
	for i, fr := range fc.Rotors {
		if fr.Name == "" {
			return nil, fmt.Errorf("%w: rotors[%d]: missing name", ErrBadRotorDescription, i)
		}
		kind, err := rotor.ParseKind(fr.Kind)
		if err != nil || kind == rotor.Plain {
			return nil, fmt.Errorf("%w: rotors[%d]: kind %q is not moving, fixed or reflector", ErrBadRotorDescription, i, fr.Kind)
		}
		d := description{line: i + 1, name: fr.Name, kind: kind, notches: fr.Notches, cycles: fr.Cycles}
		r, err := d.build(a)
		if err != nil {
			return nil, err
		}
		if err := inv.Add(r); err != nil {
			return nil, fmt.Errorf("config: rotors[%d]: %w", i, err)
		}
	}

	return &Config{Alphabet: a, NumRotors: fc.Slots, Pawls: fc.Pawls, Inventory: inv}, nil
}

// ToYAML renders cfg as a YAML document accepted by ParseYAML.
func ToYAML(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Alphabet: cfg.Alphabet.Letters(),
		Slots:    cfg.NumRotors,
		Pawls:    cfg.Pawls,
	}
	for _, r := range cfg.Inventory.Rotors() {
		fc.Rotors = append(fc.Rotors, fileRotor{
			Name:    r.Name(),
			Kind:    r.Kind().String(),
			Notches: r.Notches(),
			Cycles:  r.Permutation().Notation(),
		})
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return nil, fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal config yaml: %w", err)
	}

	return buf.Bytes(), nil
}
