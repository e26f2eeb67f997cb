package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/rotor"
)

// Parse reads the text format from r.
func Parse(r io.Reader) (*Config, error) {
	sc := bufio.NewScanner(r)
	var (
		cfg   Config
		descs []description
		stage int // 0: alphabet, 1: geometry, 2: rotors
		line  int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch stage {
		case 0:
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: alphabet must be a single token", ErrBadHeader, line)
			}
			a, err := alphabet.New(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrBadHeader, line, err)
			}
			cfg.Alphabet = a
			stage++
		case 1:
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: want \"SLOTS PAWLS\"", ErrBadHeader, line)
			}
			slots, err1 := strconv.Atoi(fields[0])
			pawls, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("%w: line %d: slot and pawl counts must be integers", ErrBadHeader, line)
			}
			if err := checkGeometry(slots, pawls); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			cfg.NumRotors, cfg.Pawls = slots, pawls
			stage++
		default:
			if strings.HasPrefix(fields[0], "(") {
				if len(descs) == 0 {
					return nil, fmt.Errorf("%w: line %d: cycles before any rotor", ErrBadRotorDescription, line)
				}
				last := &descs[len(descs)-1]
				last.cycles += " " + strings.Join(fields, " ")
				continue
			}
			d, err := parseRotorLine(fields, line)
			if err != nil {
				return nil, err
			}
			descs = append(descs, d)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	if stage < 2 {
		return nil, fmt.Errorf("%w: missing %s", ErrTruncated, [...]string{"alphabet", "slot/pawl counts"}[stage])
	}

	inv, err := rotor.NewInventory()
	if err != nil {
		return nil, err
	}
	for _, d := range descs {
		r, err := d.build(cfg.Alphabet)
		if err != nil {
			return nil, err
		}
		if err := inv.Add(r); err != nil {
			return nil, fmt.Errorf("config: line %d: %w", d.line, err)
		}
	}
	cfg.Inventory = inv

	return &cfg, nil
}

// parseRotorLine reads "NAME TYPE [CYCLES...]".
func parseRotorLine(fields []string, line int) (description, error) {
	if len(fields) < 2 {
		return description{}, fmt.Errorf("%w: line %d: rotor %s has no type", ErrTruncated, line, fields[0])
	}
	typ := []rune(fields[1])
	kind, err := rotor.ParseKind(string(typ[0]))
	if err != nil || kind == rotor.Plain {
		return description{}, fmt.Errorf("%w: line %d: type %q is not M<notches>, N or R", ErrBadRotorDescription, line, fields[1])
	}
	notches := string(typ[1:])
	if kind != rotor.Moving && notches != "" {
		return description{}, fmt.Errorf("%w: line %d: %s rotor %s cannot have notches", ErrBadRotorDescription, line, kind, fields[0])
	}

	return description{
		line:    line,
		name:    fields[0],
		kind:    kind,
		notches: notches,
		cycles:  strings.Join(fields[2:], " "),
	}, nil
}

// WriteText renders cfg in the text format. Parse(WriteText(cfg)) yields an
// equivalent configuration.
func WriteText(w io.Writer, cfg *Config) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, cfg.Alphabet.Letters())
	fmt.Fprintf(bw, "%d %d\n", cfg.NumRotors, cfg.Pawls)
	for _, r := range cfg.Inventory.Rotors() {
		typ := r.Kind().Letter()
		if r.Kind() == rotor.Moving {
			typ += r.Notches()
		}
		if cycles := r.Permutation().Notation(); cycles != "" {
			fmt.Fprintf(bw, "%s %s %s\n", r.Name(), typ, cycles)
		} else {
			fmt.Fprintf(bw, "%s %s\n", r.Name(), typ)
		}
	}

	return bw.Flush()
}
