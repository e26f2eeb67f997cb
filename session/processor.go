package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/machine"
)

// Processor converts message streams with a single machine whose state
// persists across lines and across calls to Process.
type Processor struct {
	m     *machine.Machine
	cfg   processorConfig
	ready bool
}

// NewProcessor builds a fresh machine from c.
func NewProcessor(c *config.Config, opts ...Option) (*Processor, error) {
	p := &Processor{cfg: newProcessorConfig(opts...)}
	mopts := []machine.Option{machine.WithLogger(p.cfg.logger)}
	if w := p.cfg.trace; w != nil {
		mopts = append(mopts, machine.WithTracer(func(tr machine.Trace) {
			fmt.Fprintln(w, tr.String())
		}))
	}
	m, err := c.NewMachine(mopts...)
	if err != nil {
		return nil, err
	}
	p.m = m

	return p, nil
}

// Machine exposes the underlying machine.
func (p *Processor) Machine() *machine.Machine { return p.m }

// Process reads lines from in and writes converted output to out. Blank
// lines are copied, except a blank final line. It stops at the first failing
// line and returns a *LineError; output for earlier lines has already been
// written.
//
// Complexity: O(L + S·n) for L input bytes, S message symbols and n slots.
func (p *Processor) Process(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	w := bufio.NewWriter(out)

	var (
		line int
		// a blank line is echoed once another line follows it
		pending bool
	)
	fail := func(err error) error {
		if ferr := w.Flush(); ferr != nil {
			return errors.Join(&LineError{Line: line, Err: err}, ferr)
		}
		return &LineError{Line: line, Err: err}
	}

	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		text := sc.Text()
		if pending {
			w.WriteByte('\n')
			pending = false
		}
		if IsSetup(text) {
			s, err := ParseSetup(text)
			if err == nil {
				err = s.Apply(p.m)
			}
			if err != nil {
				return fail(err)
			}
			p.ready = true
			p.cfg.logger.Debug("setup applied", "line", line, "rotors", strings.Join(s.Rotors, " "), "settings", s.Settings)
			continue
		}

		msg := stripSpace(text)
		if msg == "" {
			pending = true
			continue
		}
		if !p.ready {
			return fail(ErrNoSetup)
		}
		enc, err := p.m.ConvertString(msg)
		if err != nil {
			if errors.Is(err, machine.ErrInvalidSymbol) {
				err = fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
			}
			return fail(err)
		}
		w.WriteString(group(enc, p.cfg.group))
		w.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return fail(fmt.Errorf("session: read: %w", err))
	}

	return w.Flush()
}

// stripSpace drops every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// group splits s into runs of n symbols separated by single spaces.
func group(s string, n int) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	return b.String()
}
