// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
)

// Permutation is a bijection over the index range of one Alphabet.
// It may be extended with AddCycle while a configuration is assembled and
// is treated as immutable once a machine is in operation.
type Permutation struct {
	alpha  *alphabet.Alphabet
	cycles []cycle
	owner  []int // owner[i] is the position in cycles holding symbol i
	fwd    []int
	inv    []int
}

// New parses cycles (possibly empty) over a and completes the result with
// singleton cycles for all uncovered symbols.
// Returns ErrMalformedCycle on bad cycle text.
func New(cycles string, a *alphabet.Alphabet) (*Permutation, error) {
	n := a.Size()
	p := &Permutation{
		alpha: a,
		owner: make([]int, n),
		fwd:   make([]int, n),
		inv:   make([]int, n),
	}
	for i := range p.owner {
		p.owner[i] = -1
	}
	if err := p.AddCycle(cycles); err != nil {
		return nil, err
	}

	return p, nil
}

// Identity returns the permutation mapping every symbol of a to itself.
func Identity(a *alphabet.Alphabet) *Permutation {
	p, err := New("", a)
	if err != nil {
		// Empty cycle text cannot be malformed.
		panic(err)
	}

	return p
}

// AddCycle appends the cycles described by text. Symbols currently held
// only in synthesised singletons move into the new cycles; a symbol that
// already belongs to a declared cycle is rejected with ErrMalformedCycle.
// An empty text synthesises singletons for every uncovered symbol.
// On error the permutation is left unchanged.
func (p *Permutation) AddCycle(text string) error {
	if strings.TrimSpace(text) == "" {
		p.complete()
		return nil
	}
	parsed, err := parseCycles(text, p.alpha)
	if err != nil {
		return err
	}
	for _, c := range parsed {
		for _, s := range c {
			if o := p.owner[s]; o >= 0 && !p.cycles[o].implicit {
				return fmt.Errorf("%w: symbol %q already in cycle %s",
					ErrMalformedCycle, p.alpha.ToChar(s), p.render(p.cycles[o].syms))
			}
		}
	}

	// Drop the implicit singletons being replaced, then append.
	replaced := make(map[int]struct{})
	for _, c := range parsed {
		for _, s := range c {
			if p.owner[s] >= 0 {
				replaced[p.owner[s]] = struct{}{}
			}
		}
	}
	kept := p.cycles[:0:0]
	for i, c := range p.cycles {
		if _, drop := replaced[i]; !drop {
			kept = append(kept, c)
		}
	}
	for _, c := range parsed {
		kept = append(kept, cycle{syms: c})
	}
	p.cycles = kept
	p.complete()

	return nil
}

// complete adds an implicit singleton for each uncovered symbol and rebuilds
// the lookup tables.
func (p *Permutation) complete() {
	for i := range p.owner {
		p.owner[i] = -1
	}
	for ci, c := range p.cycles {
		for _, s := range c.syms {
			p.owner[s] = ci
		}
	}
	for s, o := range p.owner {
		if o < 0 {
			p.owner[s] = len(p.cycles)
			p.cycles = append(p.cycles, cycle{syms: []int{s}, implicit: true})
		}
	}
	for _, c := range p.cycles {
		k := len(c.syms)
		for j, s := range c.syms {
			p.fwd[s] = c.syms[(j+1)%k]
			p.inv[s] = c.syms[(j-1+k)%k]
		}
	}
}

// Alphabet returns the alphabet this permutation ranges over.
func (p *Permutation) Alphabet() *alphabet.Alphabet {
	return p.alpha
}

// Size returns the alphabet size.
func (p *Permutation) Size() int {
	return p.alpha.Size()
}

// Wrap returns i modulo Size() in [0, Size()).
func (p *Permutation) Wrap(i int) int {
	r := i % p.Size()
	if r < 0 {
		r += p.Size()
	}

	return r
}

// Permute returns the index the symbol at Wrap(i) maps to.
// Complexity: O(1).
func (p *Permutation) Permute(i int) int {
	return p.fwd[p.Wrap(i)]
}

// Invert returns the index that maps to the symbol at Wrap(i).
// Complexity: O(1).
func (p *Permutation) Invert(i int) int {
	return p.inv[p.Wrap(i)]
}

// PermuteRune returns the successor of r within its cycle.
// Complexity: O(1).
func (p *Permutation) PermuteRune(r rune) (rune, error) {
	i, err := p.alpha.ToInt(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
	}

	return p.alpha.ToChar(p.fwd[i]), nil
}

// InvertRune returns the predecessor of r within its cycle.
func (p *Permutation) InvertRune(r rune) (rune, error) {
	i, err := p.alpha.ToInt(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
	}

	return p.alpha.ToChar(p.inv[i]), nil
}

// Derangement reports whether no symbol maps to itself, i.e. every cycle
// has length greater than one.
// Complexity: O(c) for c cycles.
func (p *Permutation) Derangement() bool {
	for _, c := range p.cycles {
		if len(c.syms) == 1 {
			return false
		}
	}

	return true
}

// Involution reports whether applying the permutation twice is the
// identity, i.e. no cycle is longer than two.
// Complexity: O(c) for c cycles.
func (p *Permutation) Involution() bool {
	for _, c := range p.cycles {
		if len(c.syms) > 2 {
			return false
		}
	}

	return true
}

// Cycles returns the cycle partition as symbol strings: declared cycles in
// declaration order, followed by synthesised singletons.
func (p *Permutation) Cycles() []string {
	out := make([]string, 0, len(p.cycles))
	for _, implicit := range []bool{false, true} {
		for _, c := range p.cycles {
			if c.implicit == implicit {
				out = append(out, p.symbols(c.syms))
			}
		}
	}

	return out
}

// Notation renders the non-trivial cycles in canonical notation, e.g.
// "(AB) (CDE)". The identity renders as "", which parses back to itself.
func (p *Permutation) Notation() string {
	parts := make([]string, 0, len(p.cycles))
	for _, c := range p.cycles {
		if len(c.syms) > 1 {
			parts = append(parts, p.render(c.syms))
		}
	}

	return strings.Join(parts, " ")
}

// String implements fmt.Stringer. It is Notation, with "()" for the identity.
func (p *Permutation) String() string {
	if n := p.Notation(); n != "" {
		return n
	}

	return "()"
}

func (p *Permutation) symbols(syms []int) string {
	var b strings.Builder
	for _, s := range syms {
		b.WriteRune(p.alpha.ToChar(s))
	}

	return b.String()
}

func (p *Permutation) render(syms []int) string {
	return "(" + p.symbols(syms) + ")"
}
