// SPDX-License-Identifier: MIT

package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// navalCycles holds the historical naval rotor wirings in cycle notation.
var navalCycles = map[string]string{
	"I":     "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)",
	"II":    "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)",
	"III":   "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)",
	"IV":    "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)",
	"V":     "(AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)",
	"VI":    "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)",
	"VII":   "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)",
	"VIII":  "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)",
	"Beta":  "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)",
	"Gamma": "(AFNIRLBSQWVXGUZDKMTPCOYJHE)",
	"B":     "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)",
	"C":     "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)",
}

// checkPerm asserts that p maps each symbol of from to the symbol at the
// same position in to, at both the symbol and the index level.
func checkPerm(t *testing.T, p *permutation.Permutation, from, to string) {
	t.Helper()
	a := p.Alphabet()
	fr, tr := []rune(from), []rune(to)
	require.Len(t, tr, len(fr))
	require.Equal(t, len(fr), p.Size(), "wrong length")
	for i := range fr {
		c, e := fr[i], tr[i]
		got, err := p.PermuteRune(c)
		require.NoError(t, err)
		assert.Equalf(t, e, got, "wrong translation of %q", c)
		back, err := p.InvertRune(e)
		require.NoError(t, err)
		assert.Equalf(t, c, back, "wrong inverse of %q", e)

		ci, err := a.ToInt(c)
		require.NoError(t, err)
		ei, err := a.ToInt(e)
		require.NoError(t, err)
		assert.Equalf(t, ei, p.Permute(ci), "wrong translation of %d", ci)
		assert.Equalf(t, ci, p.Invert(ei), "wrong inverse of %d", ei)
	}
}

// TestIdentity verifies that empty cycle text maps every symbol to itself.
func TestIdentity(t *testing.T) {
	t.Parallel()

	p, err := permutation.New("", alphabet.Default())
	require.NoError(t, err)
	checkPerm(t, p, alphabet.UpperLatin, alphabet.UpperLatin)

	abcd, err := alphabet.New("ABCD")
	require.NoError(t, err)
	checkPerm(t, permutation.Identity(abcd), "ABCD", "ABCD")
	assert.False(t, permutation.Identity(abcd).Derangement())
	assert.Equal(t, "()", permutation.Identity(abcd).String())
}

// TestPermuteRune follows cycles forward, including implicit fixed points.
func TestPermuteRune(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New("ABCDE")
	require.NoError(t, err)
	p, err := permutation.New("(BACD)", a)
	require.NoError(t, err)
	checkPerm(t, p, "ABCDE", "CADBE")

	b, err := alphabet.New("WXYZABCDJ")
	require.NoError(t, err)
	q, err := permutation.New("(ZW)(YX)(CDAB)", b)
	require.NoError(t, err)
	checkPerm(t, q, "WXYZABCDJ", "ZYXWBCDAJ")
}

// TestInvertRune follows cycles backward.
func TestInvertRune(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New("ABCDE")
	require.NoError(t, err)
	p, err := permutation.New("(BACD)", a)
	require.NoError(t, err)
	for _, tc := range []struct{ in, want rune }{
		{'A', 'B'}, {'B', 'D'}, {'D', 'C'}, {'C', 'A'}, {'E', 'E'},
	} {
		got, err := p.InvertRune(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "invert(%q)", tc.in)
	}
}

// TestIndexWrap verifies that index arguments are reduced modulo the size.
func TestIndexWrap(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New("ABCD")
	require.NoError(t, err)
	p, err := permutation.New("(BACD)", a)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Wrap(-1))
	assert.Equal(t, 0, p.Wrap(8))
	// B(1)→A(0), A(0)→C(2), C(2)→D(3), D(3)→B(1)
	assert.Equal(t, 0, p.Permute(1))
	assert.Equal(t, 0, p.Permute(5))
	assert.Equal(t, 2, p.Permute(-4))
	assert.Equal(t, 1, p.Invert(0))
	assert.Equal(t, 2, p.Invert(-1))
}

// TestBijectionLaw checks invert(permute(s)) == s over every naval wiring.
func TestBijectionLaw(t *testing.T) {
	t.Parallel()

	a := alphabet.Default()
	for name, text := range navalCycles {
		name, text := name, text
		t.Run(name, func(t *testing.T) {
			p, err := permutation.New(text, a)
			require.NoError(t, err)
			for i := 0; i < a.Size(); i++ {
				assert.Equal(t, i, p.Invert(p.Permute(i)))
				assert.Equal(t, i, p.Permute(p.Invert(i)))
			}
			for _, r := range alphabet.UpperLatin {
				f, err := p.PermuteRune(r)
				require.NoError(t, err)
				back, err := p.InvertRune(f)
				require.NoError(t, err)
				assert.Equal(t, r, back)
			}
		})
	}
}

// TestInvalidSymbol rejects symbol-level lookups outside the alphabet.
func TestInvalidSymbol(t *testing.T) {
	t.Parallel()

	p := permutation.Identity(alphabet.Default())
	_, err := p.PermuteRune('a')
	assert.ErrorIs(t, err, permutation.ErrInvalidSymbol)
	assert.ErrorIs(t, err, alphabet.ErrSymbolNotFound)
	_, err = p.InvertRune('1')
	assert.ErrorIs(t, err, permutation.ErrInvalidSymbol)
}

// TestMalformedCycles covers every parse-time rejection.
func TestMalformedCycles(t *testing.T) {
	t.Parallel()

	a := alphabet.Default()
	cases := []struct {
		name, text string
	}{
		{"RepeatedInCycle", "(ABA)"},
		{"RepeatedAcrossCycles", "(AB) (CA)"},
		{"OutsideAlphabet", "(Ab)"},
		{"Unterminated", "(ABC"},
		{"UnmatchedClose", "AB)"},
		{"Nested", "(A(B))"},
		{"Empty", "()"},
		{"StraySymbol", "(AB) C"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := permutation.New(tc.text, a)
			assert.ErrorIs(t, err, permutation.ErrMalformedCycle)
		})
	}
}

// TestAddCycle extends a permutation across several calls, as continuation
// lines of a configuration do.
func TestAddCycle(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New("ABCDEF")
	require.NoError(t, err)
	p, err := permutation.New("(AB)", a)
	require.NoError(t, err)
	assert.False(t, p.Derangement())

	require.NoError(t, p.AddCycle("(CD) (EF)"))
	checkPerm(t, p, "ABCDEF", "BADCFE")
	assert.True(t, p.Derangement())
	assert.True(t, p.Involution())
	assert.Equal(t, []string{"AB", "CD", "EF"}, p.Cycles())

	// Declared symbols cannot be moved; the permutation stays intact.
	err = p.AddCycle("(AC)")
	assert.ErrorIs(t, err, permutation.ErrMalformedCycle)
	checkPerm(t, p, "ABCDEF", "BADCFE")

	// Empty text is a no-op on a complete permutation.
	require.NoError(t, p.AddCycle(""))
	assert.Len(t, p.Cycles(), 3)
}

// TestCyclesAndString checks the rendered partition.
func TestCyclesAndString(t *testing.T) {
	t.Parallel()

	a, err := alphabet.New("ABCDE")
	require.NoError(t, err)
	p, err := permutation.New(" ( B A C ) (E) ", a)
	require.NoError(t, err)
	assert.Equal(t, []string{"BAC", "E", "D"}, p.Cycles())
	assert.Equal(t, "(BAC)", p.String())
	assert.Equal(t, "(BAC)", p.Notation())
	assert.Empty(t, permutation.Identity(a).Notation())
	assert.False(t, p.Involution())
	assert.False(t, p.Derangement())
}

// TestReflectorWirings checks both naval reflectors are fixed-point-free involutions.
func TestReflectorWirings(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"B", "C"} {
		p, err := permutation.New(navalCycles[name], alphabet.Default())
		require.NoError(t, err)
		assert.True(t, p.Derangement(), name)
		assert.True(t, p.Involution(), name)
	}
	p, err := permutation.New(navalCycles["I"], alphabet.Default())
	require.NoError(t, err)
	assert.False(t, p.Derangement(), "rotor I fixes S")
}
