// SPDX-License-Identifier: MIT

package machine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

// navalSpec describes one historical rotor: kind, notches, wiring.
type navalSpec struct {
	kind    rotor.Kind
	notches string
	cycles  string
}

var naval = map[string]navalSpec{
	"I":    {rotor.Moving, "Q", "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"},
	"II":   {rotor.Moving, "E", "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)"},
	"III":  {rotor.Moving, "V", "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"},
	"IV":   {rotor.Moving, "J", "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"},
	"Beta": {rotor.Fixed, "", "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
	"B":    {rotor.Reflector, "", "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
}

// navalOrder fixes inventory declaration order for deterministic fixtures.
var navalOrder = []string{"B", "Beta", "I", "II", "III", "IV"}

// navalInventory builds the historical rotors over A..Z.
func navalInventory(t testing.TB) *rotor.Inventory {
	t.Helper()
	a := alphabet.Default()
	inv, err := rotor.NewInventory()
	require.NoError(t, err)
	for _, name := range navalOrder {
		w := naval[name]
		p, err := permutation.New(w.cycles, a)
		require.NoError(t, err)
		r, err := rotor.New(name, w.kind, p, w.notches)
		require.NoError(t, err)
		require.NoError(t, inv.Add(r))
	}
	return inv
}

// newM4 returns the five-slot machine B Beta III IV I at AXLE.
func newM4(t testing.TB, plugboard string, opts ...machine.Option) *machine.Machine {
	t.Helper()
	a := alphabet.Default()
	m, err := machine.New(a, 5, 3, navalInventory(t), opts...)
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors([]string{"B", "Beta", "III", "IV", "I"}))
	require.NoError(t, m.SetRotors("AXLE"))
	if plugboard != "" {
		p, err := permutation.New(plugboard, a)
		require.NoError(t, err)
		require.NoError(t, m.SetPlugboard(p))
	}
	return m
}

// newTiny returns the 3-symbol machine: reflector r and moving a, b, c,
// all wired (ABC) with a notch at C, set to AAA.
func newTiny(t testing.TB) *machine.Machine {
	t.Helper()
	a, err := alphabet.New("ABC")
	require.NoError(t, err)
	p, err := permutation.New("(ABC)", a)
	require.NoError(t, err)
	r, err := rotor.NewReflector("r", p)
	require.NoError(t, err)
	inv, err := rotor.NewInventory(r)
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c"} {
		mr, err := rotor.NewMoving(name, p, "C")
		require.NoError(t, err)
		require.NoError(t, inv.Add(mr))
	}
	m, err := machine.New(a, 4, 3, inv)
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors([]string{"r", "a", "b", "c"}))
	require.NoError(t, m.SetRotors("AAA"))
	return m
}
