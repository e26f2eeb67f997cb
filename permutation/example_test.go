// SPDX-License-Identifier: MIT

package permutation_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// ExamplePermutation_PermuteRune walks the cycle (BACD) over ABCDE.
// E is in no declared cycle and maps to itself.
func ExamplePermutation_PermuteRune() {
	a, _ := alphabet.New("ABCDE")
	p, _ := permutation.New("(BACD)", a)
	pairs := make([]string, 0, a.Size())
	for _, r := range a.Letters() {
		out, _ := p.PermuteRune(r)
		pairs = append(pairs, fmt.Sprintf("%c→%c", r, out))
	}
	fmt.Println(strings.Join(pairs, " "))
	fmt.Println(p.Cycles())

	// Output:
	// A→C B→A C→D D→B E→E
	// [BACD E]
}
