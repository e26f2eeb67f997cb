// SPDX-License-Identifier: MIT

package alphabet_test

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
)

// ExampleAlphabet_ToInt shows the symbol/index bijection.
func ExampleAlphabet_ToInt() {
	a, _ := alphabet.New("ABCD")
	i, _ := a.ToInt('C')
	fmt.Println(i, string(a.ToChar(i)), a.Size())

	// Output:
	// 2 C 4
}
