// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/enigma/alphabet"
)

// parseCycles splits cycle text into index cycles. Whitespace is ignored
// everywhere; a symbol may appear at most once in the whole text.
// Complexity: O(len(text)) time.
func parseCycles(text string, a *alphabet.Alphabet) ([][]int, error) {
	var (
		out  [][]int
		cur  []int
		open bool
		seen = make(map[int]struct{})
	)
	for pos, r := range text {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '(':
			if open {
				return nil, fmt.Errorf("%w: nested '(' at offset %d", ErrMalformedCycle, pos)
			}
			open, cur = true, nil
		case r == ')':
			if !open {
				return nil, fmt.Errorf("%w: unmatched ')' at offset %d", ErrMalformedCycle, pos)
			}
			if len(cur) == 0 {
				return nil, fmt.Errorf("%w: empty cycle at offset %d", ErrMalformedCycle, pos)
			}
			out = append(out, cur)
			open = false
		default:
			if !open {
				return nil, fmt.Errorf("%w: symbol %q outside parentheses", ErrMalformedCycle, r)
			}
			i, err := a.ToInt(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformedCycle, err)
			}
			if _, dup := seen[i]; dup {
				return nil, fmt.Errorf("%w: symbol %q repeated", ErrMalformedCycle, r)
			}
			seen[i] = struct{}{}
			cur = append(cur, i)
		}
	}
	if open {
		return nil, fmt.Errorf("%w: unterminated cycle", ErrMalformedCycle)
	}

	return out, nil
}
