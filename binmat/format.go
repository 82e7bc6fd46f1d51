// SPDX-License-Identifier: MIT

package binmat

import (
	"io"
	"strings"
)

// Fprint writes x as rows of '0'/'1' symbols separated by newlines, with no
// separator after the last row, and returns the number of bytes written.
// MAIN DESCRIPTION:
//   - x is realized into a Matrix first (word-wise evaluation), then read
//     cell by cell. An empty expression writes nothing.
//
// Complexity:
//   - Time O(size), Space O(size/64) for the realization.
func Fprint(w io.Writer, x Expr, opts ...Option) (int, error) {
	return io.WriteString(w, Format(x, opts...))
}

// Format returns the text rendering of x described by Fprint.
func Format(x Expr, opts ...Option) string {
	o := gatherOptions(opts...)
	m := realize(x)
	if m.Size() == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(m.Size() + (m.rows-1)*len(o.rowSep))
	var i, j int
	for i = 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(o.rowSep)
		}
		for j = 0; j < m.cols; j++ {
			if m.At(i, j) {
				b.WriteRune(o.one)
			} else {
				b.WriteRune(o.zero)
			}
		}
	}

	return b.String()
}
