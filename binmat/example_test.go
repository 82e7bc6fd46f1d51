// SPDX-License-Identifier: MIT
package binmat_test

import (
	"fmt"

	"github.com/katalvlaran/lvbits/binmat"
	"github.com/katalvlaran/lvbits/matrix"
)

// ExampleMatrix sets a few cells and reads them back in several forms.
func ExampleMatrix() {
	m := binmat.New(3, 4)
	m.Set(0, 0)
	m.Set(1, 2)
	m.Set(2, 3)

	fmt.Println(m)
	fmt.Println(binmat.Count(m), binmat.Which(m))
	// Output:
	// 1000
	// 0010
	// 0001
	// 3 [0 6 11]
}

// ExampleRepeat tiles a two-cell row.
func ExampleRepeat() {
	row := binmat.FromBools([]bool{true, false}, 1, 2)
	fmt.Println(binmat.Repeat(row, 2, 3))
	// Output:
	// 101010
	// 101010
}

// ExampleAnd combines lazy operators and realizes the result once.
func ExampleAnd() {
	land := binmat.FromBools([]bool{true, true, false, true, true, false}, 2, 3)
	frame := binmat.New(2, 3)
	binmat.Col(frame, 0).SetAll()

	inner := binmat.FromExpr(binmat.And(land, binmat.Not(frame)))
	fmt.Println(inner)
	fmt.Println(binmat.Any(inner), binmat.All(inner))
	// Output:
	// 010
	// 010
	// true false
}

// ExampleFormat renders with custom symbols.
func ExampleFormat() {
	fmt.Println(binmat.Format(binmat.Identity(3, 3), binmat.WithSymbols('#', '.'), binmat.WithRowSeparator(" / ")))
	// Output: #.. / .#. / ..#
}

// ExampleSelect keeps the diagonal of a numeric matrix.
func ExampleSelect() {
	d, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	out, _ := binmat.Select(binmat.Identity(2, 2), d)
	fmt.Print(out)
	// Output:
	// [1, 0]
	// [0, 4]
}

// ExampleMakeVector marks the entities equal to a value.
func ExampleMakeVector() {
	kinds := []string{"sea", "land", "land", "sea"}
	fmt.Println(binmat.Which(binmat.MakeVector(kinds, "land")))
	// Output: [1 2]
}
