package autodiff_test

import (
	"fmt"

	"github.com/born-ml/micrograd/autodiff"
)

func Example() {
	g := autodiff.NewGraph[float64]()
	x := g.New(2)
	y := g.New(3)

	out := x.Mul(y).Add(x) // x·y + x
	out.Backward()

	dx, _ := x.Grad()
	dy, _ := y.Grad()
	fmt.Println(out.Data(), dx, dy)
	// Output: 8 4 2
}

func Example_constant() {
	g := autodiff.NewGraph[float64]()
	x := g.New(4)
	k := g.Coeff(0.5)

	x.Mul(k).Backward()

	dx, _ := x.Grad()
	_, tracked := k.Grad()
	fmt.Println(dx, tracked)
	// Output: 0.5 false
}
