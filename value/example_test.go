package value_test

import (
	"fmt"

	"github.com/katalvlaran/unitex/dims"
	"github.com/katalvlaran/unitex/token"
	"github.com/katalvlaran/unitex/value"
)

// ExampleValue_String renders a computed quantity the way it is spliced
// back into the document.
func ExampleValue_String() {
	m, _ := dims.Base("m")
	s, _ := dims.Base("s")
	speed := value.NumDim(12.5, m.Sub(s))

	fmt.Println(speed)
	// Output: 12.50000 \cdot \frac{m}{s}
}

// ExampleMul shows exponents adding under multiplication.
func ExampleMul() {
	at := token.Coordinate{Line: 1, Column: 1}
	m, _ := dims.Base("m")

	force, _ := value.Mul(value.NumDim(3, m), value.NumDim(4, m), at)
	fmt.Println(force)
	// Output: 12 \cdot m^2
}
