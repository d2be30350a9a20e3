// Package calculator shows overloading by arity. Go has no overloading, so
// each arity gets its own name, plus a variadic form that covers all of them.
package calculator

// Calculator is stateless; its zero value is ready to use.
type Calculator struct{}

// New returns a ready-to-use Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Add returns the sum of two integers.
func (c *Calculator) Add(a, b int) int {
	return a + b
}

// Add3 returns the sum of three integers.
func (c *Calculator) Add3(a, b, cc int) int {
	return a + b + cc
}

// Add4 returns the sum of four integers.
func (c *Calculator) Add4(a, b, cc, d int) int {
	return a + b + cc + d
}

// Sum returns the sum of any number of integers; no arguments yield 0.
func (c *Calculator) Sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}
