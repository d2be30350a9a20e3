// Package mathutils holds package-level helper functions, the Go counterpart
// of static methods.
package mathutils

import (
	"errors"
	"log/slog"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
)

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Divide performs truncating integer division. A zero divisor returns
// ErrDivisionByZero instead of panicking.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// DivideOrZero is Divide with the failure handled locally: the error is
// logged and 0 is returned. Nothing is propagated to the caller; ok reports
// whether the division succeeded.
func DivideOrZero(logger *slog.Logger, a, b int) (q int, ok bool) {
	q, err := Divide(a, b)
	if err != nil {
		if logger != nil {
			logger.Error("division failed",
				slog.Int("dividend", a),
				slog.Int("divisor", b),
				slog.String("error", err.Error()),
			)
		}
		return 0, false
	}
	return q, true
}
