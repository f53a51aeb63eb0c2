package mathx

import (
	"errors"
	"math/big"
)

// ErrOverflow is returned when a factorial does not fit in an int64.
var ErrOverflow = errors.New("factorial overflows int64")

// MaxChecked is the largest n for which n! fits in an int64 (20! does, 21! does not).
const MaxChecked = 20

// Factorial returns n! computed iteratively.
//
// For any n <= 1, including negative n, the result is 1. That base case is
// deliberate: callers feed raw user input and the CLI treats everything at or
// below 1 as the empty product. Overflow is not detected; results past
// MaxChecked wrap. Use FactorialChecked when overflow must be reported.
func Factorial(n int) int64 {
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result
}

// FactorialChecked returns n! or ErrOverflow when the true value exceeds the
// int64 range. The n <= 1 base case matches Factorial.
func FactorialChecked(n int) (int64, error) {
	if n > MaxChecked {
		return 0, ErrOverflow
	}
	return Factorial(n), nil
}

// FactorialBig returns n! with arbitrary precision, for inputs past the int64
// range. The n <= 1 base case matches Factorial.
func FactorialBig(n int) *big.Int {
	result := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}
