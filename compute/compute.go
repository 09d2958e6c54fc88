// Package compute implements the numeric sample functions.
package compute

import (
	"errors"
	"fmt"
)

const (
	// MaxFactorial is the largest n whose factorial fits into an uint64.
	MaxFactorial = 20

	// MaxFibonacci is the longest sequence whose terms fit into an uint64.
	MaxFibonacci = 94
)

var (
	ErrNegative   = errors.New("n must not be negative")
	ErrOutOfRange = errors.New("n is out of range")
)

// Factorial returns n!.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}

	if n > MaxFactorial {
		return 0, fmt.Errorf("%w: %d > %d", ErrOutOfRange, n, MaxFactorial)
	}

	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}

	return result, nil
}

// Fibonacci returns the first n numbers of the Fibonacci sequence,
// starting at 0.
func Fibonacci(n int) ([]uint64, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	if n > MaxFibonacci {
		return nil, fmt.Errorf("%w: %d > %d", ErrOutOfRange, n, MaxFibonacci)
	}

	sequence := make([]uint64, 0, n)

	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		sequence = append(sequence, a)
		a, b = b, a+b
	}

	return sequence, nil
}
