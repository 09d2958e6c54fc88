package compute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/gatewaykit/compute"
)

func TestFactorial(t *testing.T) {
	tests := map[int]uint64{
		0:  1,
		1:  1,
		5:  120,
		6:  720,
		10: 3628800,
		20: 2432902008176640000,
	}

	for n, expected := range tests {
		actual, err := compute.Factorial(n)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "n=%d", n)
	}
}

func TestFactorial_Invalid(t *testing.T) {
	_, err := compute.Factorial(-1)
	assert.ErrorIs(t, err, compute.ErrNegative)

	_, err = compute.Factorial(compute.MaxFactorial + 1)
	assert.ErrorIs(t, err, compute.ErrOutOfRange)
}

func TestFibonacci(t *testing.T) {
	actual, err := compute.Fibonacci(10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, actual)

	actual, err = compute.Fibonacci(0)
	require.NoError(t, err)
	assert.Empty(t, actual)
	assert.NotNil(t, actual)
}

func TestFibonacci_Max(t *testing.T) {
	actual, err := compute.Fibonacci(compute.MaxFibonacci)
	require.NoError(t, err)
	require.Len(t, actual, compute.MaxFibonacci)
	assert.Equal(t, uint64(12200160415121876738), actual[len(actual)-1])
}

func TestFibonacci_Invalid(t *testing.T) {
	_, err := compute.Fibonacci(-3)
	assert.ErrorIs(t, err, compute.ErrNegative)

	_, err = compute.Fibonacci(compute.MaxFibonacci + 1)
	assert.ErrorIs(t, err, compute.ErrOutOfRange)
}
