package compute

// Config holds the defaults of the compute handlers.
type Config struct {
	// FactorialDefault is used if a factorial request does not specify n.
	FactorialDefault int `conf:"factorial_default"`

	// FibonacciDefault is used if a fibonacci request does not specify n.
	FibonacciDefault int `conf:"fibonacci_default"`
}

// DefaultConfig returns the default compute configuration.
func DefaultConfig() Config {
	return Config{
		FactorialDefault: 6,
		FibonacciDefault: 10,
	}
}
