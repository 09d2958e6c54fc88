package config

import (
	"github.com/lambda-feedback/gatewaykit/compute"
	"github.com/lambda-feedback/gatewaykit/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Compute is the configuration of the compute handlers
	Compute compute.Config `conf:"compute"`
}

// DefaultConfig returns the flattened application defaults.
func DefaultConfig() conf.DefaultConfig {
	defaults := compute.DefaultConfig()

	return conf.MergeDefaults("compute", conf.DefaultConfig{
		"factorial_default": defaults.FactorialDefault,
		"fibonacci_default": defaults.FibonacciDefault,
	})
}
