package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NamedLogger returns a decorator naming the logger after a module.
func NamedLogger(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger {
		return log.Named(name).With(zap.String("module", name))
	}
}

// DecorateLogger names the logger of the enclosing fx module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(NamedLogger(name))
}
