package handler

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("handler",
		fx.Provide(NewMethodHandler),
		fx.Provide(NewComputeHandler),
		fx.Provide(NewMethodRoute),
		fx.Provide(NewFactorialRoute),
		fx.Provide(NewFibonacciRoute),
		fx.Provide(NewHealthRoute),
	)
}
