package dispatcher

import "go.uber.org/fx"

// Module provides the method dispatcher.
func Module() fx.Option {
	return fx.Module(
		"dispatcher",
		fx.Provide(New),
	)
}
