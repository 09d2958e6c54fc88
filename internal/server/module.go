package server

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/gatewaykit/util/logging"
)

// Module serves the routes of the "handlers" group over HTTP while the
// fx app is running.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// rename logger for module
		logging.DecorateLogger("server"),
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// nothing else depends on the server, so request it here
		fx.Invoke(func(s *HttpServer) {
			s.log.Debug("http server registered", zap.String("addr", s.addr))
		}),
	)
}
