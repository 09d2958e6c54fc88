package app

import (
	"github.com/lambda-feedback/gatewaykit/config"
	"github.com/lambda-feedback/gatewaykit/dispatcher"
	"github.com/lambda-feedback/gatewaykit/internal/shell"
	"github.com/lambda-feedback/gatewaykit/util/conf"
	"github.com/lambda-feedback/gatewaykit/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(config)), nil
}

// SharedModule provides the components used by every entrypoint.
func SharedModule(config config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide compute config
		fx.Supply(config.Compute),
		// provide dispatcher
		dispatcher.Module(),
	)
}
