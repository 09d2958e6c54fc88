package cmd

import (
	"github.com/lambda-feedback/gatewaykit/app"
	"github.com/lambda-feedback/gatewaykit/app/lambda"
	"github.com/lambda-feedback/gatewaykit/util/conf"
	"github.com/lambda-feedback/gatewaykit/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	lambdaCmdDescription = `The lambda command starts an AWS Lambda runtime interface
client, which translates API Gateway or ALB proxy events into
requests on the method, factorial, fibonacci and health routes.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V1",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Log: log,
		Cli: ctx,
	})
	if err != nil {
		return err
	}

	// fail before the runtime client starts polling for events
	if cfg, err = cfg.Normalize(); err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler", zap.Stringer("proxy_source", cfg.ProxySource))

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
