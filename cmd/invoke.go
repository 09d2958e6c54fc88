package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lambda-feedback/gatewaykit/invoke"
	"github.com/lambda-feedback/gatewaykit/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	invokeCmdDescription = `The invoke command sends an API Gateway proxy event to a
deployed AWS Lambda function and prints the proxy response
as json. Credentials and region are resolved using the
default AWS configuration chain.`
	invokeCmd = &cli.Command{
		Name:        "invoke",
		Usage:       "Invoke a deployed function with a proxy event.",
		Description: invokeCmdDescription,
		Action:      invokeAction,
		Flags:       newInvokeFlags(),
	}
)

func newInvokeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "function-name",
			Aliases:  []string{"fn"},
			Usage:    "the name or arn of the function to invoke.",
			Required: true,
			Category: "invoke",
			EnvVars:  []string{"FUNCTION_NAME"},
		},
		&cli.StringFlag{
			Name:     "method",
			Aliases:  []string{"X"},
			Usage:    "the http method of the event.",
			Value:    "GET",
			Category: "invoke",
		},
		&cli.StringFlag{
			Name:     "path",
			Usage:    "the path of the event.",
			Value:    "/",
			Category: "invoke",
		},
		&cli.StringFlag{
			Name:     "body",
			Aliases:  []string{"d"},
			Usage:    "the body of the event.",
			Category: "invoke",
		},
		&cli.StringSliceFlag{
			Name:     "header",
			Aliases:  []string{"H"},
			Usage:    "a header of the event as 'Name: value'. Can be repeated.",
			Category: "invoke",
		},
		&cli.StringSliceFlag{
			Name:     "query",
			Aliases:  []string{"q"},
			Usage:    "a query string parameter of the event as 'key=value'. Can be repeated.",
			Category: "invoke",
		},
		&cli.StringFlag{
			Name:     "region",
			Usage:    "the aws region of the function.",
			Category: "invoke",
			EnvVars:  []string{"AWS_REGION"},
		},
		&cli.DurationFlag{
			Name:     "timeout",
			Usage:    "the maximum time to wait for the function.",
			Value:    30 * time.Second,
			Category: "invoke",
		},
	}
}

// newInvokeRequest builds the invoke request from the command flags.
func newInvokeRequest(ctx *cli.Context) (invoke.Request, error) {
	headers, err := invoke.ParsePairs(ctx.StringSlice("header"), ":")
	if err != nil {
		return invoke.Request{}, fmt.Errorf("invalid header: %w", err)
	}

	query, err := invoke.ParsePairs(ctx.StringSlice("query"), "=")
	if err != nil {
		return invoke.Request{}, fmt.Errorf("invalid query: %w", err)
	}

	return invoke.Request{
		FunctionName: ctx.String("function-name"),
		Method:       ctx.String("method"),
		Path:         ctx.String("path"),
		Body:         ctx.String("body"),
		Headers:      headers,
		Query:        query,
	}, nil
}

func invokeAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	req, err := newInvokeRequest(ctx)
	if err != nil {
		return err
	}

	invokeCtx, cancel := context.WithTimeout(ctx.Context, ctx.Duration("timeout"))
	defer cancel()

	client, err := invoke.NewDefaultClient(invokeCtx, ctx.String("region"), log.Named("invoke"))
	if err != nil {
		return err
	}

	res, err := client.Invoke(invokeCtx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, invokeCmd)
}
