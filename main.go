package main

import (
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lambda-feedback/gatewaykit/cmd"
	"github.com/lambda-feedback/gatewaykit/util"
)

var Version string
var Buildtime string
var Commit string

func main() {
	if err := setupSentry(); err != nil {
		log.Fatalf("sentry init failed: %s", err)
	}

	appVersion := "local"
	if Version != "" {
		appVersion = Version
	}

	appBuildtime, _ := time.Parse(time.RFC3339, Buildtime)

	code := cmd.Execute(cmd.ExecuteParams{
		Version:  appVersion,
		Compiled: appBuildtime,
	})

	// flush buffered events, os.Exit skips deferred calls
	sentry.Flush(2 * time.Second)

	os.Exit(code)
}

func setupSentry() error {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return nil
	}

	environment := os.Getenv("SENTRY_ENVIRONMENT")
	if environment == "" {
		environment = "local"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Debug:            util.Truthy(os.Getenv("SENTRY_DEBUG")),
		TracesSampleRate: 1.0,
		EnableTracing:    true,
		Environment:      environment,
		Release:          Commit,
	})
	if err != nil {
		return err
	}

	// tag events with the function they originate from
	if fn := os.Getenv("AWS_LAMBDA_FUNCTION_NAME"); fn != "" {
		sentry.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("function", fn)
		})
	}

	return nil
}
