package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lambda-feedback/gatewaykit/config"
	"github.com/lambda-feedback/gatewaykit/internal/shell"
	"github.com/lambda-feedback/gatewaykit/util/conf"
	"github.com/lambda-feedback/gatewaykit/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	appName  = "gatewaykit"
	appUsage = `HTTP method routing and compute samples for AWS Lambda
behind API Gateway proxy integration.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags:           newRootFlags(),
		Before:          setupContext,
		After:           teardownContext,
	}
)

// newRootFlags returns the global flags. Flags keep state between runs,
// so every app gets its own set.
func newRootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "set the log format. Options: production, development.",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.PathFlag{
			Name:    "config",
			Usage:   "load configuration from a json or .env file.",
			EnvVars: []string{"CONFIG_FILE"},
		},
		&cli.IntFlag{
			Name:     "factorial-default",
			Usage:    "the n used by /factorial if the request does not specify one.",
			Category: "compute",
			EnvVars:  []string{"FACTORIAL_DEFAULT"},
		},
		&cli.IntFlag{
			Name:     "fibonacci-default",
			Usage:    "the n used by /fibonacci if the request does not specify one.",
			Category: "compute",
			EnvVars:  []string{"FIBONACCI_DEFAULT"},
		},
	}
}

// setupContext injects the logger and the parsed config into the
// cli context.
func setupContext(ctx *cli.Context) error {
	// create the logger
	log, err := createLogger(ctx)
	if err != nil {
		return err
	}

	// inject logger into cli context
	ctx.Context = logging.ContextWithLogger(ctx.Context, log)

	// parse config using defaults, config file, env and flags
	cfg, err := conf.Parse[config.Config](conf.ParseOptions{
		Cli:      ctx,
		CliMap:   computeFlags,
		Defaults: config.DefaultConfig(),
		FileName: ctx.Path("config"),
		Log:      log,
	})
	if err != nil {
		return err
	}

	// inject the config into the cli context
	ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

	return nil
}

func teardownContext(ctx *cli.Context) error {
	// the logger is missing if setupContext failed early
	_ = logging.LoggerOrNop(ctx.Context).Sync()

	return nil
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

// computeFlags maps the compute flags onto their nested config keys.
var computeFlags = map[string]string{
	"factorial-default": "compute.factorial_default",
	"fibonacci-default": "compute.fibonacci_default",
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the root app with the process arguments and returns
// the exit code. It does not exit, so callers can flush first.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	fmt.Fprintf(rootApp.ErrWriter, "exit error: %s\n", err.Error())

	return shell.ExitCode(err)
}

func createLogger(ctx *cli.Context) (*zap.Logger, error) {
	level := getLogLevelFromCLI(ctx)
	format := getLogFormatFromCLI(ctx)

	var config zap.Config
	if format == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.InitialFields = map[string]any{
		"app": appName,
	}

	config.Level = level

	return config.Build()
}

func getLogFormatFromCLI(ctx *cli.Context) string {
	format := ctx.String("log-format")
	if format != "" {
		return format
	}

	return "production"
}

func getLogLevelFromCLI(ctx *cli.Context) zap.AtomicLevel {
	lvl := ctx.String("log-level")

	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
