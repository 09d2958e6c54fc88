package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/gatewaykit/internal/shell"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, shell.ExitCode(nil))
	assert.Equal(t, 1, shell.ExitCode(errors.New("foo")))
	assert.Equal(t, 3, shell.ExitCode(shell.NewExitError(3)))
	assert.Equal(t, 4, shell.ExitCode(fmt.Errorf("wrapped: %w", shell.NewExitError(4))))
}

func TestIsExitError(t *testing.T) {
	assert.False(t, shell.IsExitError(nil))
	assert.False(t, shell.IsExitError(errors.New("foo")))
	assert.True(t, shell.IsExitError(shell.NewExitError(0)))
}

func TestShell_Run_Shutdown(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownOnStart(fx.ExitCode(2)))

	assert.Equal(t, 2, shell.ExitCode(err))
}

func TestShell_Run_CleanShutdown(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownOnStart())

	assert.NoError(t, err)
}

func TestShell_Run_InvalidGraph(t *testing.T) {
	s := shell.New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), fx.Invoke(func(string) {}))

	assert.Equal(t, 1, shell.ExitCode(err))
}

func shutdownOnStart(opts ...fx.ShutdownOption) fx.Option {
	return fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return shutdowner.Shutdown(opts...)
			},
		})
	})
}
