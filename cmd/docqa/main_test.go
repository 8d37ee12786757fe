package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func contextWithLogLevel(t *testing.T, level string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", "", "")
	require.NoError(t, set.Set("log-level", level))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			assert.NoError(t, setupLogger(contextWithLogLevel(t, level)))
		}
	})

	t.Run("level is case-insensitive", func(t *testing.T) {
		assert.NoError(t, setupLogger(contextWithLogLevel(t, "DEBUG")))
	})

	t.Run("invalid level", func(t *testing.T) {
		err := setupLogger(contextWithLogLevel(t, "verbose"))
		assert.Error(t, err)
	})
}
