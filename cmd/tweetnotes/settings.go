package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gorewood/tweetnotes/internal/config"
	"github.com/gorewood/tweetnotes/internal/logging"
	"github.com/gorewood/tweetnotes/internal/output"
)

// flagValue reads a flag from the command or, failing that, the root's persistent flags.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// useColor resolves --color against TTY detection of the command output.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(flagValue(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter creates a printer for the command's output streams.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// loadSettings reads the config file named by --config, or the default one.
// An explicit --config that does not exist is a user error; a missing
// default file is not.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path := flagValue(cmd, "config")
	if path == "" {
		path = config.DefaultPath()
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Settings{}, output.NewUserError(fmt.Sprintf("config file not found: %s", path))
	}

	settings, err := config.Load(path)
	if err != nil {
		return config.Settings{}, output.NewUserErrorWithCause(err.Error(), err)
	}
	return settings, nil
}

// newLogger creates the conversion logger on the command's stderr.
func newLogger(cmd *cobra.Command, settings config.Settings) *logrus.Logger {
	level := logging.ResolveLevel(flagValue(cmd, "log-level"), settings.LogLevel)
	return logging.New(cmd.ErrOrStderr(), level)
}

// resolveLocation picks the --timezone flag or the configured zone.
func resolveLocation(flagZone string, settings config.Settings) (*time.Location, error) {
	loc, err := config.Location(config.Pick(flagZone, settings.Timezone))
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	return loc, nil
}
