// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toeirei/kvbrowse/internal/config"
	"github.com/toeirei/kvbrowse/internal/engine"
	"github.com/toeirei/kvbrowse/internal/i18n"
	"github.com/toeirei/kvbrowse/internal/logging"
	"github.com/toeirei/kvbrowse/internal/pagestore"
	"github.com/toeirei/kvbrowse/ui/tui"
	"golang.org/x/term"
)

// isTerminal reports whether w is an interactive terminal. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runTUI starts the interactive browser. Tests replace it.
var runTUI = tui.Run

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kvbrowse <database-path>",
		Short: i18n.T("cli.short"),
		Long: `kvbrowse opens a pebble, LevelDB, badger or LMDB database directory read-only
and pages through its keys, showing each key next to a best-effort
classification of its value (str, int/bytes or bytes).

Keys: h/left previous page, l/right next page, q quit.
When stdout is not a terminal every page is printed instead.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	cmd.Version = resolveVersion()

	cmd.Flags().Int(config.KeyPageSize, 30, "number of keys per page")
	cmd.Flags().String(config.KeyEngine, "auto", "storage engine (auto, pebble, leveldb, badger, lmdb)")
	cmd.Flags().String(config.KeyLanguage, "en", `UI language ("en", "de")`)
	cmd.Flags().String(config.KeyLogLevel, "warn", "log level (debug, info, warn, error)")
	cmd.Flags().String(config.KeyLogFile, "", "write logs to this file")
	cmd.Flags().String("config", "", "config file (default is kvbrowse.yaml in the user config dir)")
	cmd.Flags().Bool("save-config", false, "write the effective configuration to the user config file")

	return cmd
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// loadConfig resolves and validates the effective configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// setupLogging routes logs to the log file, or to stderr only when the TUI
// is not running. The returned func closes the log file.
func setupLogging(cfg config.Config, stderr io.Writer, interactive bool) (func(), error) {
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		if err := logging.Configure(cfg.LogLevel, f); err != nil {
			f.Close()
			return nil, err
		}
		return func() { f.Close() }, nil
	}
	out := stderr
	if interactive {
		out = io.Discard
	}
	if err := logging.Configure(cfg.LogLevel, out); err != nil {
		return nil, err
	}
	return func() {}, nil
}

func run(cmd *cobra.Command, dbPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	i18n.Init(cfg.Language)

	interactive := isTerminal(cmd.OutOrStdout())
	closeLog, err := setupLogging(cfg, cmd.ErrOrStderr(), interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	if save, _ := cmd.Flags().GetBool("save-config"); save {
		path, err := config.WriteConfigFile(&cfg, false)
		if err != nil {
			return fmt.Errorf("could not write config file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "configuration written to %s\n", path)
	}

	kind, err := engine.ParseKind(cfg.Engine)
	if err != nil {
		return err
	}
	store, err := pagestore.Open(dbPath, kind)
	if err != nil {
		return err
	}

	if !interactive {
		logging.Infof("%s", i18n.T("cli.not_tty"))
		return printPages(cmd.OutOrStdout(), store, cfg.PageSize)
	}
	return runTUI(store, cfg.PageSize, filepath.Base(filepath.Clean(dbPath)))
}
