// Package cli implements the foodfresh command-line interface: a thin front
// end that validates user input and drives the inventory store.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/foodfresh/internal/paths"
	"github.com/mesh-intelligence/foodfresh/pkg/foodfresh"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	jsonMode  bool
	verbose   bool
}

// app carries the state shared by one invocation of the root command.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	logger    *slog.Logger
	now       func() time.Time
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by bad input.
func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

// sysError marks err as an environment or storage failure.
func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode maps err to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "foodfresh" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:     "foodfresh",
		Short:   "Track perishable food and what it costs to throw it away",
		Long:    "foodfresh keeps a small personal inventory of perishable items, flags what\nshould be used soon or has expired, and records the cost of wasted food.",
		Version: foodfresh.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: .foodfresh-db)")
	root.PersistentFlags().StringVar(&a.flags.backend, "backend", "", "storage backend: sqlite, file or memory")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newOpenCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newClearCmd(a))
	root.AddCommand(newWasteCmd(a))
	root.AddCommand(newLedgerCmd(a))
	root.AddCommand(newSummaryCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "foodfresh:", err)
		os.Exit(exitCode(err))
	}
}

// setup builds the logger and loads configuration before any subcommand
// runs. The version command needs neither.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("backend"); f != nil {
		if err := cfg.BindPFlag(cfgKeyBackend, f); err != nil {
			return sysError("bind backend flag: %w", err)
		}
	}

	a.configDir = configDir
	a.config = cfg
	a.logger.Debug("configuration loaded", "config_dir", configDir, "backend", cfg.GetString(cfgKeyBackend))
	return nil
}

// storeConfig resolves the backend and data directory for this invocation.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, sysError("resolve data dir: %w", err)
	}
	cfg := types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError("backend %q: %w", cfg.Backend, err)
	}
	return cfg, nil
}

// open attaches the configured backend and loads the inventory. The caller
// must Close the result.
func (a *app) open() (*foodfresh.Inventory, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, err
	}
	inv, err := foodfresh.Open(cfg, a.logger)
	if err != nil {
		return nil, sysError("open inventory: %w", err)
	}
	return inv, nil
}

// withInventory opens the inventory, runs fn and closes the inventory.
func (a *app) withInventory(fn func(inv *foodfresh.Inventory) error) error {
	inv, err := a.open()
	if err != nil {
		return err
	}
	runErr := fn(inv)
	if err := inv.Close(); err != nil && runErr == nil {
		return sysError("close inventory: %w", err)
	}
	return runErr
}
