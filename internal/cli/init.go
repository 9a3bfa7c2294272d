package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/foodfresh/pkg/foodfresh"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize foodfresh storage",
		Long:  "Create the configuration directory with a default config.yaml, then create the data directory and storage backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.storeConfig()
			if err != nil {
				return err
			}

			written, err := writeConfigIfMissing(a.configDir, configFile{Backend: cfg.Backend, DataDir: a.flags.dataDir})
			if err != nil {
				return sysError("write config: %w", err)
			}
			if written {
				a.logger.Debug("default config written", "path", filepath.Join(a.configDir, configFileBase))
			}

			// Attaching creates the data directory and schema.
			err = a.withInventory(func(inv *foodfresh.Inventory) error { return nil })
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "foodfresh initialized successfully")
			fmt.Fprintln(out, "  config: ", a.configDir)
			fmt.Fprintln(out, "  data:   ", cfg.DataDir)
			fmt.Fprintln(out, "  backend:", cfg.Backend)
			return nil
		},
	}
}
