package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/foodfresh/pkg/foodfresh"
)

const modulePath = "github.com/mesh-intelligence/foodfresh"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the foodfresh version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "foodfresh v%s\nmodule: %s\n", foodfresh.Version, modulePath)
			return nil
		},
	}
}
