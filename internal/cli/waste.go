package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/foodfresh/pkg/foodfresh"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

func newWasteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "waste ID",
		Short: "Discard an item and record its cost as waste",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				item, err := resolveItem(inv.Items(), args[0])
				if err != nil {
					return err
				}
				if err := inv.Waste(item); err != nil {
					return sysError("record waste: %w", err)
				}
				a.logger.Debug("item wasted", "id", item.ID, "price", item.Price.String())
				fmt.Fprintf(cmd.OutOrStdout(), "Wasted %s (%s). Total waste cost: %s\n",
					item.Name, item.Price, inv.TotalWasteCost())
				return nil
			})
		},
	}
}

func newLedgerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the waste ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				var ledger types.WasteLedger
				cancel := inv.WasteList(func(l types.WasteLedger) { ledger = l })
				cancel()

				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), ledger)
				}
				printLedger(cmd.OutOrStdout(), ledger)
				return nil
			})
		},
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all waste records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return userError("refusing to clear the waste ledger without --yes")
			}
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				n := len(inv.WasteRecords())
				if err := inv.ClearWaste(); err != nil {
					return sysError("clear waste ledger: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d waste record(s)\n", n)
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing the ledger")
	cmd.AddCommand(clearCmd)
	return cmd
}
