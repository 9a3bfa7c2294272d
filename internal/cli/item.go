package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/foodfresh/pkg/foodfresh"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// itemFlags are the fields shared by add and edit.
type itemFlags struct {
	name     string
	expires  string
	inDays   int
	location string
	price    string
}

func (f *itemFlags) register(cmd *cobra.Command, withName bool) {
	if withName {
		cmd.Flags().StringVar(&f.name, "name", "", "item name")
	}
	cmd.Flags().StringVar(&f.expires, "expires", "", "expiration date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.inDays, "in-days", 0, "expiration as a number of days from today")
	cmd.Flags().StringVar(&f.location, "location", "", "storage location: fridge, freezer or pantry")
	cmd.Flags().StringVar(&f.price, "price", "", "price paid")
	cmd.MarkFlagsMutuallyExclusive("expires", "in-days")
}

// apply overwrites the fields of in whose flags were set on cmd.
func (f *itemFlags) apply(cmd *cobra.Command, a *app, in *types.ItemInput) error {
	if cmd.Flags().Changed("name") {
		in.Name = f.name
	}
	if cmd.Flags().Changed("expires") {
		in.ExpirationDate = f.expires
	}
	if cmd.Flags().Changed("in-days") {
		in.ExpirationDate = a.now().AddDate(0, 0, f.inDays).Format(types.DateLayout)
	}
	if cmd.Flags().Changed("location") {
		in.StorageLocation = types.StorageLocation(strings.ToLower(f.location))
	}
	if cmd.Flags().Changed("price") {
		p, err := types.ParsePrice(f.price)
		if err != nil {
			return userError("%w: %q", types.ErrInvalidPrice, f.price)
		}
		in.Price = p
	}
	if err := in.Validate(); err != nil {
		return userError("%w", err)
	}
	return nil
}

func newAddCmd(a *app) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add NAME...",
		Short: "Add an item to the inventory",
		Long: `Add records a new perishable item.

Example:
  foodfresh add milk --expires 2026-10-20 --price 1.29
  foodfresh add greek yogurt --in-days 5 --location fridge`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := types.ItemInput{Name: strings.Join(args, " ")}
			if !cmd.Flags().Changed("expires") && !cmd.Flags().Changed("in-days") {
				return userError("one of --expires or --in-days is required")
			}
			if err := f.apply(cmd, a, &in); err != nil {
				return err
			}

			return a.withInventory(func(inv *foodfresh.Inventory) error {
				item, err := inv.Add(in)
				if err != nil {
					return sysError("add item: %w", err)
				}
				a.logger.Debug("item added", "id", item.ID, "name", item.Name)

				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), newItemView(item, a.now()))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", item.Name, item.ID)
				return nil
			})
		},
	}
	f.register(cmd, false)
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a single item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				item, err := resolveItem(inv.Items(), args[0])
				if err != nil {
					return err
				}
				view := newItemView(item, a.now())
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), view)
				}
				printItemDetail(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change an item's name, date, location or price",
		Long: `Edit replaces the editable fields of an item. Fields whose flag is not
given keep their current value. The item's id, creation time and opened
state never change.

Example:
  foodfresh edit 0192 --expires 2026-11-01
  foodfresh edit 0192 --location freezer --price 4.10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				item, err := resolveItem(inv.Items(), args[0])
				if err != nil {
					return err
				}
				in := types.ItemInput{
					Name:            item.Name,
					ExpirationDate:  item.ExpirationDate,
					StorageLocation: item.StorageLocation,
					Price:           item.Price,
				}
				if err := f.apply(cmd, a, &in); err != nil {
					return err
				}
				if err := inv.Edit(item.ID, in); err != nil {
					return sysError("edit item: %w", err)
				}

				updated, _ := inv.Get(item.ID)
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), newItemView(updated, a.now()))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", updated.Name, updated.ID)
				return nil
			})
		},
	}
	f.register(cmd, true)
	return cmd
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open ID",
		Short: "Toggle whether an item has been opened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				item, err := resolveItem(inv.Items(), args[0])
				if err != nil {
					return err
				}
				if err := inv.ToggleOpened(item.ID); err != nil {
					return sysError("toggle opened: %w", err)
				}

				updated, _ := inv.Get(item.ID)
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), newItemView(updated, a.now()))
				}
				state := "unopened"
				if updated.Opened {
					state = "opened"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", updated.Name, state)
				return nil
			})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove an item without recording waste",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				item, err := resolveItem(inv.Items(), args[0])
				if err != nil {
					return err
				}
				if err := inv.Remove(item.ID); err != nil {
					return sysError("remove item: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.Name)
				return nil
			})
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the inventory",
		Long:  "Clear empties the inventory. The waste ledger is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return userError("refusing to clear the inventory without --yes")
			}
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				n := len(inv.Items())
				if err := inv.Clear(); err != nil {
					return sysError("clear inventory: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d item(s)\n", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing the inventory")
	return cmd
}
