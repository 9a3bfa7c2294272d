package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/foodfresh/pkg/foodfresh"
	"github.com/mesh-intelligence/foodfresh/pkg/freshness"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	var (
		status   string
		location string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items by expiration date",
		Long: `List shows every item, soonest expiration first.

Use --status to show only expired, use-soon or fresh items and --location
to show a single storage location.

Example:
  foodfresh list
  foodfresh list --status use-soon
  foodfresh list --location freezer --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var st freshness.Status
			if status != "" {
				parsed, err := freshness.ParseStatus(status)
				if err != nil {
					return userError("%w (want one of %s)", err, joinStatuses())
				}
				st = parsed
			}
			loc := types.StorageLocation(strings.ToLower(location))
			if loc != "" && !loc.Valid() {
				return userError("%w: %q", types.ErrInvalidLocation, location)
			}

			return a.withInventory(func(inv *foodfresh.Inventory) error {
				now := a.now()
				items := inv.Items()
				if st != "" {
					items = freshness.Filter(items, st, now)
				}
				if loc != "" {
					items = slices.DeleteFunc(items, func(it types.FoodItem) bool {
						return it.StorageLocation != loc
					})
				}

				views := newItemViews(items, now)
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), views)
				}
				printItemTable(cmd.OutOrStdout(), views)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (expired, use-soon, fresh)")
	cmd.Flags().StringVar(&location, "location", "", "filter by storage location (fridge, freezer, pantry)")
	return cmd
}

func joinStatuses() string {
	names := make([]string, len(freshness.Statuses))
	for i, s := range freshness.Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// summaryView is the JSON form of the summary command.
type summaryView struct {
	freshness.Summary
	TotalWasteCost types.Price `json:"totalWasteCost"`
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count items by freshness and show the waste total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(func(inv *foodfresh.Inventory) error {
				view := summaryView{
					Summary:        inv.Summary(a.now()),
					TotalWasteCost: inv.TotalWasteCost(),
				}
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), view)
				}

				rows := [][]string{
					{"Expired", fmt.Sprint(view.Expired)},
					{"Use soon", fmt.Sprint(view.UseSoon)},
					{"Fresh", fmt.Sprint(view.Fresh)},
				}
				if view.Unknown > 0 {
					rows = append(rows, []string{"Unknown", fmt.Sprint(view.Unknown)})
				}
				rows = append(rows,
					[]string{"Opened", fmt.Sprint(view.Opened)},
					[]string{"Total", fmt.Sprint(view.Total)},
					[]string{"Waste cost", view.TotalWasteCost.String()},
				)
				printTable(cmd.OutOrStdout(), []string{"CATEGORY", "COUNT"}, rows)
				return nil
			})
		},
	}
}
