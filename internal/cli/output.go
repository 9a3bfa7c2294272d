package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/foodfresh/pkg/freshness"
	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// itemView is an item together with its freshness as of the time of the
// command.
type itemView struct {
	types.FoodItem
	Status     freshness.Status `json:"status"`
	DaysLeft   *int             `json:"daysLeft,omitempty"`
	StatusText string           `json:"statusText"`
}

func newItemView(item types.FoodItem, now time.Time) itemView {
	v := itemView{
		FoodItem:   item,
		Status:     freshness.Classify(item, now),
		StatusText: freshness.StatusText(item, now),
	}
	if days, err := freshness.DaysLeft(item.ExpirationDate, now); err == nil {
		v.DaysLeft = &days
	}
	return v
}

func newItemViews(items []types.FoodItem, now time.Time) []itemView {
	views := make([]itemView, len(items))
	for i, it := range items {
		views[i] = newItemView(it, now)
	}
	return views
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printTable writes rows through a tabwriter, trimming trailing whitespace
// from each line.
func printTable(w io.Writer, header []string, rows [][]string) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func openedMark(opened bool) string {
	if opened {
		return "yes"
	}
	return "no"
}

// printItemTable prints items in a human-readable table.
func printItemTable(w io.Writer, views []itemView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No items found.")
		return
	}
	rows := make([][]string, len(views))
	for i, v := range views {
		name := v.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		rows[i] = []string{
			v.ID,
			name,
			string(v.StorageLocation),
			v.ExpirationDate,
			v.StatusText,
			openedMark(v.Opened),
			v.Price.String(),
		}
	}
	printTable(w, []string{"ID", "NAME", "LOCATION", "EXPIRES", "STATUS", "OPENED", "PRICE"}, rows)
	fmt.Fprintf(w, "Total: %d item(s)\n", len(views))
}

// printItemDetail prints a single item as key-value lines.
func printItemDetail(w io.Writer, v itemView) {
	rows := [][]string{
		{"ID:", v.ID},
		{"Name:", v.Name},
		{"Location:", string(v.StorageLocation)},
		{"Expires:", v.ExpirationDate},
		{"Status:", fmt.Sprintf("%s (%s)", v.Status, v.StatusText)},
		{"Opened:", openedMark(v.Opened)},
		{"Price:", v.Price.String()},
		{"Added:", v.CreatedAt.Local().Format(time.DateTime)},
	}
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	fmt.Fprint(w, sb.String())
}

// printLedger prints waste records followed by the total.
func printLedger(w io.Writer, ledger types.WasteLedger) {
	if len(ledger.Records) == 0 {
		fmt.Fprintln(w, "No waste recorded.")
	} else {
		rows := make([][]string, len(ledger.Records))
		for i, r := range ledger.Records {
			rows[i] = []string{fmt.Sprint(i + 1), r.Name, r.Price.String()}
		}
		printTable(w, []string{"#", "NAME", "PRICE"}, rows)
	}
	fmt.Fprintf(w, "Total waste cost: %s\n", ledger.Total)
}
