package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shop-demo/internal/api"
)

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func validateOutputFormat(output string) error {
	if output != "" && output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOrders writes one block per order: a header line followed by its lines.
func printOrders(w io.Writer, orders []api.Order) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, o := range orders {
		if i > 0 {
			_, _ = fmt.Fprintln(tw)
		}
		_, _ = fmt.Fprintf(tw, "ORDER %d\tTOTAL %d\n", o.OrderID, o.TotalPrice)
		_, _ = fmt.Fprintln(tw, "PRODUCT\tNAME\tPRICE\tQUANTITY")
		for _, d := range o.OrderDetails {
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", d.ProductID, d.Name, d.Price, d.Quantity)
		}
	}
	return tw.Flush()
}
