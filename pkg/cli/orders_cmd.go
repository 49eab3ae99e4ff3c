package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shop-demo/internal/api"
)

func newOrdersCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place and inspect orders of the authenticated customer",
	}

	cmd.AddCommand(newOrdersPlaceCmd(client))
	cmd.AddCommand(newOrdersGetCmd(client))
	cmd.AddCommand(newOrdersListCmd(client))
	return cmd
}

func newOrdersPlaceCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "place <cartId>:<quantity>...",
		Short: "Order cart entries",
		Example: `  # Order two of cart entry 1 and five of cart entry 2
  shop orders place 1:2 2:5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseOrderLines(args)
			if err != nil {
				return err
			}
			id, err := client.PlaceOrder(cmd.Context(), lines)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), api.PlaceOrderResponse{OrderID: id})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order %d placed\n", id)
			return nil
		},
	}
}

func newOrdersGetCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <orderId>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := client.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), o)
			}
			return printOrders(cmd.OutOrStdout(), []api.Order{o})
		},
	}
}

func newOrdersListCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all orders, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), orders)
			}
			if len(orders) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No orders.")
				return nil
			}
			return printOrders(cmd.OutOrStdout(), orders)
		},
	}
}

// parseOrderLines parses "cartId:quantity" pairs. Quantity is checked by the server.
func parseOrderLines(args []string) ([]api.OrderLineRequest, error) {
	lines := make([]api.OrderLineRequest, 0, len(args))
	for _, arg := range args {
		cartStr, qtyStr, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid line %q: want <cartId>:<quantity>", arg)
		}
		cartID, err := strconv.ParseInt(cartStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cart id in %q", arg)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q", arg)
		}
		lines = append(lines, api.OrderLineRequest{CartID: cartID, Quantity: qty})
	}
	return lines, nil
}
