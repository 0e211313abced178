package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your shopping cart",
	}
	cmd.AddCommand(newCartShowCmd(app), newCartAddCmd(app))
	return cmd
}

func newCartShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Guard.RequireAuthenticated(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			// The catalog fetch is best-effort, only used for titles and
			// prices in the rendering; the cart itself is authoritative.
			_ = app.Books.FetchAll(cmd.Context())

			if err := app.Cart.Fetch(cmd.Context()); err != nil {
				if cart := app.Cart.Cart(); cart != nil {
					renderCart(out, cart, app.Books.Find)
				}
				return fmt.Errorf("failed to load cart: %w", err)
			}
			renderCart(out, app.Cart.Cart(), app.Books.Find)
			return nil
		},
	}
}

func newCartAddCmd(app *App) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <book-id>",
		Short: "Add a book to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Guard.RequireAuthenticated(); err != nil {
				return err
			}
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}
			if quantity < 1 {
				// Cosmetic bound only; the server's clamping is what counts.
				return fmt.Errorf("quantity must be a positive integer")
			}

			if err := app.Cart.AddItem(cmd.Context(), bookID, quantity); err != nil {
				return fmt.Errorf("failed to add to cart: %w", err)
			}

			cart := app.Cart.Cart()
			fmt.Fprintf(cmd.OutOrStdout(), "Added. Cart now holds %d item(s); book #%d quantity is %d.\n",
				cart.ItemCount(), bookID, cart.Quantity(bookID))
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "number of copies")
	return cmd
}

func newCheckoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Guard.RequireAuthenticated(); err != nil {
				return err
			}

			order, err := app.Orders.Place(cmd.Context())
			if err != nil {
				return fmt.Errorf("checkout failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Order placed!")
			renderOrder(out, order)
			return nil
		},
	}
}

func newOrdersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show orders placed this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Guard.RequireAuthenticated(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			history := app.Orders.History()
			if len(history) == 0 {
				fmt.Fprintln(out, "No orders placed this session.")
				return nil
			}
			for i := range history {
				renderOrder(out, &history[i])
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
