package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

func renderBooks(w io.Writer, books []domain.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tGENRE\tPRICE\tSTOCK")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f %s\t%d\n",
			b.ID, b.Title, b.Author, b.Genre, b.Price, b.Currency, b.Stock)
	}
	tw.Flush()
}

func renderBookDetail(w io.Writer, b *domain.Book) {
	fmt.Fprintf(w, "%s\n", b.Title)
	fmt.Fprintf(w, "  Author:    %s\n", b.Author)
	fmt.Fprintf(w, "  Genre:     %s\n", b.Genre)
	fmt.Fprintf(w, "  Price:     %.2f %s\n", b.Price, b.Currency)
	fmt.Fprintf(w, "  Publisher: %s (%d)\n", b.Publisher, b.PublicationYear)
	fmt.Fprintf(w, "  Pages:     %d, Language: %s\n", b.Pages, b.Language)
	fmt.Fprintf(w, "  Stock:     %d\n", b.Stock)
	if b.Description != "" {
		fmt.Fprintf(w, "\n  %s\n", b.Description)
	}
}

// renderCart joins cart lines with the cached catalog for titles and a
// running total. Books missing from the cache render by id only; the
// server's quantities are displayed as-is either way.
func renderCart(w io.Writer, cart *domain.Cart, lookup func(int64) (*domain.Book, bool)) {
	if cart == nil || len(cart.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOK\tQTY\tPRICE\tSUBTOTAL")
	total := 0.0
	currency := ""
	for _, item := range cart.Items {
		if b, ok := lookup(item.BookID); ok {
			subtotal := b.Price * float64(item.Quantity)
			total += subtotal
			if currency == "" {
				currency = b.Currency
			}
			fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\n", b.Title, item.Quantity, b.Price, subtotal)
		} else {
			fmt.Fprintf(tw, "book #%d\t%d\t?\t?\n", item.BookID, item.Quantity)
		}
	}
	tw.Flush()
	if currency != "" {
		fmt.Fprintf(w, "\nTotal: %.2f %s\n", total, currency)
	}
}

func renderOrder(w io.Writer, o *domain.Order) {
	fmt.Fprintf(w, "Order #%d  [%s]\n", o.OrderID, o.Status)
	for _, item := range o.Items {
		fmt.Fprintf(w, "  book #%d x %d\n", item.BookID, item.Quantity)
	}
	fmt.Fprintf(w, "  Total: %.2f %s\n", o.TotalCost, o.Currency)
	fmt.Fprintf(w, "  Placed: %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
}

func renderUsers(w io.Writer, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush()
}
