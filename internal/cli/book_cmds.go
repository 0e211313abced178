package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "List the book catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := app.Books.FetchAll(cmd.Context())
			books := app.Books.Books()
			if err != nil {
				// Stale-but-available: show what we have plus the error.
				if len(books) > 0 {
					renderBooks(out, books)
				}
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			renderBooks(out, books)
			return nil
		},
	}
}

func newSearchCmd(app *App) *cobra.Command {
	var title, genre string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search books by title or genre",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (title == "") == (genre == "") {
				return errors.New("provide exactly one of --title or --genre")
			}

			var err error
			if title != "" {
				err = app.Books.SearchByTitle(cmd.Context(), title)
			} else {
				err = app.Books.SearchByGenre(cmd.Context(), genre)
			}
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			renderBooks(cmd.OutOrStdout(), app.Books.Books())
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "match by title")
	cmd.Flags().StringVar(&genre, "genre", "", "match by genre")
	return cmd
}

func newBookCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "book <id>",
		Short: "Show one book in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}
			book, err := app.Gateway.GetBook(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to load book: %w", err)
			}
			renderBookDetail(cmd.OutOrStdout(), book)
			return nil
		},
	}
}
