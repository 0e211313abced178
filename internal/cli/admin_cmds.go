package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// adminOnly wraps a command body with the route guard. A non-admin
// session never sees the protected content: it is bounced to the home
// view instead, mirroring the storefront's redirect. The check runs on
// every invocation, and the server enforces the real boundary anyway.
func adminOnly(app *App, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := app.Guard.RequireAdmin(); err != nil {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Admin access required - taking you back to the shop.")
			if app.Books.FetchAll(cmd.Context()) == nil {
				renderBooks(out, app.Books.Books())
			}
			return nil
		}
		return run(cmd, args)
	}
}

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer the catalog and user accounts",
	}
	cmd.AddCommand(newAdminBooksCmd(app), newAdminUsersCmd(app))
	return cmd
}

// ---- books ----

func newAdminBooksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the catalog",
	}
	cmd.AddCommand(
		newAdminBookAddCmd(app),
		newAdminBookUpdateCmd(app),
		newAdminBookDeleteCmd(app),
	)
	return cmd
}

func bookFlags(cmd *cobra.Command, book *domain.Book) {
	cmd.Flags().StringVar(&book.Title, "title", "", "book title")
	cmd.Flags().StringVar(&book.Author, "author", "", "author")
	cmd.Flags().StringVar(&book.Genre, "genre", "", "genre")
	cmd.Flags().Float64Var(&book.Price, "price", 0, "price")
	cmd.Flags().StringVar(&book.Currency, "currency", "USD", "currency code")
	cmd.Flags().StringVar(&book.CoverImage, "cover", "", "cover image path")
	cmd.Flags().IntVar(&book.PublicationYear, "year", 0, "publication year")
	cmd.Flags().StringVar(&book.Publisher, "publisher", "", "publisher")
	cmd.Flags().StringVar(&book.Description, "description", "", "description")
	cmd.Flags().IntVar(&book.Pages, "pages", 0, "page count")
	cmd.Flags().StringVar(&book.Language, "language", "English", "language")
	cmd.Flags().IntVar(&book.Stock, "stock", 0, "stock on hand")
}

func newAdminBookAddCmd(app *App) *cobra.Command {
	var book domain.Book

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
	}
	bookFlags(cmd, &book)
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		if book.Title == "" || book.Author == "" {
			return fmt.Errorf("title and author are required")
		}
		saved, err := app.Gateway.SaveBook(cmd.Context(), &book)
		if err != nil {
			return fmt.Errorf("failed to save book: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q as book #%d.\n", saved.Title, saved.ID)
		return nil
	})
	return cmd
}

func newAdminBookUpdateCmd(app *App) *cobra.Command {
	var book domain.Book

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog entry",
		Args:  cobra.ExactArgs(1),
	}
	bookFlags(cmd, &book)
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}
		updated, err := app.Gateway.UpdateBook(cmd.Context(), id, &book)
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated book #%d.\n", updated.ID)
		return nil
	})
	return cmd
}

func newAdminBookDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a catalog entry",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}
		if err := app.Gateway.DeleteBook(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted book #%d.\n", id)
		return nil
	})
	return cmd
}

// ---- users ----

func newAdminUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(
		newAdminUserListCmd(app),
		newAdminUserShowCmd(app),
		newAdminUserUpdateCmd(app),
		newAdminUserDeleteCmd(app),
	)
	return cmd
}

func newAdminUserListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
	}
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		users, err := app.Gateway.GetAllUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		renderUsers(cmd.OutOrStdout(), users)
		return nil
	})
	return cmd
}

func newAdminUserShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		user, err := app.Gateway.GetUser(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		renderUsers(cmd.OutOrStdout(), []domain.User{*user})
		return nil
	})
	return cmd
}

func newAdminUserUpdateCmd(app *App) *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&username, "username", "", "new username")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().StringVar(&role, "role", "", "new role (customer or admin)")
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		if role != "" && !domain.Role(role).Valid() {
			return fmt.Errorf("invalid role %q", role)
		}
		updated, err := app.Gateway.UpdateUser(cmd.Context(), id, &domain.User{
			Username: username,
			Password: password,
			Role:     domain.Role(role),
		})
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated user #%d.\n", updated.ID)
		return nil
	})
	return cmd
}

func newAdminUserDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = adminOnly(app, func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		if err := app.Gateway.DeleteUser(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted user #%d.\n", id)
		return nil
	})
	return cmd
}
