package cli

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/gateway"
)

// readPassword reads a masked password from the terminal.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func newLoginCmd(app *App) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the bookstore",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return errors.New("username is required")
			}
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("password is required")
			}

			app.Session.BeginAuthentication()
			resp, err := app.Gateway.Login(cmd.Context(), gateway.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				app.Session.FailAuthentication()
				var apiErr *gateway.APIError
				if errors.As(err, &apiErr) && apiErr.IsAuthRejection() {
					return errors.New("login failed: invalid username or password")
				}
				return fmt.Errorf("login failed: %w", err)
			}

			if err := app.Session.Establish(resp.AccessToken, resp.RefreshToken); err != nil {
				app.Session.FailAuthentication()
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n",
				app.Session.Username(), app.Session.Role())
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Pure client-side forget; the server is not called.
			if err := app.Session.Teardown(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return errors.New("username is required")
			}
			password, err := readPassword("Choose a password: ")
			if err != nil {
				return err
			}
			if len(password) < 6 {
				// Form-level validation: never reaches the network.
				return errors.New("password must be at least 6 characters")
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}

			user, err := app.Gateway.Register(cmd.Context(), gateway.RegisterRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %q created. You can now log in.\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "desired username")
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := app.Guard.RequireAuthenticated(); err != nil {
				fmt.Fprintln(out, "Not logged in.")
				return nil
			}
			fmt.Fprintf(out, "Logged in as %s (%s)\n", app.Session.Username(), app.Session.Role())
			return nil
		},
	}
}
