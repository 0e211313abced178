package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

func newContactCmd(app *App) *cobra.Command {
	var msg domain.ContactMessage

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the bookstore",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Form-level validation, shown before anything reaches the
			// network.
			if len(strings.TrimSpace(msg.Name)) < 2 {
				return errors.New("name must be at least 2 characters")
			}
			if !strings.Contains(msg.Email, "@") {
				return errors.New("invalid email address")
			}
			if msg.Subject == "" || msg.Message == "" {
				return errors.New("subject and message are required")
			}

			if err := app.Gateway.SaveContact(cmd.Context(), &msg); err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Message sent. We'll get back to you soon.")
			return nil
		},
	}
	cmd.Flags().StringVar(&msg.Name, "name", "", "your name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&msg.Phone, "phone", "", "your phone number (optional)")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&msg.Message, "message", "", "message body")
	return cmd
}
