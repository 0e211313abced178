// Package cli contains the storefront's views: cobra commands that
// render slice state and dispatch actions. Commands own only ephemeral
// UI state; everything shared lives in the session store and the state
// slices and is mutated solely through their operations.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/config"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/gateway"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/guard"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/logger"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/session"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/state"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/telemetry"
)

// App bundles everything a command needs. Built once in the root
// command's PersistentPreRun.
type App struct {
	Config  *config.Config
	Session *session.Store
	Gateway *gateway.Client
	Books   *state.BookState
	Cart    *state.CartState
	Orders  *state.OrderState
	Guard   *guard.Guard
}

// NewApp wires the client stack from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	stateDir, err := cfg.StateDir()
	if err != nil {
		return nil, err
	}

	sess := session.NewStore(stateDir)
	sess.Load()

	gw, err := gateway.NewClient(gateway.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tokens:  sess,
		OnAuthRejection: func() {
			// Any 401 ends the session: back to Anonymous, no refresh.
			_ = sess.Teardown()
		},
		Logger: logger.Get(),
	})
	if err != nil {
		return nil, err
	}

	books := state.NewBookState(gw)
	cart := state.NewCartState(gw)
	orders := state.NewOrderState(gw, cart)

	return &App{
		Config:  cfg,
		Session: sess,
		Gateway: gw,
		Books:   books,
		Cart:    cart,
		Orders:  orders,
		Guard:   guard.New(sess),
	}, nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "litshelf",
		Short:         "LitShelf bookstore storefront",
		Long:          "Terminal storefront for the LitShelf online bookstore: browse, search, manage your cart, check out, and administer the catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Init(&logger.Config{
				Level:       cfg.Log.Level,
				ServiceName: "litshelf-storefront",
				Development: cfg.IsDevelopment(),
			}); err != nil {
				return err
			}
			if _, err := telemetry.Init(cmd.Context(), &telemetry.Config{
				Enabled:        cfg.OTel.Enabled,
				ServiceName:    cfg.OTel.ServiceName,
				ServiceVersion: cfg.App.Version,
				Environment:    cfg.App.Environment,
				CollectorAddr:  cfg.OTel.CollectorAddr,
				SampleRatio:    cfg.OTel.SampleRatio,
			}); err != nil {
				logger.Get().Warn(fmt.Sprintf("telemetry disabled: %v", err))
			}

			built, err := NewApp(cfg)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = telemetry.Shutdown(cmd.Context())
			logger.Sync()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newBrowseCmd(app),
		newSearchCmd(app),
		newBookCmd(app),
		newCartCmd(app),
		newCheckoutCmd(app),
		newOrdersCmd(app),
		newContactCmd(app),
		newAdminCmd(app),
	)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
