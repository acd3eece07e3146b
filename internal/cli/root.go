package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wallet-watch/internal/config"
	"wallet-watch/internal/database"
	"wallet-watch/internal/logger"
	"wallet-watch/internal/ui"
)

const genericFailure = "Sorry, something wrong happened!"

// App carries what every command needs. One App serves one invocation.
type App struct {
	Config *config.Config
	Logger *zerolog.Logger
	UI     ui.UI
	Build  ServicesBuilder

	dbPath   string
	logLevel string
}

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	if app.Build == nil {
		app.Build = NewServices
	}

	rootCmd := &cobra.Command{
		Use:   "wallet-watch",
		Short: "Watch BTC and ETH addresses from the terminal",
		Long: `wallet-watch keeps a local list of Bitcoin and Ethereum addresses and reports
their balances, ERC-20 token holdings and recent Ethereum transactions.

Run "wallet-watch setup" first to register the addresses to watch.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("log-level") {
				logger.Init(app.logLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.dbPath, "db", app.Config.DatabasePath, "path of the SQLite store file")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", app.Config.LogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newSetupCmd(app),
		newBalancesCmd(app),
		newTransactionsCmd(app),
		newAllCmd(app),
		newResetCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}

// Execute runs the command line with the production terminal UI.
func Execute(ctx context.Context, cfg *config.Config) error {
	app := &App{
		Config: cfg,
		Logger: logger.GetLogger(),
		UI:     ui.NewTerminalUI(),
	}
	return NewRootCmd(app).ExecuteContext(ctx)
}

// run executes fn and turns any failure into the generic message. The
// process still exits with status zero.
func (a *App) run(cmd *cobra.Command, fn func(ctx context.Context) error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fn(ctx); err != nil {
		a.fail(cmd, err)
	}
}

func (a *App) fail(cmd *cobra.Command, err error) {
	a.Logger.Error().
		Err(err).
		Str("command", cmd.Name()).
		Msg("Command failed")
	a.UI.Error(genericFailure)
}

// withServices opens the existing store, builds the services over it and
// releases both once fn returns.
func (a *App) withServices(ctx context.Context, fn func(store *database.Store, svc *Services) error) error {
	store, err := database.OpenStore(ctx, a.dbPath, a.Logger)
	if err != nil {
		return err
	}
	defer store.Close()

	svc, err := a.Build(ctx, a.Config, store, a.Logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	return fn(store, svc)
}
