package cli

import (
	"context"

	"github.com/spf13/cobra"

	"wallet-watch/internal/database"
)

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the local store",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, func(ctx context.Context) error {
				if err := database.DeleteStore(app.dbPath); err != nil {
					return err
				}
				app.UI.Success("Removed %s", app.dbPath)
				return nil
			})
		},
	}
}
