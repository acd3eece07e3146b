package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"wallet-watch/internal/health"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the chain RPC endpoints answer",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, func(ctx context.Context) error {
				svc, err := app.Build(ctx, app.Config, nil, app.Logger)
				if err != nil {
					return err
				}
				defer svc.Close()

				statuses := health.Check(ctx, svc.Heads, app.Logger)
				rows := make([][]string, 0, len(statuses))
				for _, s := range statuses {
					state, block := "OK", strconv.FormatUint(s.LastBlock, 10)
					if !s.Ready {
						state, block = s.Error, notAvailable
					}
					rows = append(rows, []string{s.Name, block, state})
				}
				app.UI.Table([]string{"Chain", "Last Block", "Status"}, rows)

				if health.Ready(statuses) {
					app.UI.Success("All endpoints ready")
				} else {
					app.UI.Warn("Some endpoints are not ready")
				}
				return nil
			})
		},
	}
}
