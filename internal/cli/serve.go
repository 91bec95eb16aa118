package cli

import (
	"shelter-pet-tracker/internal/router"

	"github.com/spf13/cobra"
)

func serveCommand(e *env) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API used by the desktop front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = e.app.Config.Addr
			}
			h := router.NewRouter(router.Options{
				Service: e.app.Service,
				Logger:  e.app.Logger,
				Metrics: e.app.Metrics,
			})
			return router.Serve(cmd.Context(), addr, h, e.app.Logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, 127.0.0.1:8080)")
	return cmd
}
