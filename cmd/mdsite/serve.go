package main

import (
	"os/signal"
	"syscall"

	"github.com/dgallion1/mdsite/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and the public directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return api.ListenAndServe(ctx, cfg, a.logger())
		},
	}
	cmd.Flags().String("port", "8090", "Listen port")
	cmd.Flags().String("api-key", "", "Bearer token required on /api routes")
	bindFlags(a.v, cmd.Flags().Lookup, map[string]string{
		"port":    "port",
		"api_key": "api-key",
	})
	return cmd
}
