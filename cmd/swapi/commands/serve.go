package commands

import (
	"os/signal"
	"syscall"

	"github.com/fivetwenty-io/swapi/internal/constants"
	"github.com/fivetwenty-io/swapi/internal/server"
	"github.com/fivetwenty-io/swapi/internal/view"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved views over HTTP",
		Long: `Serve the detail and list views as JSON:

  GET /healthz
  GET /api/{type}?search=&page=
  GET /api/{type}/{id}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, logger, err := createClient(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			builder := view.NewBuilder(client, view.WithLogger(logger))

			return server.Serve(ctx, viper.GetString("serve_addr"), server.NewHandler(builder, logger), logger)
		},
	}

	cmd.Flags().String("addr", constants.DefaultServeAddr, "listen address")
	_ = viper.BindPFlag("serve_addr", cmd.Flags().Lookup("addr"))

	return cmd
}
