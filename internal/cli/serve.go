package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Xausdorf/pix-brcode/internal/app"
)

func newServeCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve BR Code generation over HTTP and gRPC",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return app.Run(ctx, rt.cfg, rt.logger)
		},
	}

	cmd.Flags().String("http-addr", ":8080", "HTTP listen address")
	cmd.Flags().String("grpc-addr", ":50051", "gRPC listen address")

	_ = rt.v.BindPFlag("http.addr", cmd.Flags().Lookup("http-addr"))
	_ = rt.v.BindPFlag("grpc.addr", cmd.Flags().Lookup("grpc-addr"))

	return cmd
}
