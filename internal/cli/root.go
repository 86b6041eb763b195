// Package cli provides the brcode command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Xausdorf/pix-brcode/internal/infrastructure/config"
	"github.com/Xausdorf/pix-brcode/internal/infrastructure/logging"
)

// runtime carries what PersistentPreRunE resolves for subcommands.
type runtime struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rt := &runtime{v: viper.New()}

	root := &cobra.Command{
		Use:   "brcode",
		Short: "Static PIX BR Code generator",
		Long: `Build static PIX payment payloads (BR Code) in the EMVCo merchant-presented
QR format, render them as QR images, or serve them over HTTP and gRPC.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadViper(rt.v, rt.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			rt.cfg = cfg
			rt.logger = logging.Init(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rt.cfgFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().String("log-level", "info", "logging level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "json", "logging format (human, json)")

	_ = rt.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = rt.v.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newGenerateCommand(rt))
	root.AddCommand(newKeygenCommand())
	root.AddCommand(newServeCommand(rt))

	return root
}
