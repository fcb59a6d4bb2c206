package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storefront/price-formatter/internal/config"
	"github.com/storefront/price-formatter/internal/logging"
)

type rootOptions struct {
	envFile  string
	logLevel string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "pricefmt",
		Short:         "Format catalog product prices into the API price schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(opts.envFile); err != nil {
				return err
			}
			level := opts.logLevel
			if !cmd.Flags().Changed("log-level") {
				level = config.EnvOr("LOG_LEVEL", level)
			}
			logger, err := logging.NewLogger(level)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with PRICEFMT_* defaults")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error); LOG_LEVEL overrides the default")

	cmd.AddCommand(newFormatCmd(opts), newValidateCmd(opts), newFormatsCmd())
	return cmd
}

func (o *rootOptions) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}
