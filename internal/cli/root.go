// Package cli implements the hpackcli command tree: offline encode and
// decode of header blocks, table inspection, corpus record/replay and the
// live websocket inspector.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg    *Config
	logger *zap.Logger

	configPath string
	verbose    bool
}

// NewRootCmd builds the hpackcli command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "hpackcli",
		Short:         "Inspect and produce HPACK draft-07 header blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := a.newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newDecodeCmd(),
		a.newEncodeCmd(),
		a.newTablesCmd(),
		a.newReplayCmd(),
		a.newServeCmd(),
	)

	return root
}

func (a *app) newLogger() (*zap.Logger, error) {
	if a.verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
