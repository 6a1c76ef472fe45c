package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/tactile"
)

type options struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&options{})
}

// newRootCmdWith builds the command tree around opts. A preset opts.logger is
// kept instead of building a production logger.
func newRootCmdWith(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "tactile",
		Short: "Touch gesture recognizer tools",
		Long: `tactile drives the gesture recognizer from scripted contact samples.

Scripts are YAML (or JSON) lists of steps such as tap, swipe, hold, and pinch.
Recognizer tunables come from defaults or a YAML file passed with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
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
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log recognizer decisions at debug level")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with recognizer tunables")

	root.AddCommand(newReplayCmd(opts), newConfigCmd(opts))
	return root
}

// loadConfig returns the defaults, or the --config file layered over them.
func (o *options) loadConfig() (tactile.Config, error) {
	if o.configPath == "" {
		return tactile.DefaultConfig(), nil
	}
	cfg, err := tactile.LoadConfig(o.configPath)
	if err != nil {
		return tactile.Config{}, err
	}
	o.logger.Debug("loaded config", zap.String("path", o.configPath))
	return cfg, nil
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective recognizer configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out, err := tactile.MarshalConfig(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
