package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/viewcube/internal/config"
	"github.com/Faultbox/viewcube/internal/logger"
)

var (
	flagConfig string
	flagDebug  bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "viewcube",
	Short: "Interactive 3D orientation cube",
	Long: `viewcube builds the geometry of a CAD-style orientation cube,
picks its sides, edges and corners, and animates camera transitions
toward the picked direction.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}

		opts := logger.DefaultOptions()
		opts.Level = cfg.Logging.Level
		opts.File = cfg.Logging.LogFile
		if flagDebug {
			opts.Level = "debug"
		}
		return logger.Init(opts)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
