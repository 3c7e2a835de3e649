package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/viewcube/internal/logger"
	"github.com/Faultbox/viewcube/internal/stream"
	"github.com/Faultbox/viewcube/internal/viewer"
)

var flagViewStream bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive widget demo",
	Long: `Open an SDL2 window with the view cube. Left-drag orbits, hovering
highlights the region under the cursor and a click animates the camera
toward the picked orientation.

Keys: E edges, C corners, A axes, U up convention, F fixed animation,
R reset, +/- resize, Q quit.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagViewStream, "stream", false, "also serve the pose stream")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	var hub *stream.Hub
	if flagViewStream {
		hub = stream.NewHub()
		srv := stream.NewServer(cfg.Stream.Addr, hub)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				logger.Error("pose stream server failed", zap.Error(err))
			}
		}()
	}

	v, err := viewer.New(cfg, hub)
	if err != nil {
		return err
	}
	defer v.Close()

	return v.Run()
}
