package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/viewcube/internal/logger"
	"github.com/Faultbox/viewcube/internal/stream"
	"github.com/Faultbox/viewcube/pkg/cube"
)

var flagServeTour bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the camera pose stream over WebSocket",
	Long: `Serve a WebSocket pose stream without opening a window. With --tour
a headless camera cycles through every orientation, animating between
them and publishing each intermediate pose.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&flagServeTour, "tour", true, "cycle the camera through all orientations")
	rootCmd.AddCommand(serveCmd)
}

// headlessView is a windowless camera host whose scene is the widget
// itself.
type headlessView struct {
	pose  cube.Pose
	scene cube.Box
}

func (v *headlessView) Camera() cube.Pose                 { return v.pose }
func (v *headlessView) SetCamera(p cube.Pose)             { v.pose = p }
func (v *headlessView) SceneBounds() cube.Box             { return v.scene }
func (v *headlessView) SelectionBounds() (cube.Box, bool) { return cube.EmptyBox(), false }
func (v *headlessView) Invalidate()                       {}

func runServe(cmd *cobra.Command, args []string) error {
	hub := stream.NewHub()
	srv := stream.NewServer(cfg.Stream.Addr, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagServeTour {
		go runTour(ctx, hub)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// runTour animates a headless camera through every orientation in order,
// publishing each animation step to the hub.
func runTour(ctx context.Context, hub *stream.Hub) {
	view := &headlessView{}
	widget := cube.New(view)
	if err := widget.SetStyle(cfg.Style()); err != nil {
		logger.Error("invalid cube style", zap.Error(err))
		return
	}
	widget.FixedAnimation = false
	widget.Transition().Duration = cfg.Animation.Duration
	widget.Transition().ResetUp = cfg.Animation.ResetUp

	view.scene = widget.Bounds()
	view.pose = cube.FitPose(
		cube.OrientationPose(cube.XPosYNegZPos, widget.Style().Yup),
		view.scene, 0.01)

	orientations := cube.All()
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	current := ""
	tr := widget.Transition()
	tr.OnAfterStep = func() { hub.Publish(view.pose, current) }
	tr.OnFinished = func() { hub.Publish(view.pose, current) }

	next := 0
	hold := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if tr.Animating() {
			tr.Advance(widget.Clock())
			continue
		}
		// Linger on each orientation before moving on.
		if time.Since(hold) < time.Second {
			continue
		}

		target := orientations[next]
		next = (next + 1) % len(orientations)
		current = target.String()
		logger.Debug("tour step", zap.String("orientation", current))
		tr.Start(target, widget.Style().Yup, widget.Clock())
		hold = time.Now()
	}
}
