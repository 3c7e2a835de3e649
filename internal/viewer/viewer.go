// Package viewer runs the interactive view cube demo: an SDL2 window with
// an orbiting orthographic camera, hover highlighting and click-to-reorient.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/viewcube/internal/config"
	"github.com/Faultbox/viewcube/internal/logger"
	"github.com/Faultbox/viewcube/internal/render"
	"github.com/Faultbox/viewcube/internal/stream"
	"github.com/Faultbox/viewcube/internal/window"
	"github.com/Faultbox/viewcube/pkg/cube"
	"github.com/Faultbox/viewcube/pkg/math"
)

// orbitSpeed is the orbit rotation in radians per pixel of drag.
const orbitSpeed = 0.008

// clickSlop is the drag distance in pixels below which a release counts as
// a click.
const clickSlop = 3

// sceneView adapts the viewer camera to the widget's view contract. The
// scene is the widget itself, so reorientations frame the cube.
type sceneView struct {
	pose  cube.Pose
	scene cube.Box
	dirty bool
}

func (v *sceneView) Camera() cube.Pose                 { return v.pose }
func (v *sceneView) SetCamera(p cube.Pose)             { v.pose = p }
func (v *sceneView) SceneBounds() cube.Box             { return v.scene }
func (v *sceneView) SelectionBounds() (cube.Box, bool) { return cube.EmptyBox(), false }
func (v *sceneView) Invalidate()                       { v.dirty = true }

type partMesh struct {
	part cube.WidgetPart
	gpu  *render.GPUMesh
}

// Viewer owns the demo window, the widget and the uploaded geometry.
type Viewer struct {
	cfg    *config.Config
	win    *window.Window
	rend   *render.Renderer
	widget *cube.ViewCube
	view   *sceneView
	hub    *stream.Hub

	parts   []partMesh
	axes    []*render.GPUMesh
	regions []cube.Region
	version uint64

	hovered    cube.Orientation
	hasHovered bool

	dragging  bool
	dragDist  float32
	lastMouse [2]int32
}

// New builds the viewer from configuration. A nil hub disables pose
// streaming.
func New(cfg *config.Config, hub *stream.Hub) (*Viewer, error) {
	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, err
	}

	rend, err := render.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		win.Close()
		return nil, err
	}

	view := &sceneView{}
	widget := cube.New(view)
	if err := widget.SetStyle(cfg.Style()); err != nil {
		rend.Close()
		win.Close()
		return nil, fmt.Errorf("invalid cube style: %w", err)
	}
	widget.Transition().Duration = cfg.Animation.Duration
	widget.Transition().FitSelected = cfg.Animation.FitSelected
	widget.Transition().ResetUp = cfg.Animation.ResetUp
	widget.FixedAnimation = cfg.Animation.Fixed

	v := &Viewer{
		cfg:    cfg,
		win:    win,
		rend:   rend,
		widget: widget,
		view:   view,
		hub:    hub,
	}
	widget.Transition().OnAfterStep = func() { v.publish("") }

	v.rebuildGeometry()
	v.resetCamera()
	return v, nil
}

// Close releases the GL resources and the window.
func (v *Viewer) Close() {
	v.dropGeometry()
	v.rend.Close()
	v.win.Close()
}

// Run drives the event and render loop until the window closes.
func (v *Viewer) Run() error {
	logger.Info("viewer running")
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if quit := v.handleEvent(event); quit {
				return nil
			}
		}

		if v.widget.Transition().Animating() {
			v.widget.Transition().Advance(v.widget.Clock())
		}
		if v.widget.Version() != v.version {
			v.rebuildGeometry()
		}

		v.drawFrame()
		v.win.SwapBuffers()

		if !v.cfg.Window.VSync {
			time.Sleep(time.Second / 120)
		}
	}
}

func (v *Viewer) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			v.rend.Resize(int(e.Data1), int(e.Data2))
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			break
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			v.dragging = true
			v.dragDist = 0
			v.lastMouse = [2]int32{e.X, e.Y}
		} else {
			v.dragging = false
			if v.dragDist < clickSlop {
				v.pick(e.X, e.Y)
			}
		}

	case *sdl.MouseMotionEvent:
		if v.dragging {
			dx := e.X - v.lastMouse[0]
			dy := e.Y - v.lastMouse[1]
			v.lastMouse = [2]int32{e.X, e.Y}
			v.dragDist += abs32(float32(dx)) + abs32(float32(dy))
			v.orbit(float32(dx), float32(dy))
		} else {
			v.hover(e.X, e.Y)
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			break
		}
		return v.handleKey(e.Keysym.Sym)
	}
	return false
}

func (v *Viewer) handleKey(sym sdl.Keycode) bool {
	st := v.widget.Style()
	switch sym {
	case sdl.K_ESCAPE, sdl.K_q:
		return true
	case sdl.K_e:
		v.widget.SetDrawEdges(!st.DrawEdges)
	case sdl.K_c:
		v.widget.SetDrawVertices(!st.DrawVertices)
	case sdl.K_a:
		v.widget.SetDrawAxes(!st.DrawAxes)
	case sdl.K_u:
		v.widget.SetYup(!st.Yup)
	case sdl.K_f:
		v.widget.FixedAnimation = !v.widget.FixedAnimation
		logger.Info("fixed animation toggled", zap.Bool("fixed", v.widget.FixedAnimation))
	case sdl.K_r:
		v.widget.ResetStyles()
		v.resetCamera()
	case sdl.K_PLUS, sdl.K_EQUALS:
		v.widget.SetSize(st.Size * 1.25)
	case sdl.K_MINUS:
		v.widget.SetSize(st.Size * 0.8)
	}
	return false
}

// resetCamera places the camera on the default corner view framing the
// whole widget.
func (v *Viewer) resetCamera() {
	v.view.scene = v.widget.Bounds()
	pose := cube.OrientationPose(cube.XPosYNegZPos, v.widget.Style().Yup)
	v.view.pose = cube.FitPose(pose, v.view.scene, 0.01)
	v.publish("")
}

// orbit rotates the camera around the scene center, dx about the vertical
// axis and dy about the camera's right vector.
func (v *Viewer) orbit(dx, dy float32) {
	pose := v.view.pose
	center := v.view.scene.Center()
	dist := pose.Eye.Sub(center).Length()

	vertical := math.Vec3{Z: 1}
	if v.widget.Style().Yup {
		vertical = math.Vec3{Y: 1}
	}
	right := pose.Direction.Cross(pose.Up).Normalize()

	pose.Direction = pose.Direction.Rotate(vertical, -dx*orbitSpeed).
		Rotate(right, -dy*orbitSpeed).Normalize()
	pose.Up = pose.Up.Rotate(vertical, -dx*orbitSpeed).
		Rotate(right, -dy*orbitSpeed).Normalize()
	pose.Eye = center.Sub(pose.Direction.Scale(dist))

	v.view.SetCamera(pose)
	v.view.Invalidate()
	v.publish("")
}

func (v *Viewer) hover(x, y int32) {
	region, ok := v.pickRegion(x, y)
	if ok {
		v.hovered = region.Orientation
		v.hasHovered = true
	} else {
		v.hasHovered = false
	}
}

func (v *Viewer) pick(x, y int32) {
	region, ok := v.pickRegion(x, y)
	if !ok {
		return
	}
	logger.Info("picked",
		zap.String("orientation", region.Orientation.String()),
		zap.String("kind", region.Orientation.Kind().String()),
	)
	v.widget.HandleClick(region)
	v.publish(region.Orientation.String())
}

func (v *Viewer) pickRegion(x, y int32) (cube.Region, bool) {
	w, h := v.rend.Size()
	invVP := v.viewProj().Inverse()
	ray := cube.ScreenToRay(float32(x), float32(y), float32(w), float32(h), invVP)
	return cube.Pick(v.regions, ray, true)
}

func (v *Viewer) viewProj() math.Mat4 {
	w, h := v.rend.Size()
	aspect := float32(w) / float32(h)
	pose := v.view.pose

	halfH := pose.Scale * 0.75
	halfW := halfH * aspect
	depth := v.view.scene.Diagonal() * 4
	proj := math.Ortho(-halfW, halfW, -halfH, halfH, -depth, depth)
	view := math.LookAt(pose.Eye, pose.Eye.Add(pose.Direction), pose.Up)
	return proj.Mul(view)
}

func (v *Viewer) drawFrame() {
	v.rend.Begin()
	v.rend.SetLight(v.view.pose.Direction)

	mvp := v.viewProj()
	for _, pm := range v.parts {
		color := partColor(pm.part.Kind)
		if v.hasHovered && pm.part.Orientation == v.hovered {
			color = render.ColorHighlight
		}
		v.rend.Draw(pm.gpu, mvp, color)
	}
	for i, gpu := range v.axes {
		v.rend.Draw(gpu, mvp, axisColor(i))
	}
	v.view.dirty = false
}

func partColor(kind cube.Part) render.Color {
	switch kind {
	case cube.PartSide:
		return render.ColorSide
	case cube.PartEdge:
		return render.ColorEdge
	default:
		return render.ColorCorner
	}
}

func axisColor(i int) render.Color {
	switch i {
	case 0:
		return render.ColorAxisX
	case 1:
		return render.ColorAxisY
	case 2:
		return render.ColorAxisZ
	default:
		return render.ColorMarker
	}
}

// rebuildGeometry re-uploads meshes and regions after a style change.
func (v *Viewer) rebuildGeometry() {
	v.dropGeometry()

	for _, part := range v.widget.Parts() {
		gpu, err := render.Upload(part.Mesh)
		if err != nil {
			logger.Warn("skipping part upload",
				zap.String("orientation", part.Orientation.String()),
				zap.Error(err),
			)
			continue
		}
		v.parts = append(v.parts, partMesh{part: part, gpu: gpu})
	}
	for _, mesh := range v.widget.AxesParts() {
		gpu, err := render.Upload(mesh)
		if err != nil {
			logger.Warn("skipping axes upload", zap.Error(err))
			continue
		}
		v.axes = append(v.axes, gpu)
	}

	v.regions = v.widget.Regions()
	v.view.scene = v.widget.Bounds()
	v.version = v.widget.Version()
	logger.Debug("geometry rebuilt",
		zap.Int("parts", len(v.parts)),
		zap.Int("regions", len(v.regions)),
		zap.Uint64("version", v.version),
	)
}

func (v *Viewer) dropGeometry() {
	for _, pm := range v.parts {
		pm.gpu.Delete()
	}
	for _, gpu := range v.axes {
		gpu.Delete()
	}
	v.parts = nil
	v.axes = nil
	v.hasHovered = false
}

func (v *Viewer) publish(orientation string) {
	if v.hub == nil {
		return
	}
	v.hub.Publish(v.view.pose, orientation)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
