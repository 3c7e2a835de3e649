package cube

// DefaultDuration is the animation duration of a camera transition in
// seconds.
const DefaultDuration = 0.5

// fitMargin is the relative margin applied when framing content after a
// reorientation.
const fitMargin = 0.01

// session is one in-flight camera animation. It owns the only camera
// reference held for the transition; clearing the session drops it.
type session struct {
	view      View
	start     Pose
	end       Pose
	startTime float64
	duration  float64
}

// Transition animates the camera from its current pose toward a picked
// orientation. At most one session is active at a time; starting a new one
// recaptures the live camera as the new start pose, so chained requests
// blend smoothly instead of snapping back.
//
// The transition never spawns timers: the caller drives it by invoking
// Advance with its own clock, either once per frame (stepped) or in a
// tight loop until it returns false (synchronous).
type Transition struct {
	view View
	sess *session

	// Duration is the animation length in seconds.
	Duration float64
	// FitSelected frames the current selection instead of the whole scene
	// when a selection exists.
	FitSelected bool
	// ResetUp snaps to the canonical up vector instead of preserving roll
	// continuity with the previous up.
	ResetUp bool

	// OnFinished fires exactly once when a session reaches its end pose.
	OnFinished func()
	// OnAfterStep fires after every intermediate camera update.
	OnAfterStep func()
}

// NewTransition returns a transition controller attached to the given
// view. A nil view is allowed; Start is then a no-op until SetView.
func NewTransition(view View) *Transition {
	return &Transition{
		view:        view,
		Duration:    DefaultDuration,
		FitSelected: true,
	}
}

// SetView attaches the live view. The in-flight session, if any, keeps the
// view it started with.
func (tr *Transition) SetView(view View) {
	tr.view = view
}

// Animating reports whether a session is in flight.
func (tr *Transition) Animating() bool {
	return tr.sess != nil
}

// Start begins a transition toward the target orientation at the given
// time. The live camera is captured as the start pose; the end pose
// applies the orientation's canonical view, the up vector closest to the
// previous one (unless ResetUp), and a content fit of the selection or
// scene bounds. Without an attached view this is a silent no-op.
//
// A start while already animating discards the previous session and
// captures the current mid-transition pose as the new start.
//
// Returns true when a session is running afterwards; an end pose equal to
// the start completes immediately and returns false.
func (tr *Transition) Start(target Orientation, yup bool, now float64) bool {
	if tr.view == nil {
		return false
	}

	start := tr.view.Camera()

	canonical := OrientationPose(target, yup)
	end := start
	end.Direction = canonical.Direction
	end.Up = canonical.Up
	if !tr.ResetUp && start.Direction.Angle(end.Direction) > angularEps {
		end.Up = BestUp(start.Up, canonical.Up, end.Direction)
	}

	box := tr.fitBox()
	end = FitPose(end, box, fitMargin)

	if start.Equal(end) {
		// Zero-length animation: land on the exact end pose at once.
		tr.sess = nil
		tr.view.SetCamera(end)
		tr.view.Invalidate()
		if tr.OnFinished != nil {
			tr.OnFinished()
		}
		return false
	}

	tr.sess = &session{
		view:      tr.view,
		start:     start,
		end:       end,
		startTime: now,
		duration:  tr.Duration,
	}
	return true
}

// fitBox picks the volume to frame: the selection when enabled and
// present, otherwise the whole scene.
func (tr *Transition) fitBox() Box {
	if tr.FitSelected {
		if box, ok := tr.view.SelectionBounds(); ok && !box.Void() {
			return box
		}
	}
	return tr.view.SceneBounds()
}

// Advance moves the animation to the given time and updates the live
// camera. When the elapsed fraction reaches 1 the camera is clamped to the
// end pose, OnFinished fires once, the session is cleared and false is
// returned; otherwise the interpolated pose is applied and true is
// returned.
func (tr *Transition) Advance(now float64) bool {
	s := tr.sess
	if s == nil {
		return false
	}

	fraction := 1.0
	if s.duration > 0 {
		fraction = (now - s.startTime) / s.duration
	}

	if fraction >= 1 {
		tr.sess = nil // drops the session's view reference
		s.view.SetCamera(s.end)
		s.view.Invalidate()
		if tr.OnFinished != nil {
			tr.OnFinished()
		}
		return false
	}
	if fraction < 0 {
		fraction = 0
	}

	s.view.SetCamera(lerpPose(s.start, s.end, float32(fraction)))
	s.view.Invalidate()
	if tr.OnAfterStep != nil {
		tr.OnAfterStep()
	}
	return true
}

// Finish drives the animation synchronously to completion, blocking the
// caller until the camera reaches the end pose.
func (tr *Transition) Finish(clock func() float64) {
	for tr.Advance(clock()) {
	}
}
