package reassemble

import "go.uber.org/zap"

// InputState is the state of the InputController.
type InputState uint8

const (
	StateIdle     InputState = iota // no part selected, fewer than two touches
	StateDragging                   // a part is selected and follows the pointer
	StateRotating                   // two touches turn the rig; no selection
)

// String returns the state name.
func (s InputState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// PointerHandler is the unified input contract. Every physical source drives
// the same four calls, so the state machine is written once.
//
// PressMoved is delivered every tick while the press is held, whether or not
// the pointer moved; smoothing needs a steady cadence to converge.
// Touches is only called by multi-touch sources, once per tick before any
// press call, with the active touch count and the first touch's delta.
type PointerHandler interface {
	PressBegan(pos Vec2)
	PressMoved(pos Vec2)
	PressEnded(pos Vec2)
	Touches(count int, primaryDelta Vec2)
}

// PointerSource feeds one tick of input into a PointerHandler. The source is
// chosen at composition time (mouse, touch, scripted).
type PointerSource interface {
	Poll(h PointerHandler)
}

// View is the camera capability the controller needs: screen-to-world rays
// and the view direction that orients the drag plane.
type View interface {
	ScreenPointToRay(screen Vec2) Ray
	Forward() Vec3
}

// Rotator turns the whole rig about the world up axis.
type Rotator interface {
	RotateYaw(deltaDegrees float64)
}

// InputController turns pointer and touch input into part selection, smoothed
// dragging, release-time snapping and two-finger rig rotation.
//
// Only one part can be selected at a time: a press that begins while a part
// is selected is ignored. While two or more touches are down no press is
// handled, so a rotate gesture never changes the selection.
type InputController struct {
	parts    *PartRegistry
	view     View
	caster   RayCaster
	snap     *SnapEvaluator
	progress *ProgressTracker
	rig      Rotator
	log      *zap.Logger
	emit     func(PuzzleEvent)

	// Smoothing is the per-tick blend factor toward the drag target.
	Smoothing float64
	// RotateFactor converts horizontal touch delta (pixels) to yaw degrees.
	RotateFactor float64

	state      InputState
	selected   int
	dragPlane  Plane
	dragOffset Vec3
	touchCount int
}

// ControllerConfig bundles the collaborators of an InputController.
type ControllerConfig struct {
	Parts    *PartRegistry
	View     View
	Caster   RayCaster
	Snap     *SnapEvaluator
	Progress *ProgressTracker
	Rig      Rotator
	Log      *zap.Logger
	// Emit receives puzzle events. Optional.
	Emit func(PuzzleEvent)
}

// NewInputController creates a controller in the Idle state with the default
// smoothing (0.2) and rotate factor (0.2).
func NewInputController(cfg ControllerConfig) *InputController {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &InputController{
		parts:        cfg.Parts,
		view:         cfg.View,
		caster:       cfg.Caster,
		snap:         cfg.Snap,
		progress:     cfg.Progress,
		rig:          cfg.Rig,
		log:          log,
		emit:         cfg.Emit,
		Smoothing:    defaultDragSmoothing,
		RotateFactor: defaultRotateFactor,
		selected:     NotFound,
	}
}

// State returns the current state.
func (c *InputController) State() InputState {
	return c.state
}

// Selected returns the selected part index, or NotFound.
func (c *InputController) Selected() int {
	return c.selected
}

// DragOffset returns the offset between the grabbed part and the grab point.
// It is only meaningful while dragging.
func (c *InputController) DragOffset() Vec3 {
	return c.dragOffset
}

// PressBegan selects the part under pos, if any, and sets up the drag plane.
func (c *InputController) PressBegan(pos Vec2) {
	if c.gesturing() || c.selected != NotFound {
		return
	}
	ray := c.view.ScreenPointToRay(pos)
	h, ok := c.caster.CastRay(ray)
	if !ok {
		return
	}
	i := c.parts.IndexOf(h)
	if i == NotFound {
		return
	}

	world := h.WorldPosition()
	c.dragPlane = NewPlane(c.view.Forward().Mul(-1), world)
	c.dragOffset = Vec3{}
	if enter, ok := c.dragPlane.Raycast(ray); ok {
		c.dragOffset = world.Sub(ray.Point(enter))
	}
	c.selected = i
	c.state = StateDragging

	c.log.Debug("part selected", zap.String("part", c.parts.Name(i)))
	c.fire(PuzzleEvent{Type: EventPartSelected, Part: i, Name: c.parts.Name(i)})
}

// PressMoved pulls the selected part toward the pointer on the drag plane.
func (c *InputController) PressMoved(pos Vec2) {
	if c.gesturing() || c.selected == NotFound {
		return
	}
	ray := c.view.ScreenPointToRay(pos)
	enter, ok := c.dragPlane.Raycast(ray)
	if !ok {
		return
	}
	target := ray.Point(enter).Add(c.dragOffset)
	h := c.parts.Handle(c.selected)
	h.SetWorldPosition(lerpVec3(h.WorldPosition(), target, c.Smoothing))
}

// PressEnded evaluates the snap for the selected part, clears the selection
// and recomputes progress.
func (c *InputController) PressEnded(pos Vec2) {
	if c.gesturing() || c.selected == NotFound {
		return
	}
	i := c.selected
	snapped := c.snap.Evaluate(i)
	c.selected = NotFound
	c.state = StateIdle

	p := c.progress.Recompute()
	typ := EventPartReleased
	if snapped {
		typ = EventPartAssembled
	}
	c.fire(PuzzleEvent{
		Type: typ, Part: i, Name: c.parts.Name(i),
		Assembled: p.Assembled, Total: p.Total,
	})
}

// Touches handles the multi-touch count. Exactly two touches rotate the rig
// by -delta.X * RotateFactor degrees for this tick. Rotating lasts until fewer
// than two touches remain.
func (c *InputController) Touches(count int, primaryDelta Vec2) {
	c.touchCount = count
	if count < 2 {
		if c.state == StateRotating {
			c.state = StateIdle
		}
		return
	}
	if count != 2 {
		return
	}
	if c.state == StateIdle {
		c.state = StateRotating
	}
	yaw := -primaryDelta.X * c.RotateFactor
	if yaw == 0 {
		return
	}
	if c.rig != nil {
		c.rig.RotateYaw(yaw)
	}
	c.fire(PuzzleEvent{Type: EventRigRotated, Part: NotFound, YawDelta: yaw})
}

// gesturing reports whether a multi-touch gesture suppresses press handling.
func (c *InputController) gesturing() bool {
	return c.touchCount >= 2
}

func (c *InputController) fire(ev PuzzleEvent) {
	if c.emit != nil {
		c.emit(ev)
	}
}
