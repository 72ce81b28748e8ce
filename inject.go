package reassemble

type pointerPhase uint8

const (
	phaseNone pointerPhase = iota
	phaseBegan
	phaseMoved
	phaseEnded
)

// syntheticEvent is one tick of injected input.
type syntheticEvent struct {
	pos     Vec2
	phase   pointerPhase
	touch   bool // deliver Touches(touches, delta) before the press phase
	touches int
	delta   Vec2
}

// ScriptedSource is a PointerSource fed by injected events, one per tick. It
// behaves like a real pointer: while a press is held and the queue is empty,
// every Poll repeats PressMoved at the last position.
type ScriptedSource struct {
	queue []syntheticEvent
	down  bool
	last  Vec2
}

// NewScriptedSource creates an empty scripted source.
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{}
}

// Pending returns the number of queued events.
func (s *ScriptedSource) Pending() int {
	return len(s.queue)
}

// InjectPress queues a press at the given screen position.
func (s *ScriptedSource) InjectPress(x, y float64) {
	s.queue = append(s.queue, syntheticEvent{pos: Vec2{x, y}, phase: phaseBegan})
}

// InjectMove queues a held-pointer move to the given screen position.
func (s *ScriptedSource) InjectMove(x, y float64) {
	s.queue = append(s.queue, syntheticEvent{pos: Vec2{x, y}, phase: phaseMoved})
}

// InjectRelease queues a release at the given screen position.
func (s *ScriptedSource) InjectRelease(x, y float64) {
	s.queue = append(s.queue, syntheticEvent{pos: Vec2{x, y}, phase: phaseEnded})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks.
func (s *ScriptedSource) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), moves linearly
// interpolated over frames-2 intermediate ticks, hold ticks at the end
// position and a release there. Minimum frames is 2 (press + release).
func (s *ScriptedSource) InjectDrag(fromX, fromY, toX, toY float64, frames, hold int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	for i := 0; i < hold; i++ {
		s.InjectMove(toX, toY)
	}
	s.InjectRelease(toX, toY)
}

// InjectTouches queues one tick with count active touches, the first of
// which moved by (dx, dy).
func (s *ScriptedSource) InjectTouches(count int, dx, dy float64) {
	s.queue = append(s.queue, syntheticEvent{touch: true, touches: count, delta: Vec2{dx, dy}})
}

// InjectTwoFingerSwipe queues frames ticks of a two-finger gesture whose first
// touch moves dx pixels per tick, then one tick with the touches lifted.
func (s *ScriptedSource) InjectTwoFingerSwipe(dx float64, frames int) {
	for i := 0; i < frames; i++ {
		s.InjectTouches(2, dx, 0)
	}
	s.InjectTouches(0, 0, 0)
}

// Poll implements PointerSource.
func (s *ScriptedSource) Poll(h PointerHandler) {
	if len(s.queue) == 0 {
		if s.down {
			h.PressMoved(s.last)
		}
		return
	}
	ev := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]

	if ev.touch {
		h.Touches(ev.touches, ev.delta)
		if s.down {
			h.PressMoved(s.last)
		}
		return
	}

	switch ev.phase {
	case phaseBegan:
		s.down = true
		s.last = ev.pos
		h.PressBegan(ev.pos)
	case phaseMoved:
		s.down = true
		s.last = ev.pos
		h.PressMoved(ev.pos)
	case phaseEnded:
		s.down = false
		s.last = ev.pos
		h.PressEnded(ev.pos)
	}
}
