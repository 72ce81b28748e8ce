package reassemble

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSource reads the left mouse button and cursor from ebiten. It never
// reports touches, so the rig cannot be rotated with it.
type MouseSource struct{}

// Poll implements PointerSource. Call it from ebiten's Update.
func (MouseSource) Poll(h PointerHandler) {
	x, y := ebiten.CursorPosition()
	pos := Vec2{float64(x), float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.PressBegan(pos)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		h.PressEnded(pos)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		h.PressMoved(pos)
	}
}

// TouchSource reads ebiten touches. The first touch to go down drives the
// press calls; two or more simultaneous touches are reported through Touches
// and suppress press handling while they last.
type TouchSource struct {
	ids   []ebiten.TouchID
	just  []ebiten.TouchID
	track touchTracker
	last  Vec2
}

// NewTouchSource creates a touch source.
func NewTouchSource() *TouchSource {
	return &TouchSource{}
}

// Poll implements PointerSource. Call it from ebiten's Update.
func (s *TouchSource) Poll(h PointerHandler) {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	s.just = inpututil.AppendJustPressedTouchIDs(s.just[:0])
	count := len(s.ids)

	var delta Vec2
	if count > 0 {
		x, y := ebiten.TouchPosition(s.ids[0])
		px, py := inpututil.TouchPositionInPreviousTick(s.ids[0])
		delta = Vec2{float64(x - px), float64(y - py)}
	}
	h.Touches(count, delta)

	if s.track.active && slices.Contains(s.ids, s.track.primary) {
		x, y := ebiten.TouchPosition(s.track.primary)
		s.last = Vec2{float64(x), float64(y)}
	}
	switch s.track.next(s.ids, s.just) {
	case touchBegin:
		x, y := ebiten.TouchPosition(s.track.primary)
		s.last = Vec2{float64(x), float64(y)}
		h.PressBegan(s.last)
	case touchMove:
		h.PressMoved(s.last)
	case touchEnd:
		h.PressEnded(s.last)
	}
}

type touchAction int

const (
	touchNone touchAction = iota
	touchBegin
	touchMove
	touchEnd
)

// touchTracker follows the primary touch from tick to tick.
type touchTracker struct {
	primary ebiten.TouchID
	active  bool
	// ending is set when the primary lifted during a multi-touch gesture;
	// the end is delivered once fewer than two touches remain.
	ending bool
}

// next advances one tick. ids are the touches currently down and justPressed
// the ones that went down this tick.
func (t *touchTracker) next(ids, justPressed []ebiten.TouchID) touchAction {
	gesture := len(ids) >= 2
	if t.active && !slices.Contains(ids, t.primary) {
		t.active = false
		t.ending = true
	}
	if t.ending {
		if gesture {
			return touchNone
		}
		t.ending = false
		return touchEnd
	}
	if gesture {
		return touchNone
	}
	if t.active {
		return touchMove
	}
	if len(justPressed) == 0 {
		return touchNone
	}
	t.primary = justPressed[0]
	t.active = true
	return touchBegin
}

// InputKind selects a physical input source.
type InputKind string

const (
	InputAuto  InputKind = "auto"  // touch on mobile platforms, mouse elsewhere
	InputMouse InputKind = "mouse" // left mouse button
	InputTouch InputKind = "touch" // touchscreen with two-finger rotate
)

// NewPointerSource returns the ebiten-backed source for kind.
func NewPointerSource(kind InputKind) (PointerSource, error) {
	switch kind {
	case InputMouse:
		return MouseSource{}, nil
	case InputTouch:
		return NewTouchSource(), nil
	case InputAuto, "":
		if runtime.GOOS == "android" || runtime.GOOS == "ios" {
			return NewTouchSource(), nil
		}
		return MouseSource{}, nil
	default:
		return nil, fmt.Errorf("unknown input source %q", kind)
	}
}
