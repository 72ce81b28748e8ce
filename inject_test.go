package reassemble

import (
	"fmt"
	"testing"
)

// recordingHandler is a PointerHandler that logs every call.
type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) PressBegan(p Vec2) { h.add("began", p) }
func (h *recordingHandler) PressMoved(p Vec2) { h.add("moved", p) }
func (h *recordingHandler) PressEnded(p Vec2) { h.add("ended", p) }
func (h *recordingHandler) Touches(n int, d Vec2) {
	h.calls = append(h.calls, fmt.Sprintf("touches %d %g", n, d.X))
}

func (h *recordingHandler) add(kind string, p Vec2) {
	h.calls = append(h.calls, fmt.Sprintf("%s %g,%g", kind, p.X, p.Y))
}

func expectCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInjectClick(t *testing.T) {
	s := NewScriptedSource()
	h := &recordingHandler{}

	s.InjectClick(50, 60)
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}

	s.Poll(h)
	expectCalls(t, h.calls, "began 50,60")
	s.Poll(h)
	expectCalls(t, h.calls, "began 50,60", "ended 50,60")
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}

	// Nothing is held, so an empty queue is silent.
	s.Poll(h)
	if len(h.calls) != 2 {
		t.Errorf("idle poll produced %q", h.calls[2:])
	}
}

func TestInjectDrag(t *testing.T) {
	s := NewScriptedSource()
	h := &recordingHandler{}

	// Press, three interpolated moves, release.
	s.InjectDrag(0, 0, 40, 80, 5, 0)
	if s.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", s.Pending())
	}
	for s.Pending() > 0 {
		s.Poll(h)
	}
	expectCalls(t, h.calls,
		"began 0,0", "moved 10,20", "moved 20,40", "moved 30,60", "ended 40,80")
}

func TestInjectDragHold(t *testing.T) {
	s := NewScriptedSource()
	h := &recordingHandler{}

	s.InjectDrag(0, 0, 10, 10, 1, 2) // frames clamps to 2
	for s.Pending() > 0 {
		s.Poll(h)
	}
	expectCalls(t, h.calls, "began 0,0", "moved 10,10", "moved 10,10", "ended 10,10")
}

func TestScriptedSourceRepeatsWhileHeld(t *testing.T) {
	s := NewScriptedSource()
	h := &recordingHandler{}

	s.InjectPress(5, 5)
	s.Poll(h)
	s.Poll(h)
	s.Poll(h)

	expectCalls(t, h.calls, "began 5,5", "moved 5,5", "moved 5,5")
}

func TestInjectTouchesWhileHeld(t *testing.T) {
	s := NewScriptedSource()
	h := &recordingHandler{}

	s.InjectPress(1, 2)
	s.InjectTouches(2, 3, 0)
	s.Poll(h)
	s.Poll(h)

	expectCalls(t, h.calls, "began 1,2", "touches 2 3", "moved 1,2")
}

func TestInjectTwoFingerSwipe(t *testing.T) {
	s := NewScriptedSource()
	h := &recordingHandler{}

	s.InjectTwoFingerSwipe(-4, 3)
	if s.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", s.Pending())
	}
	for s.Pending() > 0 {
		s.Poll(h)
	}
	expectCalls(t, h.calls, "touches 2 -4", "touches 2 -4", "touches 2 -4", "touches 0 0")
}
