package reassemble

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTouchTracker(t *testing.T) {
	type tick struct {
		ids, just []ebiten.TouchID
		want      touchAction
	}
	tests := []struct {
		name  string
		ticks []tick
	}{
		{"single touch", []tick{
			{[]ebiten.TouchID{1}, []ebiten.TouchID{1}, touchBegin},
			{[]ebiten.TouchID{1}, nil, touchMove},
			{nil, nil, touchEnd},
			{nil, nil, touchNone},
		}},
		{"second finger suppresses moves", []tick{
			{[]ebiten.TouchID{1}, []ebiten.TouchID{1}, touchBegin},
			{[]ebiten.TouchID{1, 2}, []ebiten.TouchID{2}, touchNone},
			{[]ebiten.TouchID{1}, nil, touchMove},
			{nil, nil, touchEnd},
		}},
		{"primary lifts while two others stay down", []tick{
			{[]ebiten.TouchID{1}, []ebiten.TouchID{1}, touchBegin},
			{[]ebiten.TouchID{1, 2, 3}, []ebiten.TouchID{2, 3}, touchNone},
			{[]ebiten.TouchID{2, 3}, nil, touchNone},
			{[]ebiten.TouchID{3}, nil, touchEnd},
			{[]ebiten.TouchID{3}, nil, touchNone},
			{nil, nil, touchNone},
			{[]ebiten.TouchID{4}, []ebiten.TouchID{4}, touchBegin},
		}},
		{"lift and land on the same tick", []tick{
			{[]ebiten.TouchID{1}, []ebiten.TouchID{1}, touchBegin},
			{[]ebiten.TouchID{2}, []ebiten.TouchID{2}, touchEnd},
			{[]ebiten.TouchID{2}, nil, touchNone},
		}},
		{"two fingers down at once never begin", []tick{
			{[]ebiten.TouchID{1, 2}, []ebiten.TouchID{1, 2}, touchNone},
			{[]ebiten.TouchID{1, 2}, nil, touchNone},
			{nil, nil, touchNone},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr touchTracker
			for i, tk := range tt.ticks {
				if got := tr.next(tk.ids, tk.just); got != tk.want {
					t.Fatalf("tick %d: action = %d, want %d", i, got, tk.want)
				}
			}
		})
	}
}

// An end deferred by a gesture must still clear the selection once the
// gesture is over.
func TestTouchTrackerReleasesSelectionAfterGesture(t *testing.T) {
	f := newInputFixture(t)
	pos := f.screenOfPart(t, 4)
	var tr touchTracker

	ticks := []struct {
		ids, just []ebiten.TouchID
	}{
		{[]ebiten.TouchID{1}, []ebiten.TouchID{1}},
		{[]ebiten.TouchID{1, 2, 3}, []ebiten.TouchID{2, 3}},
		{[]ebiten.TouchID{2, 3}, nil},
		{[]ebiten.TouchID{3}, nil},
	}
	for _, tk := range ticks {
		f.ctrl.Touches(len(tk.ids), Vec2{})
		switch tr.next(tk.ids, tk.just) {
		case touchBegin:
			f.ctrl.PressBegan(pos)
		case touchMove:
			f.ctrl.PressMoved(pos)
		case touchEnd:
			f.ctrl.PressEnded(pos)
		}
	}

	if f.ctrl.Selected() != NotFound {
		t.Errorf("Selected = %d, want none after the primary lifted", f.ctrl.Selected())
	}
	if f.ctrl.State() != StateIdle {
		t.Errorf("State = %v, want idle", f.ctrl.State())
	}
	f.ctrl.PressBegan(f.screenOfPart(t, 2))
	if f.ctrl.Selected() != 2 {
		t.Errorf("Selected = %d, want 2 for a fresh press", f.ctrl.Selected())
	}
}
