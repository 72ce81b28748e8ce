package reassemble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PositionTween animates a handle's local position from its pose at creation
// time to a target pose. It implements Task: call Update(dt) each tick, or add
// it to a Scheduler. When the tween finishes the handle is set exactly to the
// target, so float32 accumulation in the tween never leaves a residue.
type PositionTween struct {
	handle   Handle
	from, to Vec3
	progress *gween.Tween
	Done     bool
}

// TweenPosition creates a PositionTween moving h to the given local position
// over duration seconds using the easing function.
func TweenPosition(h Handle, to Vec3, duration float32, fn ease.TweenFunc) *PositionTween {
	return &PositionTween{
		handle:   h,
		from:     h.LocalPosition(),
		to:       to,
		progress: gween.New(0, 1, duration, fn),
	}
}

// Update advances the tween by dt seconds and writes the interpolated pose.
func (t *PositionTween) Update(dt float64) bool {
	if t.Done {
		return true
	}
	val, finished := t.progress.Update(float32(dt))
	if finished {
		t.handle.SetLocalPosition(t.to)
		t.Done = true
		return true
	}
	t.handle.SetLocalPosition(lerpVec3(t.from, t.to, float64(val)))
	return false
}

// ValueTween animates a single float64 and hands every value to apply.
type ValueTween struct {
	tween *gween.Tween
	to    float64
	apply func(float64)
	Done  bool
}

// TweenValue creates a ValueTween from one value to another over duration
// seconds. The final call to apply always receives exactly to.
func TweenValue(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) *ValueTween {
	return &ValueTween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		to:    to,
		apply: apply,
	}
}

// Update advances the tween by dt seconds.
func (t *ValueTween) Update(dt float64) bool {
	if t.Done {
		return true
	}
	val, finished := t.tween.Update(float32(dt))
	if finished {
		t.apply(t.to)
		t.Done = true
		return true
	}
	t.apply(float64(val))
	return false
}
