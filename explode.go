package reassemble

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ExplodeSequencer scatters every part to its exploded pose after a startup
// delay. Each part gets its own tween task, so parts finish independently and
// stay draggable while others are still moving.
type ExplodeSequencer struct {
	parts     *PartRegistry
	sched     *Scheduler
	delay     float64
	moveSpeed float64
	log       *zap.Logger

	started  bool
	exploded bool
	tweens   []*PositionTween
}

// NewExplodeSequencer creates a sequencer. moveSpeed is the progress gained per
// second, so each part takes 1/moveSpeed seconds to reach its exploded pose.
func NewExplodeSequencer(parts *PartRegistry, sched *Scheduler, delay, moveSpeed float64, log *zap.Logger) *ExplodeSequencer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExplodeSequencer{
		parts:     parts,
		sched:     sched,
		delay:     delay,
		moveSpeed: moveSpeed,
		log:       log,
	}
}

// Start schedules the explode. Calling Start more than once is a no-op.
func (e *ExplodeSequencer) Start() {
	if e.started {
		return
	}
	e.started = true
	e.sched.After(e.delay, e.explode)
}

// explode launches one tween per part from its current pose.
func (e *ExplodeSequencer) explode() {
	duration := float32(1 / e.moveSpeed)
	e.tweens = make([]*PositionTween, e.parts.Len())
	for i := range e.tweens {
		tw := TweenPosition(e.parts.Handle(i), e.parts.Exploded(i), duration, ease.Linear)
		e.tweens[i] = tw
		e.sched.Add(tw)
	}
	e.exploded = true
	e.log.Info("explode launched",
		zap.Int("parts", e.parts.Len()),
		zap.Float64("duration", float64(duration)))
}

// Exploded reports whether the explode tweens have been launched.
func (e *ExplodeSequencer) Exploded() bool {
	return e.exploded
}

// Done reports whether every part has reached its exploded pose.
func (e *ExplodeSequencer) Done() bool {
	if !e.exploded {
		return false
	}
	for _, tw := range e.tweens {
		if !tw.Done {
			return false
		}
	}
	return true
}
