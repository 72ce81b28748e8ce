package reassemble

import "go.uber.org/zap"

// CompletionNotifier fires the completion effects on the first tick where
// every part is assembled, and never again for the rest of the session.
type CompletionNotifier struct {
	effects          EffectSink
	sched            *Scheduler
	confettiDuration float64
	log              *zap.Logger
	onComplete       []func()

	fired bool
}

// NewCompletionNotifier creates a notifier. The confetti sound is scheduled
// confettiDuration seconds after the confetti effect starts.
func NewCompletionNotifier(effects EffectSink, sched *Scheduler, confettiDuration float64, log *zap.Logger) *CompletionNotifier {
	if effects == nil {
		effects = NopEffects{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CompletionNotifier{
		effects:          effects,
		sched:            sched,
		confettiDuration: confettiDuration,
		log:              log,
	}
}

// OnComplete registers fn to run once at the completion edge, after the
// built-in effects.
func (c *CompletionNotifier) OnComplete(fn func()) {
	c.onComplete = append(c.onComplete, fn)
}

// Fired reports whether the completion edge has happened.
func (c *CompletionNotifier) Fired() bool {
	return c.fired
}

// Observe checks p and fires once when it is complete. It returns true only
// on the tick that fires.
func (c *CompletionNotifier) Observe(p Progress) bool {
	if c.fired || !p.Complete() {
		return false
	}
	c.fired = true
	c.log.Info("puzzle complete", zap.Int("parts", p.Total))

	c.effects.PlayCompletionSound()
	c.effects.PlayConfettiEffect()
	if c.sched != nil {
		c.sched.After(c.confettiDuration, c.effects.PlayConfettiSound)
	}
	c.effects.PlayArmRaiseAnimation(ArmLeft)
	c.effects.PlayArmRaiseAnimation(ArmRight)

	for _, fn := range c.onComplete {
		fn()
	}
	return true
}
