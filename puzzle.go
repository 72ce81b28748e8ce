package reassemble

import (
	"fmt"

	"go.uber.org/zap"
)

// Options configures a Puzzle. Provider, View, Caster and Source are required.
type Options struct {
	// Provider resolves the part handles named by Config.Puzzle.Parts.
	Provider SceneObjectProvider
	View     View
	Caster   RayCaster
	Source   PointerSource
	// Rig receives two-finger yaw. Defaults to Provider when it is a Rotator.
	Rig Rotator
	// Effects receives presentation effects. Defaults to NopEffects.
	Effects EffectSink
	// Offsets overrides the offset table from Config.
	Offsets *OffsetTable
	// Config supplies the tunables. Defaults to DefaultConfig().
	Config *Config
	Log    *zap.Logger
}

// Puzzle is one reassembly session: it owns the part set and wires the
// explode sequencer, input controller, snap evaluator, progress tracker and
// completion notifier together. Drive it by calling Update once per tick.
type Puzzle struct {
	parts     *PartRegistry
	sched     *Scheduler
	sequencer *ExplodeSequencer
	input     *InputController
	snap      *SnapEvaluator
	progress  *ProgressTracker
	notifier  *CompletionNotifier
	source    PointerSource
	effects   EffectSink
	intro     IntroTiming
	store     EventStore
	log       *zap.Logger

	started bool
	elapsed float64
}

// NewPuzzle resolves the part set and builds the session. An incomplete part
// set is a configuration error; the session cannot run without it.
func NewPuzzle(opts Options) (*Puzzle, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new puzzle: %w", err)
	}
	if opts.Provider == nil || opts.View == nil || opts.Caster == nil || opts.Source == nil {
		return nil, fmt.Errorf("new puzzle: provider, view, caster and source are required")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	effects := opts.Effects
	if effects == nil {
		effects = NopEffects{}
	}
	offsets := opts.Offsets
	if offsets == nil {
		var err error
		if offsets, err = cfg.Offsets(); err != nil {
			return nil, fmt.Errorf("new puzzle: %w", err)
		}
	}

	handles, err := BuildPartSet(opts.Provider, cfg.Puzzle.Parts)
	if err != nil {
		return nil, fmt.Errorf("new puzzle: %w", err)
	}
	parts, err := NewPartRegistry(handles, offsets)
	if err != nil {
		return nil, fmt.Errorf("new puzzle: %w", err)
	}

	rig := opts.Rig
	if rig == nil {
		rig, _ = opts.Provider.(Rotator)
	}

	p := &Puzzle{
		parts:   parts,
		sched:   NewScheduler(),
		source:  opts.Source,
		effects: effects,
		intro:   cfg.IntroTiming(),
		log:     log,
	}
	p.sequencer = NewExplodeSequencer(parts, p.sched, cfg.Puzzle.ExplodeDelay, cfg.Puzzle.MoveSpeed, log)
	p.snap = NewSnapEvaluator(parts, cfg.Puzzle.SnapDistance, log)
	p.progress = NewProgressTracker(parts, effects)
	p.notifier = NewCompletionNotifier(effects, p.sched, cfg.Effects.ConfettiDuration, log)
	p.input = NewInputController(ControllerConfig{
		Parts:    parts,
		View:     opts.View,
		Caster:   opts.Caster,
		Snap:     p.snap,
		Progress: p.progress,
		Rig:      rig,
		Log:      log,
		Emit:     p.emit,
	})
	p.input.Smoothing = cfg.Puzzle.DragSmoothing
	p.input.RotateFactor = cfg.Puzzle.RotateFactor

	log.Info("puzzle ready", zap.Int("parts", parts.Len()))
	return p, nil
}

// SetEventStore sets the optional event bridge.
func (p *Puzzle) SetEventStore(store EventStore) {
	p.store = store
}

// Start shows the mission intro, publishes the initial progress and schedules
// the explode. It is called by the first Update if not called explicitly.
func (p *Puzzle) Start() {
	if p.started {
		return
	}
	p.started = true
	startIntro(p.effects, p.sched, p.intro)
	p.progress.Recompute()
	p.sequencer.Start()
}

// Update runs one tick: input, then timed tasks, then the completion check.
// dt is the elapsed time in seconds since the previous tick.
func (p *Puzzle) Update(dt float64) {
	if !p.started {
		p.Start()
	}
	p.elapsed += dt
	p.source.Poll(p.input)
	p.sched.Update(dt)

	prog := p.progress.Current()
	if p.notifier.Observe(prog) {
		p.emit(PuzzleEvent{
			Type: EventCompleted, Part: NotFound,
			Assembled: prog.Assembled, Total: prog.Total,
		})
	}
}

func (p *Puzzle) emit(ev PuzzleEvent) {
	if p.store != nil {
		p.store.EmitEvent(ev)
	}
}

// Parts returns the part registry.
func (p *Puzzle) Parts() *PartRegistry { return p.parts }

// Input returns the input controller.
func (p *Puzzle) Input() *InputController { return p.input }

// Sequencer returns the explode sequencer.
func (p *Puzzle) Sequencer() *ExplodeSequencer { return p.sequencer }

// Scheduler returns the task scheduler. Extra timed behaviors may be added to
// it; they advance with the puzzle's ticks.
func (p *Puzzle) Scheduler() *Scheduler { return p.sched }

// Notifier returns the completion notifier.
func (p *Puzzle) Notifier() *CompletionNotifier { return p.notifier }

// Progress returns the current progress, derived from the live part flags.
func (p *Puzzle) Progress() Progress { return p.progress.Current() }

// Completed reports whether the completion edge has fired.
func (p *Puzzle) Completed() bool { return p.notifier.Fired() }

// Elapsed returns the session time in seconds.
func (p *Puzzle) Elapsed() float64 { return p.elapsed }
