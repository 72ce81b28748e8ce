// Package confetti is a small CPU particle system for the completion
// celebration: a burst of colored flakes that fall under gravity and fade out.
package confetti

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Range is a min/max range sampled uniformly.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Config controls how flakes are spawned and behave. Positions and speeds are
// in screen pixels; times are in seconds.
type Config struct {
	// MaxParticles is the pool size. New flakes are silently dropped when full.
	MaxParticles int
	// Burst is the number of flakes spawned at once when Play is called.
	Burst int
	// EmitRate is the number of flakes spawned per second while emitting.
	EmitRate float64
	// Duration is how long the emitter keeps spawning after Play.
	Duration float64
	// OriginX and OriginY are the spawn point.
	OriginX, OriginY float64
	// SpreadX scatters spawn points horizontally around the origin.
	SpreadX float64
	// Lifetime is the range of flake lifetimes.
	Lifetime Range
	// Speed is the range of initial speeds.
	Speed Range
	// Angle is the range of emission angles in radians (0 = right, pi/2 = down).
	Angle Range
	// Size is the range of flake edge lengths.
	Size Range
	// Spin is the range of angular velocities in radians per second.
	Spin Range
	// GravityY is the downward acceleration.
	GravityY float64
	// Colors is the palette flakes pick from.
	Colors []color.RGBA
}

// DefaultConfig returns a burst that rains down from the top of a screen of
// the given width over duration seconds.
func DefaultConfig(width float64, duration float64) Config {
	return Config{
		MaxParticles: 400,
		Burst:        80,
		EmitRate:     120,
		Duration:     duration,
		OriginX:      width / 2,
		OriginY:      -10,
		SpreadX:      width / 2,
		Lifetime:     Range{Min: 1.5, Max: 3},
		Speed:        Range{Min: 40, Max: 160},
		Angle:        Range{Min: math.Pi / 4, Max: 3 * math.Pi / 4},
		Size:         Range{Min: 4, Max: 9},
		Spin:         Range{Min: -6, Max: 6},
		GravityY:     220,
		Colors: []color.RGBA{
			{R: 0xf4, G: 0x43, B: 0x36, A: 0xff},
			{R: 0xff, G: 0xc1, B: 0x07, A: 0xff},
			{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
			{R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
			{R: 0x9c, G: 0x27, B: 0xb0, A: 0xff},
		},
	}
}

// Flake is the public view of one live particle.
type Flake struct {
	X, Y     float64
	Size     float64
	Rotation float64
	Alpha    float64
	Color    color.RGBA
}

type flake struct {
	x, y    float64
	vx, vy  float64
	size    float64
	rot     float64
	spin    float64
	life    float64 // remaining lifetime
	maxLife float64
	color   color.RGBA
}

// Emitter manages a fixed pool of flakes. It is driven by Update from the
// game loop and is not safe for concurrent use.
type Emitter struct {
	config    Config
	flakes    []flake
	alive     int
	emitAccum float64
	remaining float64
	rng       *rand.Rand
}

// NewEmitter creates an emitter with a preallocated pool. A nil rng uses a
// randomly seeded source.
func NewEmitter(cfg Config, rng *rand.Rand) *Emitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Emitter{
		config: cfg,
		flakes: make([]flake, max),
		rng:    rng,
	}
}

// Play spawns the initial burst and keeps emitting for Config.Duration.
// Calling Play again restarts the emission window.
func (e *Emitter) Play() {
	for i := 0; i < e.config.Burst; i++ {
		e.spawn()
	}
	e.remaining = e.config.Duration
	e.emitAccum = 0
}

// Active reports whether the emitter is still spawning flakes.
func (e *Emitter) Active() bool {
	return e.remaining > 0
}

// Alive returns the number of live flakes.
func (e *Emitter) Alive() int {
	return e.alive
}

// Reset stops emitting and kills every flake.
func (e *Emitter) Reset() {
	e.alive = 0
	e.remaining = 0
	e.emitAccum = 0
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *Config {
	return &e.config
}

// Update advances the simulation by dt seconds.
func (e *Emitter) Update(dt float64) {
	g := e.config.GravityY * dt

	i := 0
	for i < e.alive {
		f := &e.flakes[i]
		f.life -= dt
		if f.life <= 0 {
			e.alive--
			e.flakes[i] = e.flakes[e.alive]
			continue
		}
		f.vy += g
		f.x += f.vx * dt
		f.y += f.vy * dt
		f.rot += f.spin * dt
		i++
	}

	if e.remaining <= 0 || e.config.EmitRate <= 0 {
		return
	}
	step := math.Min(dt, e.remaining)
	e.remaining -= dt
	e.emitAccum += e.config.EmitRate * step
	for e.emitAccum >= 1 {
		e.emitAccum--
		e.spawn()
	}
}

// Each calls fn for every live flake.
func (e *Emitter) Each(fn func(Flake)) {
	for i := 0; i < e.alive; i++ {
		f := &e.flakes[i]
		fn(Flake{
			X:        f.x,
			Y:        f.y,
			Size:     f.size,
			Rotation: f.rot,
			Alpha:    f.life / f.maxLife,
			Color:    f.color,
		})
	}
}

// spawn initializes the flake at slot e.alive. It is a no-op when the pool
// is full.
func (e *Emitter) spawn() {
	if e.alive >= len(e.flakes) {
		return
	}
	cfg := &e.config
	f := &e.flakes[e.alive]

	angle := cfg.Angle.sample(e.rng)
	speed := cfg.Speed.sample(e.rng)
	f.vx = math.Cos(angle) * speed
	f.vy = math.Sin(angle) * speed
	f.x = cfg.OriginX
	if cfg.SpreadX > 0 {
		f.x += (e.rng.Float64()*2 - 1) * cfg.SpreadX
	}
	f.y = cfg.OriginY
	f.size = cfg.Size.sample(e.rng)
	f.rot = 0
	f.spin = cfg.Spin.sample(e.rng)

	f.life = cfg.Lifetime.sample(e.rng)
	if f.life <= 0 {
		f.life = 1
	}
	f.maxLife = f.life

	f.color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if n := len(cfg.Colors); n > 0 {
		f.color = cfg.Colors[e.rng.IntN(n)]
	}
	e.alive++
}
