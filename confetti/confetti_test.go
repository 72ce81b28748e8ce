package confetti

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestEmitter(cfg Config) *Emitter {
	return NewEmitter(cfg, rand.New(rand.NewPCG(1, 2)))
}

func TestPlaySpawnsBurst(t *testing.T) {
	e := newTestEmitter(Config{MaxParticles: 50, Burst: 20, Lifetime: Range{Min: 1, Max: 1}})
	if e.Alive() != 0 {
		t.Fatalf("Alive = %d before Play", e.Alive())
	}
	e.Play()
	if e.Alive() != 20 {
		t.Errorf("Alive = %d, want 20", e.Alive())
	}
}

func TestBurstCappedByPool(t *testing.T) {
	e := newTestEmitter(Config{MaxParticles: 8, Burst: 20, Lifetime: Range{Min: 1, Max: 1}})
	e.Play()
	if e.Alive() != 8 {
		t.Errorf("Alive = %d, want 8", e.Alive())
	}
}

func TestDefaultPoolSize(t *testing.T) {
	e := newTestEmitter(Config{Burst: 500})
	e.Play()
	if e.Alive() != 128 {
		t.Errorf("Alive = %d, want 128", e.Alive())
	}
}

func TestFlakesExpire(t *testing.T) {
	e := newTestEmitter(Config{MaxParticles: 10, Burst: 10, Lifetime: Range{Min: 0.5, Max: 0.5}})
	e.Play()

	e.Update(0.25)
	if e.Alive() != 10 {
		t.Fatalf("Alive = %d at half life, want 10", e.Alive())
	}
	e.Update(0.25)
	if e.Alive() != 0 {
		t.Errorf("Alive = %d after lifetime, want 0", e.Alive())
	}
}

func TestEmissionWindow(t *testing.T) {
	e := newTestEmitter(Config{
		MaxParticles: 100,
		EmitRate:     10,
		Duration:     1,
		Lifetime:     Range{Min: 10, Max: 10},
	})
	e.Play()
	if !e.Active() {
		t.Fatal("expected active after Play")
	}

	for i := 0; i < 4; i++ {
		e.Update(0.25)
	}
	if e.Active() {
		t.Error("still active after Duration")
	}
	if e.Alive() != 10 {
		t.Errorf("Alive = %d, want 10 spawned over 1s at 10/s", e.Alive())
	}

	e.Update(1)
	if e.Alive() != 10 {
		t.Errorf("Alive = %d, spawned after the window closed", e.Alive())
	}
}

func TestGravityPullsDown(t *testing.T) {
	e := newTestEmitter(Config{
		MaxParticles: 1,
		Burst:        1,
		Lifetime:     Range{Min: 5, Max: 5},
		GravityY:     100,
	})
	e.Play()
	e.Update(0.5)
	e.Update(0.5)

	var y float64
	e.Each(func(f Flake) { y = f.Y })
	// v = 50 then 100; y = 25 + 50.
	if math.Abs(y-75) > 1e-9 {
		t.Errorf("Y = %v, want 75", y)
	}
}

func TestEachReportsFade(t *testing.T) {
	cfg := DefaultConfig(800, 2)
	cfg.Burst = 5
	cfg.EmitRate = 0
	cfg.Lifetime = Range{Min: 2, Max: 2}
	e := newTestEmitter(cfg)
	e.Play()
	e.Update(0.5)

	n := 0
	e.Each(func(f Flake) {
		n++
		if math.Abs(f.Alpha-0.75) > 1e-9 {
			t.Errorf("Alpha = %v, want 0.75", f.Alpha)
		}
		if f.X < 0 || f.X > 800 {
			t.Errorf("X = %v outside the screen spread", f.X)
		}
		if f.Color.A != 0xff {
			t.Errorf("Color = %v, want an opaque palette color", f.Color)
		}
	})
	if n != 5 {
		t.Errorf("Each visited %d flakes, want 5", n)
	}
}

func TestReset(t *testing.T) {
	e := newTestEmitter(DefaultConfig(640, 2))
	e.Play()
	e.Reset()
	if e.Alive() != 0 || e.Active() {
		t.Errorf("Alive = %d Active = %v after Reset", e.Alive(), e.Active())
	}
}
