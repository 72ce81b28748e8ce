package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

type waveType int

const (
	waveSine waveType = iota
	waveNoise
)

// tone is a single decaying note (or noise burst for waveNoise).
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     waveType
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, duration: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		// Exponential decay over the note keeps the tail click-free.
		env := math.Exp(-4 * float64(t.position) / float64(t.duration))
		samples[i][0] = val * env
		samples[i][1] = val * env

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
