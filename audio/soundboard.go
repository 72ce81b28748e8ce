// Package audio synthesizes the puzzle's completion and confetti sounds with
// beep and plays them through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Completion fanfare: C5 E5 G5 C6.
var fanfare = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	noteLength   = 140 * time.Millisecond
	finalLength  = 420 * time.Millisecond
	popLength    = 45 * time.Millisecond
	popGap       = 70 * time.Millisecond
	popCount     = 5
	speakerDelay = 100 * time.Millisecond
)

// SoundBoard plays generated clips through a shared mixer. It satisfies the
// puzzle's SoundPlayer collaborator.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	log         *zap.Logger
}

// NewSoundBoard creates a board. volume is in [0, 1]; 0 mutes.
func NewSoundBoard(sampleRate int, volume float64, log *zap.Logger) *SoundBoard {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundBoard{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(sampleRate),
		volume: math.Max(0, math.Min(1, volume)),
		log:    log,
	}
}

// Init opens the speaker and starts streaming the mixer.
func (b *SoundBoard) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(speakerDelay)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Streamer returns the mixer all clips are added to.
func (b *SoundBoard) Streamer() beep.Streamer {
	return b.mixer
}

// Playing returns the number of clips still in the mixer.
func (b *SoundBoard) Playing() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return b.mixer.Len()
}

// PlayCompletion plays the rising completion fanfare.
func (b *SoundBoard) PlayCompletion() {
	notes := make([]beep.Streamer, 0, len(fanfare))
	for i, f := range fanfare {
		d := noteLength
		if i == len(fanfare)-1 {
			d = finalLength
		}
		notes = append(notes, newTone(f, d, waveSine, b.rate))
	}
	b.add("completion", beep.Seq(notes...))
}

// PlayConfetti plays a quick run of noise pops.
func (b *SoundBoard) PlayConfetti() {
	pops := make([]beep.Streamer, 0, popCount*2)
	for i := 0; i < popCount; i++ {
		pops = append(pops, newTone(0, popLength, waveNoise, b.rate))
		pops = append(pops, beep.Silence(b.rate.N(popGap)))
	}
	b.add("confetti", beep.Seq(pops...))
}

func (b *SoundBoard) add(clip string, s beep.Streamer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.volume == 0 {
		return
	}
	s = &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(b.volume)}
	if b.initialized {
		speaker.Lock()
		b.mixer.Add(s)
		speaker.Unlock()
	} else {
		b.mixer.Add(s)
	}
	b.log.Debug("sound queued", zap.String("clip", clip))
}
