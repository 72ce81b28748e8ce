package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = 8000

func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 256)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("streamer still running after %d samples", limit)
	return total
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(testRate)
	tn := newTone(440, 45*time.Millisecond, waveSine, rate)

	if got, want := drain(t, tn, 10000), rate.N(45*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

func TestToneDecays(t *testing.T) {
	tn := newTone(440, 100*time.Millisecond, waveSine, testRate)
	buf := make([][2]float64, beep.SampleRate(testRate).N(100*time.Millisecond))
	tn.Stream(buf)

	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	head, tail := peak(buf[:len(buf)/4]), peak(buf[3*len(buf)/4:])
	if tail >= head {
		t.Errorf("tail peak %v >= head peak %v", tail, head)
	}
	for _, v := range buf {
		if v[0] != v[1] {
			t.Fatal("channels differ")
		}
	}
}

func TestSoundBoardQueuesClips(t *testing.T) {
	b := NewSoundBoard(testRate, 0.5, nil)

	b.PlayCompletion()
	if b.Playing() != 1 {
		t.Fatalf("Playing = %d, want 1", b.Playing())
	}
	b.PlayConfetti()
	if b.Playing() != 2 {
		t.Fatalf("Playing = %d, want 2", b.Playing())
	}
}

func TestSoundBoardClipsFinish(t *testing.T) {
	b := NewSoundBoard(testRate, 1, nil)
	b.PlayCompletion()

	buf := make([][2]float64, 512)
	for i := 0; i < 100 && b.Playing() > 0; i++ {
		b.Streamer().Stream(buf)
	}
	if b.Playing() != 0 {
		t.Errorf("Playing = %d after streaming the fanfare, want 0", b.Playing())
	}
}

func TestSoundBoardMuted(t *testing.T) {
	b := NewSoundBoard(testRate, 0, nil)
	b.PlayCompletion()
	b.PlayConfetti()
	if b.Playing() != 0 {
		t.Errorf("Playing = %d with volume 0, want 0", b.Playing())
	}
}

func TestSoundBoardClampsVolume(t *testing.T) {
	if b := NewSoundBoard(testRate, 3, nil); b.volume != 1 {
		t.Errorf("volume = %v, want 1", b.volume)
	}
	if b := NewSoundBoard(testRate, -1, nil); b.volume != 0 {
		t.Errorf("volume = %v, want 0", b.volume)
	}
}
