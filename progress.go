package reassemble

import "fmt"

// Tier is a status bucket derived from the assembled-part count.
type Tier uint8

const (
	TierBegin       Tier = iota // nothing assembled
	TierGoodStart               // fewer than N/2 assembled
	TierAlmostThere             // at least N/2, fewer than N-1
	TierFinalPart               // exactly N-1 assembled
	TierComplete                // all N assembled
)

var tierNames = [...]string{"begin", "good start", "almost there", "final part", "complete"}

var tierMessages = [...]string{
	"Begin assembling!",
	"Good start! Keep assembling.",
	"Only few parts left!",
	"I can almost feel my circuits coming alive!",
	"Well done, Engineer! You've reassembled our hero. Systems online. Mission success!",
}

// String returns the tier name.
func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", t)
}

// Message returns the status text shown for the tier.
func (t Tier) Message() string {
	if int(t) < len(tierMessages) {
		return tierMessages[t]
	}
	return ""
}

// TierFor returns the tier for assembled parts out of total. The boundaries
// use integer division: with total 9, a count of 4 is already TierAlmostThere.
func TierFor(assembled, total int) Tier {
	switch {
	case assembled >= total:
		return TierComplete
	case assembled == 0:
		return TierBegin
	case assembled < total/2:
		return TierGoodStart
	case assembled < total-1:
		return TierAlmostThere
	default:
		return TierFinalPart
	}
}

// Progress is a snapshot of the puzzle's assembly state.
type Progress struct {
	Assembled int
	Total     int
	Ratio     float64
	Tier      Tier
}

// Score returns "<assembled> / <total>".
func (p Progress) Score() string {
	return fmt.Sprintf("%d / %d", p.Assembled, p.Total)
}

// Complete reports whether every part is assembled. It drives the completion
// banner and the completion edge.
func (p Progress) Complete() bool {
	return p.Ratio >= 1
}

// ProgressTracker derives progress from the registry's live flags and pushes
// it to the effect sink. It holds no counters of its own.
type ProgressTracker struct {
	parts   *PartRegistry
	effects EffectSink
}

// NewProgressTracker creates a tracker. A nil sink discards effects.
func NewProgressTracker(parts *PartRegistry, effects EffectSink) *ProgressTracker {
	if effects == nil {
		effects = NopEffects{}
	}
	return &ProgressTracker{parts: parts, effects: effects}
}

// Current computes progress from the registry without touching the sink.
func (t *ProgressTracker) Current() Progress {
	n := t.parts.Len()
	count := t.parts.AssembledCount()
	return Progress{
		Assembled: count,
		Total:     n,
		Ratio:     float64(count) / float64(n),
		Tier:      TierFor(count, n),
	}
}

// Recompute computes progress and pushes the slider value, status text,
// banner visibility and score text.
func (t *ProgressTracker) Recompute() Progress {
	p := t.Current()
	t.effects.SetProgressValue(p.Ratio)
	t.effects.SetStatusText(p.Tier.Message())
	t.effects.SetCompletionBannerVisible(p.Complete())
	t.effects.SetScoreText("Score: " + p.Score())
	return p
}
