package reassemble

import "testing"

func completeProgress() Progress {
	return Progress{Assembled: 9, Total: 9, Ratio: 1, Tier: TierComplete}
}

func TestCompletionFiresOnce(t *testing.T) {
	sink := &recordingSink{}
	sched := NewScheduler()
	n := NewCompletionNotifier(sink, sched, 2, nil)

	if n.Observe(Progress{Assembled: 8, Total: 9, Ratio: 8.0 / 9}) {
		t.Fatal("fired before completion")
	}
	if !n.Observe(completeProgress()) {
		t.Fatal("expected fire at completion")
	}
	if !n.Fired() {
		t.Error("Fired = false after firing")
	}
	for i := 0; i < 3; i++ {
		if n.Observe(completeProgress()) {
			t.Fatal("fired twice")
		}
	}

	if sink.completionSounds != 1 || sink.confettiEffects != 1 {
		t.Errorf("completion sounds %d confetti %d, want 1 each", sink.completionSounds, sink.confettiEffects)
	}
	if len(sink.arms) != 2 || sink.arms[0] != ArmLeft || sink.arms[1] != ArmRight {
		t.Errorf("arms = %v, want [left right]", sink.arms)
	}
}

func TestCompletionLatchSurvivesRegression(t *testing.T) {
	sink := &recordingSink{}
	n := NewCompletionNotifier(sink, NewScheduler(), 2, nil)

	n.Observe(completeProgress())
	n.Observe(Progress{Assembled: 8, Total: 9, Ratio: 8.0 / 9})
	n.Observe(completeProgress())

	if sink.completionSounds != 1 {
		t.Errorf("completion sounds = %d, want 1", sink.completionSounds)
	}
}

func TestCompletionConfettiSoundDelayed(t *testing.T) {
	sink := &recordingSink{}
	sched := NewScheduler()
	n := NewCompletionNotifier(sink, sched, 2, nil)
	n.Observe(completeProgress())

	sched.Update(1.5)
	if sink.confettiSounds != 0 {
		t.Fatal("confetti sound before the confetti finished")
	}
	sched.Update(0.5)
	if sink.confettiSounds != 1 {
		t.Errorf("confetti sounds = %d, want 1", sink.confettiSounds)
	}
	sched.Update(5)
	if sink.confettiSounds != 1 {
		t.Errorf("confetti sounds = %d, want exactly 1", sink.confettiSounds)
	}
}

func TestCompletionCallbacksRunAfterEffects(t *testing.T) {
	sink := &recordingSink{}
	n := NewCompletionNotifier(sink, nil, 2, nil)
	calls := 0
	n.OnComplete(func() {
		calls++
		if len(sink.arms) != 2 {
			t.Error("callback ran before the arm animations")
		}
	})

	n.Observe(completeProgress())
	n.Observe(completeProgress())

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
