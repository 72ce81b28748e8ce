package reassemble

import "testing"

func TestSnapEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		offset       Vec3
		wasAssembled bool
		wantSnap     bool
	}{
		{"at home", Vec3{}, false, true},
		{"inside", Vec3{0.2, 0, 0}, false, true},
		{"diagonal inside", Vec3{0.1, 0.1, 0.1}, false, true},
		{"just outside", Vec3{0.3001, 0, 0}, false, false},
		{"far", Vec3{2, 1, 0}, false, false},
		{"far downgrades", Vec3{0, 0, 1}, true, false},
		{"inside stays assembled", Vec3{0, 0.05, 0}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInputFixture(t)
			snap := NewSnapEvaluator(f.parts, defaultSnapDistance, nil)
			orig := f.parts.Original(2)
			f.parts.SetAssembled(2, tt.wasAssembled)
			f.parts.SetCurrent(2, orig.Add(tt.offset))

			if got := snap.Evaluate(2); got != tt.wantSnap {
				t.Fatalf("Evaluate = %v, want %v", got, tt.wantSnap)
			}
			if f.parts.Assembled(2) != tt.wantSnap {
				t.Errorf("Assembled = %v, want %v", f.parts.Assembled(2), tt.wantSnap)
			}
			if tt.wantSnap && f.parts.Current(2) != orig {
				t.Errorf("Current = %v, want exactly %v", f.parts.Current(2), orig)
			}
			if !tt.wantSnap && f.parts.Current(2) != orig.Add(tt.offset) {
				t.Errorf("released part moved to %v", f.parts.Current(2))
			}
		})
	}
}

func TestSnapDistanceIsStrict(t *testing.T) {
	f := newInputFixture(t)
	snap := NewSnapEvaluator(f.parts, 0.5, nil)
	f.parts.SetCurrent(0, f.parts.Original(0).Add(Vec3{0.5, 0, 0}))

	if snap.Evaluate(0) {
		t.Error("a part exactly at the snap distance must not snap")
	}
	if snap.Distance() != 0.5 {
		t.Errorf("Distance = %v, want 0.5", snap.Distance())
	}
}
