package reassemble

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Hold   int     `json:"hold,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted input session. It is a PointerSource: use it
// as Options.Source and every Poll feeds the next step into its
// ScriptedSource once the previous step's events have drained.
//
// Script actions: "press", "move", "release", "click" (x, y); "drag"
// (fromX, fromY, toX, toY, frames, hold); "rotate" (dx, frames);
// "wait" (frames); "screenshot" (label).
type TestRunner struct {
	// OnScreenshot receives the label of each "screenshot" step. Optional.
	OnScreenshot func(label string)

	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	src       *ScriptedSource
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "rotate", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, src: NewScriptedSource()}, nil
}

// Done reports whether all steps have been executed and their events consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Poll implements PointerSource.
func (r *TestRunner) Poll(h PointerHandler) {
	r.step()
	r.src.Poll(h)
}

// step queues the next script step once pending injections have drained.
func (r *TestRunner) step() {
	if r.done {
		return
	}
	if r.src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		r.src.InjectPress(st.X, st.Y)
	case "move":
		r.src.InjectMove(st.X, st.Y)
	case "release":
		r.src.InjectRelease(st.X, st.Y)
	case "click":
		r.src.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames, st.Hold)
	case "rotate":
		r.src.InjectTwoFingerSwipe(st.DX, st.Frames)
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
