package gesture

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Result  string  `json:"result,omitempty"`
	Enabled bool    `json:"enabled,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected touches, consumer acks and handler
// registration across frames, for scripted replay of gesture scenarios.
// Attach to a Handler via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Handler via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "tap", "doubletap", "drag", "wait", "handlers":
		return nil
	case "ack":
		_, err := ParseAckResult(st.Result)
		return err
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// ParseAckResult returns the AckResult named by s, as printed by
// AckResult.String.
func ParseAckResult(s string) (AckResult, error) {
	for _, r := range []AckResult{AckConsumed, AckNotConsumed, AckNoConsumerExists, AckIgnored} {
		if r.String() == s {
			return r, nil
		}
	}
	return AckUnknown, fmt.Errorf("unknown ack result %q", s)
}

// SetTestRunner attaches a TestRunner to the handler. The runner's step
// method is called from Handler.Update before injected input is consumed.
func (h *Handler) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Handler.Update.
func (r *TestRunner) step(h *Handler) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 || h.injectHold > 0 {
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
		h.InjectPress(st.X, st.Y)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "tap":
		h.InjectTap(st.X, st.Y)
	case "doubletap":
		h.InjectDoubleTap(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "ack":
		result, _ := ParseAckResult(st.Result)
		h.OnAckReceived(result)
	case "handlers":
		h.SetHasRemoteHandlers(st.Enabled)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
