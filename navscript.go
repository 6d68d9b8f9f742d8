package marquee

import (
	"encoding/json"
	"fmt"
)

// navStep represents a single action in a navigation script.
type navStep struct {
	Action   string  `json:"action"`
	Index    int     `json:"index,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Duration float32 `json:"duration,omitempty"`
}

// navScript is the top-level JSON structure for a navigation script.
type navScript struct {
	Steps []navStep `json:"steps"`
}

// NavRunner sequences navigation calls on a Loop across frames, for demos
// and automated tests. Call Step once per frame before Loop.Update.
type NavRunner struct {
	steps     []navStep
	cursor    int
	waitCount int
	done      bool
}

// LoadNavScript parses a JSON navigation script:
//
//	{"steps": [
//		{"action": "next", "duration": 0.5},
//		{"action": "wait", "frames": 30},
//		{"action": "to", "index": 3},
//		{"action": "previous"},
//		{"action": "play"}
//	]}
func LoadNavScript(jsonData []byte) (*NavRunner, error) {
	var script navScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse nav script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse nav script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "next", "previous", "to", "wait", "play", "pause":
		default:
			return nil, fmt.Errorf("parse nav script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &NavRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *NavRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *NavRunner) Step(l *Loop) {
	if r.done {
		return
	}
	// Wait for the previous navigation to land before advancing.
	if l.Tweening() {
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

	vars := TweenVars{Duration: st.Duration}
	switch st.Action {
	case "next":
		l.Next(vars)
	case "previous":
		l.Previous(vars)
	case "to":
		l.ToIndex(st.Index, vars)
	case "play":
		l.Play()
	case "pause":
		l.Pause()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !l.Tweening() {
		r.done = true
	}
}
