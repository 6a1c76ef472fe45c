package tactile

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action   string  `yaml:"action"`
	After    int     `yaml:"after"`    // ms since the previous step ended
	Duration int     `yaml:"duration"` // ms the action spans
	Steps    int     `yaml:"steps"`    // intermediate moves for swipe and pinch
	Points   []Vec2  `yaml:"points"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	From     Vec2    `yaml:"from"`
	To       Vec2    `yaml:"to"`
	Center   Vec2    `yaml:"center"`
	FromDist float64 `yaml:"fromDist"`
	ToDist   float64 `yaml:"toDist"`
}

// Script is a timed sequence of contact actions that drives a Recognizer
// without a display. Scripts are YAML; JSON works too since it parses as
// YAML.
//
// Actions: down, move (points), up, wait (after), tap (x, y, duration),
// hold (x, y, duration), swipe (from, to, duration, steps), and pinch
// (center, fromDist, toDist, duration, steps).
type Script struct {
	steps []scriptStep
}

var scriptActions = map[string]bool{
	"down": true, "move": true, "up": true, "wait": true,
	"tap": true, "hold": true, "swipe": true, "pinch": true,
}

// LoadScript parses a gesture script.
func LoadScript(data []byte) (*Script, error) {
	var doc struct {
		Steps []scriptStep `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range doc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if (st.Action == "down" || st.Action == "move") && len(st.Points) == 0 {
			return nil, fmt.Errorf("parse script: step %d: %s needs points", i, st.Action)
		}
		if st.After < 0 || st.Duration < 0 {
			return nil, fmt.Errorf("parse script: step %d: negative timing", i)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

func msDur(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// Run plays the script into r starting at start, then advances r past the
// last step so trailing timers fire. It returns the script's end time.
func (s *Script) Run(r *Recognizer, start time.Time) time.Time {
	now := start
	for _, st := range s.steps {
		now = now.Add(msDur(st.After))
		switch st.Action {
		case "down":
			r.ContactStart(st.Points, now)
		case "move":
			r.ContactMove(st.Points, now)
		case "up":
			r.ContactEnd(now)
		case "wait":
			r.Advance(now)
		case "tap":
			p := Vec2{st.X, st.Y}
			r.ContactStart([]Vec2{p}, now)
			now = now.Add(msDur(orDefault(st.Duration, 50)))
			r.ContactEnd(now)
		case "hold":
			p := Vec2{st.X, st.Y}
			hold := msDur(st.Duration)
			if hold <= 0 {
				hold = r.cfg.LongPressDelay + 100*time.Millisecond
			}
			r.ContactStart([]Vec2{p}, now)
			now = now.Add(hold)
			r.ContactEnd(now)
		case "swipe":
			now = s.moveSeries(r, now, st, func(t float64) []Vec2 {
				return []Vec2{lerp(st.From, st.To, t)}
			})
		case "pinch":
			now = s.moveSeries(r, now, st, func(t float64) []Vec2 {
				half := (st.FromDist + (st.ToDist-st.FromDist)*t) / 2
				return []Vec2{
					{st.Center.X - half, st.Center.Y},
					{st.Center.X + half, st.Center.Y},
				}
			})
		}
	}
	r.Advance(now)
	return now
}

// moveSeries presses at at(0), moves through steps intermediate positions
// to at(1) over the step duration, and releases.
func (s *Script) moveSeries(r *Recognizer, now time.Time, st scriptStep, at func(t float64) []Vec2) time.Time {
	steps := orDefault(st.Steps, 5)
	total := msDur(orDefault(st.Duration, 150))
	tick := total / time.Duration(steps+1)

	r.ContactStart(at(0), now)
	for i := 1; i <= steps+1; i++ {
		now = now.Add(tick)
		r.ContactMove(at(float64(i)/float64(steps+1)), now)
	}
	r.ContactEnd(now)
	return now
}
