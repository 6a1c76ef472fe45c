package tactile

import (
	"strings"
	"testing"
)

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "steps: [", "parse script"},
		{"no steps", "steps: []", "no steps"},
		{"unknown action", "steps:\n  - action: fling", "unknown action"},
		{"down without points", "steps:\n  - action: down", "needs points"},
		{"negative timing", "steps:\n  - action: wait\n    after: -5", "negative timing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadScript_JSON(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "down", "points": [{"x": 0, "y": 0}]},
		{"action": "move", "after": 50, "points": [{"x": -80, "y": 0}]},
		{"action": "up", "after": 20}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	var log gestureLog
	r := newTestRecognizer(&log, nil, nil)
	end := s.Run(r, epoch)
	if !equalNames(log.names, []string{"left"}) {
		t.Errorf("expected [left], got %v", log.names)
	}
	if end != at(70) {
		t.Errorf("end = %v, want +70ms", end.Sub(epoch))
	}
}

const mixedScript = `
steps:
  - action: tap
    x: 10
    y: 10
  - action: tap
    after: 150
    x: 10
    y: 10
  - action: swipe
    after: 500
    from: {x: 100, y: 300}
    to: {x: 100, y: 100}
  - action: hold
    after: 500
    x: 50
    y: 50
  - action: pinch
    after: 500
    center: {x: 200, y: 200}
    fromDist: 100
    toDist: 250
    steps: 3
  - action: down
    after: 500
    points: [{x: 0, y: 0}]
  - action: wait
    after: 600
  - action: up
`

func TestScript_Mixed(t *testing.T) {
	s, err := LoadScript([]byte(mixedScript))
	if err != nil {
		t.Fatal(err)
	}
	var log gestureLog
	r := newTestRecognizer(&log, nil, nil)
	s.Run(r, epoch)

	// Pinch 100 -> 250 in 4 moves: 1.375, 1.75, 2.125, 2.5, each > 0.1 apart.
	want := []string{"tap", "double", "up", "long", "pinch", "pinch", "pinch", "pinch", "long"}
	if !equalNames(log.names, want) {
		t.Errorf("got %v\nwant %v", log.names, want)
	}
	if r.State().Touching {
		t.Error("script should end released")
	}
}
