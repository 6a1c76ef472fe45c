package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/tactile"
)

func newReplayCmd(opts *options) *cobra.Command {
	var (
		asJSON  bool
		haptics bool
	)
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Replay a gesture script and print recognized gestures",
		Long: `Feeds every step of the script into a recognizer and prints one line per
gesture, prefixed with the time since the script started.

Example:
  tactile replay swipe-left.yaml
  tactile replay --json --config tuned.yaml session.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			script, err := tactile.LoadScript(data)
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			start := time.Unix(0, 0).UTC()
			cfg.Logger = opts.logger
			cfg.Vibrator = nil
			if haptics {
				cfg.Vibrator = logVibrator{logger: opts.logger}
			}
			cfg.Sink = &printSink{w: cmd.OutOrStdout(), start: start, json: asJSON}

			opts.logger.Info("replaying script",
				zap.String("path", args[0]),
				zap.Int("steps", script.Len()))
			end := script.Run(tactile.NewRecognizer(cfg), start)
			opts.logger.Info("replay finished", zap.Duration("elapsed", end.Sub(start)))
			return cfg.Sink.(*printSink).err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print gestures as JSON lines")
	cmd.Flags().BoolVar(&haptics, "haptics", false, "log haptic pulses")
	return cmd
}

// logVibrator stands in for a motor and logs every pulse.
type logVibrator struct {
	logger *zap.Logger
}

func (v logVibrator) Vibrate(d time.Duration) {
	v.logger.Info("haptic pulse", zap.Duration("duration", d))
}

type printSink struct {
	w     io.Writer
	start time.Time
	json  bool
	err   error
}

type jsonGesture struct {
	AtMs      int64   `json:"atMs"`
	Kind      string  `json:"kind"`
	Direction string  `json:"direction,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	DeltaX    float64 `json:"deltaX,omitempty"`
	DeltaY    float64 `json:"deltaY,omitempty"`
	Distance  float64 `json:"distance,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
}

func (s *printSink) EmitGesture(e tactile.GestureEvent) {
	if s.err != nil {
		return
	}
	offset := e.Time.Sub(s.start)
	if s.json {
		g := jsonGesture{
			AtMs:     offset.Milliseconds(),
			Kind:     e.Kind.String(),
			X:        e.Position.X,
			Y:        e.Position.Y,
			DeltaX:   e.Delta.X,
			DeltaY:   e.Delta.Y,
			Distance: e.Distance,
			Scale:    e.Scale,
		}
		if e.Direction != tactile.DirectionNone {
			g.Direction = e.Direction.String()
		}
		line, err := json.Marshal(g)
		if err != nil {
			s.err = err
			return
		}
		_, s.err = fmt.Fprintf(s.w, "%s\n", line)
		return
	}

	switch e.Kind {
	case tactile.GestureSwipe:
		_, s.err = fmt.Fprintf(s.w, "%6dms swipe %s delta=(%.0f,%.0f) distance=%.1f\n",
			offset.Milliseconds(), e.Direction, e.Delta.X, e.Delta.Y, e.Distance)
	case tactile.GesturePinch:
		_, s.err = fmt.Fprintf(s.w, "%6dms pinch scale=%.3f center=(%.0f,%.0f)\n",
			offset.Milliseconds(), e.Scale, e.Position.X, e.Position.Y)
	default:
		_, s.err = fmt.Fprintf(s.w, "%6dms %s at=(%.0f,%.0f)\n",
			offset.Milliseconds(), e.Kind, e.Position.X, e.Position.Y)
	}
}
