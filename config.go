package tactile

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Defaults for Config tunables.
const (
	DefaultThreshold        = 50.0
	DefaultLongPressDelay   = 500 * time.Millisecond
	DefaultPinchSensitivity = 0.1
	DefaultJitterThreshold  = 10.0
	DefaultDoubleTapWindow  = 300 * time.Millisecond
)

// ErrInvalidConfig is wrapped by ParseConfig and LoadConfig validation errors.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Recognizer. Start from DefaultConfig: zero numeric
// tunables are replaced by their defaults, but a zero EnableHaptics turns
// haptics off.
type Config struct {
	Threshold        float64       // minimum swipe distance in pixels
	LongPressDelay   time.Duration // hold time before a long press fires
	PinchSensitivity float64       // minimum scale change between pinch reports
	EnableHaptics    bool
	JitterThreshold  float64       // movement below this is still stationary
	DoubleTapWindow  time.Duration // max gap between tap starts for a double-tap

	// Callbacks. Any may be nil.
	OnSwipeLeft  func(SwipeContext)
	OnSwipeRight func(SwipeContext)
	OnSwipeUp    func(SwipeContext)
	OnSwipeDown  func(SwipeContext)
	OnTap        func(TapContext)
	OnDoubleTap  func(TapContext)
	OnLongPress  func(LongPressContext)
	OnPinch      func(PinchContext)

	// Vibrator receives haptic patterns. Nil disables vibration even when
	// EnableHaptics is set.
	Vibrator Vibrator
	// Sink receives a GestureEvent for every dispatched gesture.
	Sink EventSink
	// Logger defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultConfig returns the default tunables with haptics enabled through
// EbitenVibrator.
func DefaultConfig() Config {
	return Config{
		Threshold:        DefaultThreshold,
		LongPressDelay:   DefaultLongPressDelay,
		PinchSensitivity: DefaultPinchSensitivity,
		EnableHaptics:    true,
		JitterThreshold:  DefaultJitterThreshold,
		DoubleTapWindow:  DefaultDoubleTapWindow,
		Vibrator:         EbitenVibrator{},
	}
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.LongPressDelay <= 0 {
		c.LongPressDelay = DefaultLongPressDelay
	}
	if c.PinchSensitivity <= 0 {
		c.PinchSensitivity = DefaultPinchSensitivity
	}
	if c.JitterThreshold <= 0 {
		c.JitterThreshold = DefaultJitterThreshold
	}
	if c.DoubleTapWindow <= 0 {
		c.DoubleTapWindow = DefaultDoubleTapWindow
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// fileConfig is the YAML shape of the tunables. Durations are milliseconds.
type fileConfig struct {
	Threshold         float64 `yaml:"threshold"`
	LongPressDelayMs  int     `yaml:"longPressDelayMs"`
	PinchSensitivity  float64 `yaml:"pinchSensitivity"`
	EnableHaptics     bool    `yaml:"enableHaptics"`
	JitterThreshold   float64 `yaml:"jitterThreshold"`
	DoubleTapWindowMs int     `yaml:"doubleTapWindowMs"`
}

func toFile(c Config) fileConfig {
	return fileConfig{
		Threshold:         c.Threshold,
		LongPressDelayMs:  int(c.LongPressDelay / time.Millisecond),
		PinchSensitivity:  c.PinchSensitivity,
		EnableHaptics:     c.EnableHaptics,
		JitterThreshold:   c.JitterThreshold,
		DoubleTapWindowMs: int(c.DoubleTapWindow / time.Millisecond),
	}
}

func (f fileConfig) validate() error {
	switch {
	case f.Threshold <= 0:
		return fmt.Errorf("%w: threshold must be positive, got %v", ErrInvalidConfig, f.Threshold)
	case f.LongPressDelayMs <= 0:
		return fmt.Errorf("%w: longPressDelayMs must be positive, got %d", ErrInvalidConfig, f.LongPressDelayMs)
	case f.PinchSensitivity <= 0 || f.PinchSensitivity >= 1:
		return fmt.Errorf("%w: pinchSensitivity must be in (0, 1), got %v", ErrInvalidConfig, f.PinchSensitivity)
	case f.JitterThreshold <= 0:
		return fmt.Errorf("%w: jitterThreshold must be positive, got %v", ErrInvalidConfig, f.JitterThreshold)
	case f.JitterThreshold >= f.Threshold:
		return fmt.Errorf("%w: jitterThreshold %v must be below threshold %v", ErrInvalidConfig, f.JitterThreshold, f.Threshold)
	case f.DoubleTapWindowMs <= 0:
		return fmt.Errorf("%w: doubleTapWindowMs must be positive, got %d", ErrInvalidConfig, f.DoubleTapWindowMs)
	}
	return nil
}

// ParseConfig decodes YAML tunables over DefaultConfig. Keys that are absent
// keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	f := toFile(cfg)
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := f.validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Threshold = f.Threshold
	cfg.LongPressDelay = time.Duration(f.LongPressDelayMs) * time.Millisecond
	cfg.PinchSensitivity = f.PinchSensitivity
	cfg.EnableHaptics = f.EnableHaptics
	cfg.JitterThreshold = f.JitterThreshold
	cfg.DoubleTapWindow = time.Duration(f.DoubleTapWindowMs) * time.Millisecond
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// MarshalConfig encodes the tunables of c as YAML.
func MarshalConfig(c Config) ([]byte, error) {
	out, err := yaml.Marshal(toFile(c.withDefaults()))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}
