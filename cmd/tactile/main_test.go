package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runCLI executes the root command with a no-op logger and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWith(&options{logger: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const swipeScript = `
steps:
  - action: down
    points: [{x: 0, y: 0}]
  - action: move
    after: 50
    points: [{x: -80, y: 0}]
  - action: up
    after: 20
  - action: tap
    after: 500
    x: 10
    y: 10
  - action: tap
    after: 100
    x: 10
    y: 10
`

func TestReplay_Text(t *testing.T) {
	path := writeFile(t, "swipe.yaml", swipeScript)
	out, err := runCLI(t, "replay", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "swipe left delta=(-80,0) distance=80.0")
	assert.Contains(t, lines[1], "tap")
	assert.Contains(t, lines[2], "double-tap")
}

func TestReplay_JSON(t *testing.T) {
	path := writeFile(t, "swipe.yaml", swipeScript)
	out, err := runCLI(t, "replay", "--json", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	var g jsonGesture
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &g))
	assert.Equal(t, "swipe", g.Kind)
	assert.Equal(t, "left", g.Direction)
	assert.Equal(t, int64(70), g.AtMs)
	assert.Equal(t, 80.0, g.Distance)
}

func TestReplay_ConfigChangesThreshold(t *testing.T) {
	path := writeFile(t, "swipe.yaml", swipeScript)
	cfg := writeFile(t, "tactile.yaml", "threshold: 100\n")
	out, err := runCLI(t, "replay", "--config", cfg, path)
	require.NoError(t, err)
	assert.NotContains(t, out, "swipe")
}

func TestReplay_Errors(t *testing.T) {
	_, err := runCLI(t, "replay", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read script")

	bad := writeFile(t, "bad.yaml", "steps:\n  - action: fling\n")
	_, err = runCLI(t, "replay", bad)
	assert.ErrorContains(t, err, "unknown action")

	good := writeFile(t, "swipe.yaml", swipeScript)
	badCfg := writeFile(t, "cfg.yaml", "pinchSensitivity: 4\n")
	_, err = runCLI(t, "replay", "--config", badCfg, good)
	assert.ErrorContains(t, err, "invalid config")
}

func TestConfigCmd(t *testing.T) {
	out, err := runCLI(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "threshold: 50")
	assert.Contains(t, out, "longPressDelayMs: 500")

	cfg := writeFile(t, "tactile.yaml", "doubleTapWindowMs: 250\n")
	out, err = runCLI(t, "config", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "doubleTapWindowMs: 250")
}
