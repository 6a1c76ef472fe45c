package history

import (
	"testing"
	"time"

	"github.com/phanxgames/tactile/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Millisecond)
}

func TestDebounced_FirstSubmitIsImmediate(t *testing.T) {
	d := NewDebounced(New("", 0), nil, 0)
	assert.Equal(t, DefaultDebounce, d.Window())

	d.Submit("h", ms(0))
	assert.False(t, d.Pending())
	assert.Equal(t, []string{"", "h"}, d.History().States())
}

func TestDebounced_BurstCoalesces(t *testing.T) {
	d := NewDebounced(New("", 0), nil, time.Second)
	d.Submit("h", ms(0))
	d.Submit("he", ms(100))
	d.Submit("hel", ms(200))
	d.Submit("hell", ms(300))
	d.Submit("hello", ms(400))

	require.True(t, d.Pending())
	assert.Equal(t, "hello", d.Current())
	assert.Equal(t, 2, d.History().Len())

	// The flush is rescheduled from the last submit.
	d.Advance(ms(1399))
	assert.True(t, d.Pending())
	d.Advance(ms(1400))
	assert.False(t, d.Pending())
	assert.Equal(t, []string{"", "h", "hello"}, d.History().States())
}

func TestDebounced_PauseIsImmediate(t *testing.T) {
	d := NewDebounced(New("", 0), nil, time.Second)
	d.Submit("a", ms(0))
	d.Submit("ab", ms(1001))
	assert.False(t, d.Pending())
	assert.Equal(t, []string{"", "a", "ab"}, d.History().States())
}

func TestDebounced_ImmediatePushDropsPending(t *testing.T) {
	d := NewDebounced(New("", 0), nil, time.Second)
	d.Submit("a", ms(0))
	d.Submit("ab", ms(900))
	require.True(t, d.Pending())

	d.Submit("abc", ms(1001))
	assert.False(t, d.Pending())
	assert.Equal(t, []string{"", "a", "abc"}, d.History().States())

	d.Advance(ms(5000))
	assert.Equal(t, 3, d.History().Len(), "dropped flush never runs")
}

func TestDebounced_LateFlushRunsBeforeSubmit(t *testing.T) {
	q := &timer.Queue{}
	d := NewDebounced(New("", 0), q, time.Second)
	d.Submit("a", ms(0))
	d.Submit("ab", ms(500))
	require.True(t, d.Pending())

	// Advance not called, so the flush due at 1500 runs inside this submit.
	// abc lands inside the window that flush opened.
	d.Submit("abc", ms(2000))
	assert.Equal(t, []string{"", "a", "ab"}, d.History().States())
	assert.True(t, d.Pending())
	assert.Equal(t, 1, q.Pending(), "only one flush is ever scheduled")
}

func TestDebounced_LateFlushKeepsDeadline(t *testing.T) {
	d := NewDebounced(New("", 0), nil, time.Second)
	d.Submit("a", ms(0))
	d.Submit("ab", ms(500))

	// The flush was due at 1500, so 3000 is past its window.
	d.Submit("abc", ms(3000))
	assert.False(t, d.Pending())
	assert.Equal(t, []string{"", "a", "ab", "abc"}, d.History().States())
}

func TestDebounced_UndoFlushesPending(t *testing.T) {
	d := NewDebounced(New("", 0), nil, time.Second)
	d.Submit("a", ms(0))
	d.Submit("ab", ms(100))

	assert.Equal(t, "a", d.Undo(ms(200)))
	assert.False(t, d.Pending())
	assert.Equal(t, "ab", d.Redo(ms(300)))
}

func TestDebounced_SharedQueue(t *testing.T) {
	q := &timer.Queue{}
	d := NewDebounced(New(0, 0), q, 50*time.Millisecond)
	d.Submit(1, ms(0))
	d.Submit(2, ms(10))
	q.Advance(ms(60))
	assert.Equal(t, []int{0, 1, 2}, d.History().States())
	assert.Equal(t, 0, q.Pending())
}
