package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierWindow(t *testing.T) {
	n := New(Pulse, 250)
	assert.False(t, n.EnabledAt(0), "never activated")

	n.Activate(1000)
	assert.True(t, n.Enabled())

	for _, now := range []int64{1000, 1001, 1249} {
		assert.True(t, n.EnabledAt(now), "now %d", now)
	}
	for _, now := range []int64{1250, 1251, 5000, 999} {
		assert.False(t, n.EnabledAt(now), "now %d", now)
	}
}

func TestNotifierUpdateRecomputes(t *testing.T) {
	n := New(Rotation, 100)
	n.Activate(0)
	n.Update(99)
	assert.True(t, n.Enabled())
	n.Update(100)
	assert.False(t, n.Enabled())

	// re-arming restarts the window
	n.Activate(150)
	n.Update(249)
	assert.True(t, n.Enabled())
}

func TestZeroDurationNeverEnabled(t *testing.T) {
	n := New("blip", 0)
	n.Activate(10)
	assert.False(t, n.Enabled())
}

func TestSet(t *testing.T) {
	s := NewSet(New(Pulse, 100), New(Rotation, 500))
	assert.Equal(t, []string{Pulse, Rotation}, s.Names())

	s.Activate(Pulse, 0)
	s.Activate(Rotation, 0)
	s.Activate("missing", 0)
	assert.True(t, s.Enabled(Pulse))
	assert.True(t, s.Enabled(Rotation))
	assert.False(t, s.Enabled("missing"))
	assert.Nil(t, s.Get("missing"))

	s.Update(200)
	assert.False(t, s.Enabled(Pulse))
	assert.True(t, s.Enabled(Rotation))

	s.Update(500)
	assert.False(t, s.Enabled(Rotation))
}
