package gotoclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/face"
	"github.com/ajanata/gotoclock/internal/notify"
	"github.com/ajanata/gotoclock/internal/shape"
)

func newController(t *testing.T, preset string) (*Controller, *face.State) {
	t.Helper()
	cfg, err := config.Preset(preset)
	require.NoError(t, err)
	s, err := face.NewState(cfg)
	require.NoError(t, err)
	return NewController(cfg, s), s
}

func TestButtonSet(t *testing.T) {
	var b ButtonSet
	assert.False(t, b.Pressed(ButtonLeft))
	b.Press(ButtonLeft)
	b.Press(ButtonUp)
	assert.True(t, b.Pressed(ButtonLeft))
	assert.True(t, b.Pressed(ButtonUp))
	assert.False(t, b.Pressed(ButtonDown))
	b.Clear()
	assert.False(t, b.Pressed(ButtonLeft))
}

func TestPollDispatch(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		button Button
		want   Action
		check  func(t *testing.T, s *face.State)
	}{
		{"cancel", "blobs", ButtonCancel, ActionMinimise, func(t *testing.T, s *face.State) {
			assert.True(t, s.Filled)
		}},
		{"confirm", "blobs", ButtonConfirm, ActionToggleFill, func(t *testing.T, s *face.State) {
			assert.False(t, s.Filled)
		}},
		{"up", "shapes", ButtonUp, ActionCycleShape, func(t *testing.T, s *face.State) {
			assert.Equal(t, shape.KindPentagon, s.Kind())
		}},
		{"down", "blobs", ButtonDown, ActionToggleSpectrum, func(t *testing.T, s *face.State) {
			assert.False(t, s.FullSpectrum)
		}},
		{"left resizes", "shapes", ButtonLeft, ActionResize, func(t *testing.T, s *face.State) {
			assert.Equal(t, 12.0, s.MarkerSize)
			assert.Zero(t, s.RotationOffset)
		}},
		{"left rotates", "spin", ButtonLeft, ActionRotate, func(t *testing.T, s *face.State) {
			assert.Equal(t, 30.0, s.RotationOffset)
			assert.True(t, s.Notifiers.Enabled(notify.Rotation))
		}},
		{"right", "blobs", ButtonRight, ActionInvertSpin, func(t *testing.T, s *face.State) {
			assert.Equal(t, -1.0, s.ColourIncrement)
			assert.False(t, s.Clockwise)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newController(t, tt.preset)
			var b ButtonSet
			b.Press(tt.button)

			assert.Equal(t, tt.want, c.Poll(&b, 0))
			assert.Zero(t, b)
			assert.True(t, s.Notifiers.Enabled(notify.Pulse))
			tt.check(t, s)
		})
	}
}

func TestPollPriority(t *testing.T) {
	c, s := newController(t, "blobs")
	var b ButtonSet
	b.Press(ButtonRight)
	b.Press(ButtonDown)
	b.Press(ButtonConfirm)

	assert.Equal(t, ActionToggleFill, c.Poll(&b, 0))
	assert.Zero(t, b, "every flag clears after one dispatch")
	assert.False(t, s.Filled)
	assert.True(t, s.FullSpectrum)
	assert.True(t, s.Clockwise)

	assert.Equal(t, ActionNone, c.Poll(&b, 0))
}

func TestPollNothing(t *testing.T) {
	c, s := newController(t, "blobs")
	var b ButtonSet
	assert.Equal(t, ActionNone, c.Poll(&b, 0))
	assert.Equal(t, ActionNone, c.Poll(nil, 0))
	assert.False(t, s.Notifiers.Enabled(notify.Pulse))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "cancel", ButtonCancel.String())
	assert.Equal(t, "right", ButtonRight.String())
	assert.Equal(t, "INVALID", Button(42).String())
	assert.Equal(t, "toggle spectrum", ActionToggleSpectrum.String())
	assert.Equal(t, "INVALID", Action(42).String())
	assert.Equal(t, "busy", SensorStatusBusy.String())
}
