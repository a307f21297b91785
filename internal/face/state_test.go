package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/notify"
	"github.com/ajanata/gotoclock/internal/shape"
)

func newState(t *testing.T, preset string) (*config.Config, *State) {
	t.Helper()
	cfg, err := config.Preset(preset)
	require.NoError(t, err)
	s, err := NewState(cfg)
	require.NoError(t, err)
	return cfg, s
}

func TestNewStateCopiesConfig(t *testing.T) {
	cfg, s := newState(t, "blobs")
	assert.Equal(t, cfg.MarkerSize, s.MarkerSize)
	assert.Equal(t, cfg.FilledMarkers, s.Filled)
	assert.Equal(t, cfg.FullSpectrum, s.FullSpectrum)
	assert.Equal(t, cfg.LEDBrightness, s.LEDBrightness)
	assert.Equal(t, cfg.ColourIncrement, s.ColourIncrement)
	assert.True(t, s.Clockwise)
	assert.Equal(t, []string{notify.Pulse, notify.Rotation}, s.Notifiers.Names())

	s.ToggleFill()
	s.ToggleSpectrum()
	assert.True(t, cfg.FilledMarkers, "toggles must not touch the config")
	assert.True(t, cfg.FullSpectrum)
}

func TestNewStateRejectsUnknownShape(t *testing.T) {
	cfg := config.Default()
	cfg.MarkerShapes = []string{"blob"}
	_, err := NewState(cfg)
	assert.ErrorIs(t, err, shape.ErrUnknownKind)
}

func TestToggles(t *testing.T) {
	_, s := newState(t, "blobs")
	s.ToggleFill()
	assert.False(t, s.Filled)
	s.ToggleFill()
	assert.True(t, s.Filled)

	s.ToggleSpectrum()
	assert.False(t, s.FullSpectrum)
}

func TestCycleShapeWraps(t *testing.T) {
	_, s := newState(t, "shapes")
	var seen []shape.Kind
	for i := 0; i < 7; i++ {
		seen = append(seen, s.Kind())
		s.CycleShape()
	}
	assert.Equal(t, []shape.Kind{
		shape.KindHexagon, shape.KindPentagon, shape.KindPentagram, shape.KindSquare,
		shape.KindTriangle, shape.KindCircle, shape.KindHexagon,
	}, seen)

	_, single := newState(t, "blobs")
	single.CycleShape()
	assert.Equal(t, shape.KindCircle, single.Kind())
}

func TestResizeWrapsToMinimum(t *testing.T) {
	_, s := newState(t, "blobs")
	var sizes []float64
	for i := 0; i < 6; i++ {
		s.Resize()
		sizes = append(sizes, s.MarkerSize)
	}
	assert.Equal(t, []float64{12, 14, 16, 18, 20, 4}, sizes)
}

func TestRotate(t *testing.T) {
	_, s := newState(t, "spin")
	s.Rotate(100)
	assert.Equal(t, 30.0, s.RotationOffset)
	assert.True(t, s.Notifiers.Enabled(notify.Rotation))
	assert.False(t, s.Notifiers.Enabled(notify.Pulse))

	s.InvertSpin()
	s.Rotate(200)
	s.Rotate(300)
	assert.Equal(t, 330.0, s.RotationOffset)

	s.Notifiers.Update(300 + 1000)
	assert.False(t, s.Notifiers.Enabled(notify.Rotation))
}

func TestInvertSpin(t *testing.T) {
	_, s := newState(t, "blobs")
	s.InvertSpin()
	assert.Equal(t, -1.0, s.ColourIncrement)
	assert.False(t, s.Clockwise)

	s.AdvanceColour()
	assert.Equal(t, 359.0, s.ColourOffset)
}

func TestAdvanceColourWraps(t *testing.T) {
	_, s := newState(t, "blobs")
	s.ColourOffset = 359.5
	s.AdvanceColour()
	assert.InDelta(t, 0.5, s.ColourOffset, 1e-9)

	s.ColourIncrement = 725
	s.AdvanceColour()
	assert.InDelta(t, 5.5, s.ColourOffset, 1e-9)
}

func TestOffsetCombinesTilt(t *testing.T) {
	_, s := newState(t, "tilt")
	s.RotationOffset = 350
	s.TiltOffset = 20
	assert.InDelta(t, 10, s.Offset(), 1e-9)
}

func TestPulse(t *testing.T) {
	_, s := newState(t, "blobs")
	s.Pulse(10)
	assert.True(t, s.Notifiers.Enabled(notify.Pulse))
	s.Notifiers.Update(509)
	assert.True(t, s.Notifiers.Enabled(notify.Pulse))
	s.Notifiers.Update(510)
	assert.False(t, s.Notifiers.Enabled(notify.Pulse))
}
