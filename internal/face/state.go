// Package face turns the time of day and the display preferences into one frame of the clock.
package face

import (
	"github.com/ajanata/gotoclock/internal/config"
	"github.com/ajanata/gotoclock/internal/hue"
	"github.com/ajanata/gotoclock/internal/notify"
	"github.com/ajanata/gotoclock/internal/shape"
)

// State holds the preferences the user can change while the clock runs. It starts from a config
// and is never written back to it.
type State struct {
	// RotationOffset turns the whole face, in clock degrees.
	RotationOffset float64
	// TiltOffset is added to RotationOffset; it follows the accelerometer when tilt is enabled.
	TiltOffset float64
	// ColourOffset is always in [0, 360).
	ColourOffset    float64
	ColourIncrement float64
	ShapeIndex      int
	MarkerSize      float64
	Filled          bool
	FullSpectrum    bool
	Clockwise       bool
	LEDBrightness   float64
	Notifiers       *notify.Set

	kinds        []shape.Kind
	sizeMin      float64
	sizeMax      float64
	sizeStep     float64
	rotationStep float64
}

func NewState(cfg *config.Config) (*State, error) {
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		kinds = []shape.Kind{shape.KindCircle}
	}
	return &State{
		ColourIncrement: cfg.ColourIncrement,
		MarkerSize:      cfg.MarkerSize,
		Filled:          cfg.FilledMarkers,
		FullSpectrum:    cfg.FullSpectrum,
		Clockwise:       true,
		LEDBrightness:   cfg.LEDBrightness,
		Notifiers: notify.NewSet(
			notify.New(notify.Pulse, cfg.Notifiers.PulseMs),
			notify.New(notify.Rotation, cfg.Notifiers.RotationMs),
		),
		kinds:        kinds,
		sizeMin:      cfg.MarkerSizeMin,
		sizeMax:      cfg.MarkerSizeMax,
		sizeStep:     cfg.MarkerSizeStep,
		rotationStep: cfg.RotationStep,
	}, nil
}

// Kind is the active marker shape.
func (s *State) Kind() shape.Kind {
	return s.kinds[s.ShapeIndex%len(s.kinds)]
}

// Offset is the total rotation of the face.
func (s *State) Offset() float64 {
	return hue.Normalize(s.RotationOffset + s.TiltOffset)
}

func (s *State) ToggleFill() { s.Filled = !s.Filled }

func (s *State) ToggleSpectrum() { s.FullSpectrum = !s.FullSpectrum }

func (s *State) CycleShape() {
	s.ShapeIndex = (s.ShapeIndex + 1) % len(s.kinds)
}

// Resize grows the markers by one step, wrapping to the minimum once past the maximum.
func (s *State) Resize() {
	s.MarkerSize += s.sizeStep
	if s.MarkerSize > s.sizeMax {
		s.MarkerSize = s.sizeMin
	}
}

// Rotate turns the face one step in the current spin direction and arms the rotation notifier.
func (s *State) Rotate(now int64) {
	step := s.rotationStep
	if !s.Clockwise {
		step = -step
	}
	s.RotationOffset = hue.Normalize(s.RotationOffset + step)
	s.Notifiers.Activate(notify.Rotation, now)
}

// InvertSpin reverses both the colour cycle and the rotation direction.
func (s *State) InvertSpin() {
	s.ColourIncrement = -s.ColourIncrement
	s.Clockwise = !s.Clockwise
}

func (s *State) Pulse(now int64) {
	s.Notifiers.Activate(notify.Pulse, now)
}

func (s *State) AdvanceColour() {
	s.ColourOffset = hue.Normalize(s.ColourOffset + s.ColourIncrement)
}
