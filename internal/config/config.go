// Package config describes a clock face: which preset it starts from and every value the renderer
// and input controller read.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ajanata/gotoclock/internal/shape"
)

type HandStyle string

const (
	// HandStyleLine strokes each hand from its tail to its tip, with an optional cap.
	HandStyleLine HandStyle = "line"
	// HandStyleHand fills each hand as a bar.
	HandStyleHand HandStyle = "hand"
)

type LeftButton string

const (
	LeftButtonResize LeftButton = "resize"
	LeftButtonRotate LeftButton = "rotate"
)

type HandSpec struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	// Blob is the radius of the cap drawn at the tip of a line hand; 0 for none.
	Blob float64 `json:"blob" yaml:"blob"`
}

type Hands struct {
	Hour   HandSpec `json:"hour" yaml:"hour"`
	Minute HandSpec `json:"minute" yaml:"minute"`
	Second HandSpec `json:"second" yaml:"second"`
}

type Brand struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// YOffset moves the wordmark down from the centre.
	YOffset   float64 `json:"y-offset" yaml:"y-offset"`
	Scale     float64 `json:"scale" yaml:"scale"`
	LineWidth float64 `json:"line-width" yaml:"line-width"`
}

type Notifiers struct {
	PulseMs    int64 `json:"pulse-ms" yaml:"pulse-ms"`
	RotationMs int64 `json:"rotation-ms" yaml:"rotation-ms"`
}

type Config struct {
	Preset string `json:"preset" yaml:"preset"`

	Radius            float64 `json:"radius" yaml:"radius"`
	BackgroundColour  string  `json:"background-colour" yaml:"background-colour"`
	BackgroundImage   string  `json:"background-image" yaml:"background-image"`
	BackgroundOpacity float64 `json:"background-opacity" yaml:"background-opacity"`

	HandsOverhang float64   `json:"hands-overhang" yaml:"hands-overhang"`
	HandStyle     HandStyle `json:"hand-style" yaml:"hand-style"`
	Hands         Hands     `json:"hands" yaml:"hands"`

	MarkerSize     float64  `json:"marker-size" yaml:"marker-size"`
	MarkerSizeMin  float64  `json:"marker-size-min" yaml:"marker-size-min"`
	MarkerSizeMax  float64  `json:"marker-size-max" yaml:"marker-size-max"`
	MarkerSizeStep float64  `json:"marker-size-step" yaml:"marker-size-step"`
	MarkerShapes   []string `json:"marker-shapes" yaml:"marker-shapes"`
	FilledMarkers  bool     `json:"filled-markers" yaml:"filled-markers"`

	FullSpectrum    bool    `json:"full-spectrum" yaml:"full-spectrum"`
	Brand           Brand   `json:"brand" yaml:"brand"`
	OvertickAmount  float64 `json:"overtick-amount" yaml:"overtick-amount"`
	ColourIncrement float64 `json:"colour-increment" yaml:"colour-increment"`
	LEDBrightness   float64 `json:"led-brightness" yaml:"led-brightness"`
	// Opacity of markers, hands and the wordmark.
	Opacity float64 `json:"opacity" yaml:"opacity"`

	LeftButton   LeftButton `json:"left-button" yaml:"left-button"`
	RotationStep float64    `json:"rotation-step" yaml:"rotation-step"`
	Tilt         bool       `json:"tilt" yaml:"tilt"`
	UpsideDown   bool       `json:"upside-down" yaml:"upside-down"`
	Framerate    int        `json:"framerate" yaml:"framerate"`
	Notifiers    Notifiers  `json:"notifiers" yaml:"notifiers"`
}

// Background parses BackgroundColour. An empty colour is black.
func (c *Config) Background() (color.NRGBA, error) {
	if c.BackgroundColour == "" {
		return color.NRGBA{A: 255}, nil
	}
	col, err := colorful.Hex(c.BackgroundColour)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("background-colour: %w", err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Kinds parses MarkerShapes in order.
func (c *Config) Kinds() ([]shape.Kind, error) {
	kinds := make([]shape.Kind, 0, len(c.MarkerShapes))
	for _, name := range c.MarkerShapes {
		k, err := shape.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("marker-shapes: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, v ...any) {
		errs = append(errs, fmt.Errorf(format, v...))
	}

	if c.Radius <= 0 {
		add("radius: must be positive, got %v", c.Radius)
	}
	if _, err := c.Background(); err != nil {
		errs = append(errs, err)
	}
	unit := func(key string, v float64) {
		if v < 0 || v > 1 {
			add("%s: must be within [0, 1], got %v", key, v)
		}
	}
	unit("background-opacity", c.BackgroundOpacity)
	unit("led-brightness", c.LEDBrightness)
	unit("opacity", c.Opacity)

	switch c.HandStyle {
	case HandStyleLine, HandStyleHand:
	default:
		add("hand-style: unknown style %q", c.HandStyle)
	}
	for _, h := range []struct {
		name string
		HandSpec
	}{{"hour", c.Hands.Hour}, {"minute", c.Hands.Minute}, {"second", c.Hands.Second}} {
		if h.Length <= 0 {
			add("hands.%s.length: must be positive, got %v", h.name, h.Length)
		}
		if h.Width <= 0 {
			add("hands.%s.width: must be positive, got %v", h.name, h.Width)
		}
		if h.Blob < 0 {
			add("hands.%s.blob: must not be negative, got %v", h.name, h.Blob)
		}
	}
	if c.HandsOverhang < 0 {
		add("hands-overhang: must not be negative, got %v", c.HandsOverhang)
	}

	if c.MarkerSize <= 0 {
		add("marker-size: must be positive, got %v", c.MarkerSize)
	}
	switch {
	case c.MarkerSizeMin <= 0:
		// resizing wraps to the minimum
		add("marker-size-min: must be positive, got %v", c.MarkerSizeMin)
	case c.MarkerSizeMin > c.MarkerSizeMax:
		add("marker-size-min: %v is larger than marker-size-max %v", c.MarkerSizeMin, c.MarkerSizeMax)
	case c.MarkerSize > 0 && (c.MarkerSize < c.MarkerSizeMin || c.MarkerSize > c.MarkerSizeMax):
		add("marker-size: %v is outside [%v, %v]", c.MarkerSize, c.MarkerSizeMin, c.MarkerSizeMax)
	}
	if c.MarkerSizeStep < 0 {
		add("marker-size-step: must not be negative, got %v", c.MarkerSizeStep)
	}
	if len(c.MarkerShapes) == 0 {
		add("marker-shapes: at least one shape is required")
	} else if _, err := c.Kinds(); err != nil {
		errs = append(errs, err)
	}

	switch c.LeftButton {
	case LeftButtonResize, LeftButtonRotate:
	default:
		add("left-button: unknown action %q", c.LeftButton)
	}
	if c.Framerate <= 0 {
		add("framerate: must be positive, got %d", c.Framerate)
	}
	if c.Notifiers.PulseMs < 0 || c.Notifiers.RotationMs < 0 {
		add("notifiers: durations must not be negative")
	}
	if c.Brand.Enabled && c.Brand.Scale <= 0 {
		add("brand.scale: must be positive, got %v", c.Brand.Scale)
	}

	return errors.Join(errs...)
}
