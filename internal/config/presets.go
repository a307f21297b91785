package config

import (
	"errors"
	"fmt"
)

var ErrUnknownPreset = errors.New("unknown preset")

// DefaultPreset is used when a document names no preset.
const DefaultPreset = "blobs"

var presets = map[string]func(*Config){
	"blobs": func(*Config) {},
	"hands": func(c *Config) {
		c.MarkerShapes = []string{"rectangle"}
		c.MarkerSize = 12
		c.FullSpectrum = false
	},
	"spin": func(c *Config) {
		c.MarkerShapes = []string{"hexagon"}
		c.HandStyle = HandStyleHand
		c.HandsOverhang = 10
		c.FullSpectrum = false
		c.Opacity = 0.7
		c.LeftButton = LeftButtonRotate
	},
	"tilt": func(c *Config) {
		c.MarkerShapes = []string{"triangle"}
		c.HandStyle = HandStyleHand
		c.HandsOverhang = 10
		c.Opacity = 0.7
		c.Tilt = true
	},
	"shapes": func(c *Config) {
		c.MarkerShapes = []string{"hexagon", "pentagon", "pentagram", "square", "triangle", "circle"}
		c.Hands.Hour.Blob = 5
		c.Hands.Minute.Blob = 4
		c.Hands.Second.Blob = 3
		c.Brand.Enabled = true
		c.OvertickAmount = 3
	},
	"rainbow": func(c *Config) {
		c.MarkerShapes = []string{"pentagram"}
		c.HandStyle = HandStyleHand
		c.HandsOverhang = 10
		c.Opacity = 0.7
		c.BackgroundImage = "background/emf"
		c.Brand.Enabled = true
	},
}

func base() *Config {
	return &Config{
		Preset:            DefaultPreset,
		Radius:            120,
		BackgroundColour:  "#000000",
		BackgroundOpacity: 0.6,
		HandsOverhang:     20,
		HandStyle:         HandStyleLine,
		Hands: Hands{
			Hour:   HandSpec{Length: 40, Width: 8},
			Minute: HandSpec{Length: 70, Width: 4},
			Second: HandSpec{Length: 80, Width: 2},
		},
		MarkerSize:      10,
		MarkerSizeMin:   4,
		MarkerSizeMax:   20,
		MarkerSizeStep:  2,
		MarkerShapes:    []string{"circle"},
		FilledMarkers:   true,
		FullSpectrum:    true,
		Brand:           Brand{YOffset: 40, Scale: 10, LineWidth: 3},
		ColourIncrement: 1,
		LEDBrightness:   0.5,
		Opacity:         1,
		LeftButton:      LeftButtonResize,
		RotationStep:    30,
		Framerate:       30,
		Notifiers:       Notifiers{PulseMs: 500, RotationMs: 1000},
	}
}

// Preset returns a fresh copy of the named preset.
func Preset(name string) (*Config, error) {
	apply, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	c := base()
	c.Preset = name
	apply(c)
	return c, nil
}

func Default() *Config {
	c, _ := Preset(DefaultPreset)
	return c
}

// PresetNames lists the presets in a fixed order.
func PresetNames() []string {
	return []string{"hands", "blobs", "spin", "tilt", "shapes", "rainbow"}
}
