// Package hue maps positions on the colour wheel to RGB.
package hue

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// truncSlack keeps float noise from knocking a whole channel value down by one when truncating.
const truncSlack = 1e-9

// Normalize reduces any angle in degrees to [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// RGB returns the fully saturated colour at deg on the wheel, each channel in [0, 255]. Any angle
// is accepted.
func RGB(deg float64) (r, g, b float64) {
	c := colorful.Hsv(Normalize(deg), 1, 1)
	return c.R * 255, c.G * 255, c.B * 255
}

// Colour is RGB truncated to 8 bits per channel, with alpha taken from opacity in [0, 1].
func Colour(deg, opacity float64) color.NRGBA {
	r, g, b := RGB(deg)
	return color.NRGBA{
		R: uint8(r + truncSlack),
		G: uint8(g + truncSlack),
		B: uint8(b + truncSlack),
		A: uint8(opacity * 255),
	}
}
