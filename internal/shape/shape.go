// Package shape holds the drawable pieces of the clock face.
//
// Every shape is defined at the origin with no rotation and placed with a scoped translate and
// rotate, so nothing one shape does to the canvas transform reaches the next.
package shape

import (
	"image/color"

	"github.com/ajanata/gotoclock/internal/canvas"
	"github.com/ajanata/gotoclock/internal/geometry"
)

type Shape interface {
	// Draw strokes or fills exactly one path on c and leaves its state as it found it.
	Draw(c canvas.Canvas) error
}

// Style is shared by the marker shapes.
type Style struct {
	Center geometry.Point
	// Size is the circumradius for regular shapes and the length for rectangles.
	Size float64
	// Rotation in radians, clockwise on screen.
	Rotation float64
	// Colour alpha carries the opacity.
	Colour color.NRGBA
	Filled bool
}

func setColour(c canvas.Canvas, col color.NRGBA) {
	c.SetRGBA(col.R, col.G, col.B, float64(col.A)/255)
}

func finish(c canvas.Canvas, filled bool) {
	if filled {
		c.Fill()
	} else {
		c.Stroke()
	}
}

// place runs trace in the shape's local frame and fills or strokes the result.
func place(c canvas.Canvas, s Style, trace func()) error {
	return canvas.Scoped(c, func() error {
		setColour(c, s.Colour)
		c.BeginPath()
		c.Translate(s.Center.X, s.Center.Y)
		c.Rotate(s.Rotation)
		trace()
		finish(c, s.Filled)
		return nil
	})
}

func tracePolygon(c canvas.Canvas, vs []geometry.Point) {
	for i, v := range vs {
		if i == 0 {
			c.MoveTo(v.X, v.Y)
		} else {
			c.LineTo(v.X, v.Y)
		}
	}
	c.ClosePath()
}

func drawPolygon(c canvas.Canvas, s Style, vs []geometry.Point) error {
	return place(c, s, func() { tracePolygon(c, vs) })
}
