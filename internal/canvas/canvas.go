// Package canvas defines the immediate-mode drawing surface the clock face is rendered onto.
package canvas

// Canvas is an immediate-mode 2D surface with its origin at the centre of the screen, x to the
// right and y growing downward. Colours are 8-bit channels plus an opacity in [0, 1].
type Canvas interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centred on (x, y) from angle a0 to a1, in radians.
	Arc(x, y, r, a0, a1 float64)
	Rectangle(x, y, w, h float64)
	ClosePath()

	// Fill and Stroke consume the current path.
	Fill()
	Stroke()

	SetLineWidth(w float64)
	SetRGBA(r, g, b uint8, opacity float64)

	Translate(x, y float64)
	Rotate(rad float64)

	// Save pushes the transform, colour and line width; Restore pops them.
	Save()
	Restore()

	// Image draws the named asset scaled into the given rectangle.
	Image(asset string, x, y, w, h float64) error
}

// Scoped runs f between Save and Restore. Restore is deferred so a transform set up in f never
// outlives it, whether f returns an error or panics.
func Scoped(c Canvas, f func() error) error {
	c.Save()
	defer c.Restore()
	return f()
}
