package shape

import (
	"image/color"

	"github.com/ajanata/gotoclock/internal/canvas"
	"github.com/ajanata/gotoclock/internal/geometry"
)

type Line struct {
	Start, End geometry.Point
	Width      float64
	Colour     color.NRGBA
}

func (l Line) Draw(c canvas.Canvas) error {
	return canvas.Scoped(c, func() error {
		setColour(c, l.Colour)
		c.SetLineWidth(l.Width)
		c.BeginPath()
		c.MoveTo(l.Start.X, l.Start.Y)
		c.LineTo(l.End.X, l.End.Y)
		c.Stroke()
		return nil
	})
}

// Hand is a bar pivoting on the centre of the face: Length toward the clock angle, Tail behind it.
type Hand struct {
	// Angle in clock degrees.
	Angle  float64
	Length float64
	Tail   float64
	Width  float64
	Colour color.NRGBA
	Filled bool
}

func (h Hand) Vertices() []geometry.Point {
	w := h.Width / 2
	return []geometry.Point{
		{X: -w, Y: -h.Length},
		{X: w, Y: -h.Length},
		{X: w, Y: h.Tail},
		{X: -w, Y: h.Tail},
	}
}

func (h Hand) Draw(c canvas.Canvas) error {
	s := Style{Rotation: geometry.Radians(h.Angle), Colour: h.Colour, Filled: h.Filled}
	return drawPolygon(c, s, h.Vertices())
}

// Wordmark draws the letters EMF, each two Scale units tall, centred on Center.
type Wordmark struct {
	Center    geometry.Point
	Scale     float64
	LineWidth float64
	Colour    color.NRGBA
}

// strokes are polylines in units of Scale.
var wordmarkStrokes = [][]geometry.Point{
	// E
	{{X: -1.5, Y: -1}, {X: -3.5, Y: -1}, {X: -3.5, Y: 1}, {X: -1.5, Y: 1}},
	{{X: -3.5, Y: 0}, {X: -2, Y: 0}},
	// M
	{{X: -1, Y: 1}, {X: -1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: -1}, {X: 1, Y: 1}},
	// F
	{{X: 3.5, Y: -1}, {X: 1.5, Y: -1}, {X: 1.5, Y: 1}},
	{{X: 1.5, Y: 0}, {X: 3, Y: 0}},
}

func (w Wordmark) Draw(c canvas.Canvas) error {
	return canvas.Scoped(c, func() error {
		setColour(c, w.Colour)
		c.SetLineWidth(w.LineWidth)
		c.BeginPath()
		c.Translate(w.Center.X, w.Center.Y)
		for _, stroke := range wordmarkStrokes {
			for i, p := range stroke {
				if i == 0 {
					c.MoveTo(p.X*w.Scale, p.Y*w.Scale)
				} else {
					c.LineTo(p.X*w.Scale, p.Y*w.Scale)
				}
			}
		}
		c.Stroke()
		return nil
	})
}

// Background covers the square around a face of Radius. With an Image it blits the asset and lays
// Colour over it at Opacity; without one it fills Colour opaquely.
type Background struct {
	Colour  color.NRGBA
	Image   string
	Opacity float64
	Radius  float64
}

func (b Background) Draw(c canvas.Canvas) error {
	r := b.Radius
	return canvas.Scoped(c, func() error {
		opacity := 1.0
		if b.Image != "" {
			if err := c.Image(b.Image, -r, -r, 2*r, 2*r); err != nil {
				return err
			}
			opacity = b.Opacity
		}
		c.SetRGBA(b.Colour.R, b.Colour.G, b.Colour.B, opacity)
		c.BeginPath()
		c.Rectangle(-r, -r, 2*r, 2*r)
		c.Fill()
		return nil
	})
}

// Dot is a filled disc, used for the caps on line hands.
func Dot(center geometry.Point, r float64, col color.NRGBA) Shape {
	return Circle{Style: Style{Center: center, Size: r, Colour: col, Filled: true}}
}
