package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajanata/gotoclock/internal/canvas"
	"github.com/ajanata/gotoclock/internal/geometry"
)

// Kind selects a marker shape.
type Kind uint8

const (
	KindCircle Kind = iota
	KindTriangle
	KindHexagon
	KindRectangle
	KindSquare
	KindPentagon
	KindPentagram
)

// Kinds lists every marker kind in declaration order.
var Kinds = []Kind{KindCircle, KindTriangle, KindHexagon, KindRectangle, KindSquare, KindPentagon, KindPentagram}

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindHexagon:
		return "hexagon"
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	case KindPentagon:
		return "pentagon"
	case KindPentagram:
		return "pentagram"
	default:
		return "INVALID"
	}
}

var ErrUnknownKind = errors.New("unknown shape")

func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// NewMarker builds the marker shape of the given kind.
func NewMarker(k Kind, s Style) Shape {
	switch k {
	case KindTriangle:
		return Triangle{Style: s}
	case KindHexagon:
		return Hexagon{Style: s}
	case KindRectangle:
		return Rectangle{Style: s}
	case KindSquare:
		return Square{Style: s}
	case KindPentagon:
		return Pentagon{Style: s}
	case KindPentagram:
		return Pentagram{Style: s}
	default:
		return Circle{Style: s}
	}
}

// regular returns n vertices at distance r, the first at startDeg. Angles run from +x toward +y,
// which is clockwise on screen.
func regular(n int, r, startDeg float64) []geometry.Point {
	vs := make([]geometry.Point, n)
	step := 360 / float64(n)
	for i := range vs {
		s, c := math.Sincos((startDeg + float64(i)*step) * math.Pi / 180)
		vs[i] = geometry.Point{X: r * c, Y: r * s}
	}
	return vs
}

type Circle struct{ Style }

func (s Circle) Draw(c canvas.Canvas) error {
	return place(c, s.Style, func() { c.Arc(0, 0, s.Size, 0, 2*math.Pi) })
}

// Triangle is isosceles with its apex toward -y. A zero Height makes it equilateral.
type Triangle struct {
	Style
	Height float64
}

func (s Triangle) Vertices() []geometry.Point {
	half := math.Sqrt(3) * s.Size / 4
	if s.Height != 0 {
		half = s.Height / 2
	}
	return []geometry.Point{
		{X: 0, Y: -half},
		{X: -s.Size / 2, Y: half},
		{X: s.Size / 2, Y: half},
	}
}

func (s Triangle) Draw(c canvas.Canvas) error { return drawPolygon(c, s.Style, s.Vertices()) }

type Hexagon struct{ Style }

func (s Hexagon) Vertices() []geometry.Point { return regular(6, s.Size, 0) }

func (s Hexagon) Draw(c canvas.Canvas) error { return drawPolygon(c, s.Style, s.Vertices()) }

// Pentagon points toward -y.
type Pentagon struct{ Style }

func (s Pentagon) Vertices() []geometry.Point { return regular(5, s.Size, -90) }

func (s Pentagon) Draw(c canvas.Canvas) error { return drawPolygon(c, s.Style, s.Vertices()) }

// pentagramInner is the inner radius of a {5/2} star with unit outer radius.
var pentagramInner = math.Sin(18*math.Pi/180) / math.Sin(126*math.Pi/180)

// Pentagram is a five-pointed star, one point toward -y, traced as its ten-vertex outline.
type Pentagram struct{ Style }

func (s Pentagram) Vertices() []geometry.Point {
	outer := regular(5, s.Size, -90)
	inner := regular(5, s.Size*pentagramInner, -54)
	vs := make([]geometry.Point, 0, 10)
	for i := range outer {
		vs = append(vs, outer[i], inner[i])
	}
	return vs
}

func (s Pentagram) Draw(c canvas.Canvas) error { return drawPolygon(c, s.Style, s.Vertices()) }

// Square has its edges on the local axes.
type Square struct{ Style }

func (s Square) Vertices() []geometry.Point { return regular(4, s.Size, 45) }

func (s Square) Draw(c canvas.Canvas) error { return drawPolygon(c, s.Style, s.Vertices()) }

// DefaultRectangleWidth is used when a Rectangle has no Width.
const DefaultRectangleWidth = 4.0

// Rectangle is a tick mark Size long along the y axis.
type Rectangle struct {
	Style
	Width float64
}

func (s Rectangle) Vertices() []geometry.Point {
	w := s.Width
	if w == 0 {
		w = DefaultRectangleWidth
	}
	return []geometry.Point{
		{X: -w / 2, Y: -s.Size / 2},
		{X: -w / 2, Y: s.Size / 2},
		{X: w / 2, Y: s.Size / 2},
		{X: w / 2, Y: -s.Size / 2},
	}
}

func (s Rectangle) Draw(c canvas.Canvas) error { return drawPolygon(c, s.Style, s.Vertices()) }
