// Package canvastest provides a canvas.Canvas that records what was drawn.
package canvastest

import (
	"errors"
	"image/color"
	"math"

	"github.com/ajanata/gotoclock/internal/canvas"
	"github.com/ajanata/gotoclock/internal/geometry"
)

var _ canvas.Canvas = (*Recorder)(nil)

// ErrUnbalanced is returned by Recorder.Check when Save and Restore calls do not pair up.
var ErrUnbalanced = errors.New("unbalanced save/restore")

type Kind string

const (
	KindFill   Kind = "fill"
	KindStroke Kind = "stroke"
	KindImage  Kind = "image"
)

// Arc is a recorded arc, centre in device coordinates.
type Arc struct {
	Center geometry.Point
	R      float64
}

// Subpath is a run of points in device coordinates started by MoveTo.
type Subpath struct {
	Points []geometry.Point
	Arcs   []Arc
	Closed bool
}

type Draw struct {
	Kind      Kind
	Subpaths  []Subpath
	Colour    color.NRGBA
	LineWidth float64

	// set for KindImage
	Asset string
	Rect  [4]float64
}

// Points returns every point of every subpath.
func (d Draw) Points() []geometry.Point {
	var pts []geometry.Point
	for _, sp := range d.Subpaths {
		pts = append(pts, sp.Points...)
	}
	return pts
}

type matrix struct {
	a, b, c, d, e, f float64
}

var identity = matrix{a: 1, d: 1}

func (m matrix) apply(x, y float64) geometry.Point {
	return geometry.Point{X: m.a*x + m.c*y + m.e, Y: m.b*x + m.d*y + m.f}
}

func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

type state struct {
	m         matrix
	colour    color.NRGBA
	lineWidth float64
}

// Recorder implements canvas.Canvas. The zero value is not usable; use New.
type Recorder struct {
	Draws []Draw
	// ImageErr, when set, is returned from every Image call.
	ImageErr error

	cur      state
	stack    []state
	path     []Subpath
	maxDepth int
	restores int
}

func New() *Recorder {
	return &Recorder{cur: state{m: identity, lineWidth: 1}}
}

// Depth is the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// MaxDepth is the deepest Save nesting seen.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// Check returns ErrUnbalanced if a Save is still open or a Restore had nothing to pop.
func (r *Recorder) Check() error {
	if len(r.stack) != 0 || r.restores < 0 {
		return ErrUnbalanced
	}
	return nil
}

// Kinds lists the kind of every recorded draw in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Draws))
	for i, d := range r.Draws {
		out[i] = d.Kind
	}
	return out
}

func (r *Recorder) BeginPath() { r.path = nil }

func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, Subpath{Points: []geometry.Point{r.cur.m.apply(x, y)}})
}

func (r *Recorder) LineTo(x, y float64) {
	if len(r.path) == 0 {
		r.MoveTo(x, y)
		return
	}
	sp := &r.path[len(r.path)-1]
	sp.Points = append(sp.Points, r.cur.m.apply(x, y))
}

func (r *Recorder) Arc(x, y, radius, _, _ float64) {
	scale := math.Hypot(r.cur.m.a, r.cur.m.b)
	r.path = append(r.path, Subpath{Arcs: []Arc{{Center: r.cur.m.apply(x, y), R: radius * scale}}})
}

func (r *Recorder) Rectangle(x, y, w, h float64) {
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.ClosePath()
}

func (r *Recorder) ClosePath() {
	if len(r.path) > 0 {
		r.path[len(r.path)-1].Closed = true
	}
}

func (r *Recorder) finish(k Kind) {
	r.Draws = append(r.Draws, Draw{
		Kind:      k,
		Subpaths:  r.path,
		Colour:    r.cur.colour,
		LineWidth: r.cur.lineWidth,
	})
	r.path = nil
}

func (r *Recorder) Fill()   { r.finish(KindFill) }
func (r *Recorder) Stroke() { r.finish(KindStroke) }

func (r *Recorder) SetLineWidth(w float64) { r.cur.lineWidth = w }

func (r *Recorder) SetRGBA(red, green, blue uint8, opacity float64) {
	r.cur.colour = color.NRGBA{R: red, G: green, B: blue, A: uint8(opacity * 255)}
}

func (r *Recorder) Translate(x, y float64) {
	r.cur.m = r.cur.m.mul(matrix{a: 1, d: 1, e: x, f: y})
}

func (r *Recorder) Rotate(rad float64) {
	s, c := math.Sincos(rad)
	r.cur.m = r.cur.m.mul(matrix{a: c, b: s, c: -s, d: c})
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.cur)
	if len(r.stack) > r.maxDepth {
		r.maxDepth = len(r.stack)
	}
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		r.restores = -1
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Image(asset string, x, y, w, h float64) error {
	if r.ImageErr != nil {
		return r.ImageErr
	}
	p := r.cur.m.apply(x, y)
	r.Draws = append(r.Draws, Draw{Kind: KindImage, Asset: asset, Rect: [4]float64{p.X, p.Y, w, h}})
	return nil
}
