// Package ggcanvas implements canvas.Canvas on top of github.com/fogleman/gg.
package ggcanvas

import (
	"errors"
	"image"

	"github.com/fogleman/gg"

	"github.com/ajanata/gotoclock/internal/canvas"
)

var _ canvas.Canvas = (*Canvas)(nil)

// Loader resolves an asset name to an image.
type Loader interface {
	Load(asset string) (image.Image, error)
}

// Canvas draws onto a w x h gg context with the origin moved to the centre.
type Canvas struct {
	dc     *gg.Context
	loader Loader
}

// New creates a Canvas. loader may be nil if no images are drawn.
func New(w, h int, loader Loader) *Canvas {
	dc := gg.NewContext(w, h)
	dc.Translate(float64(w)/2, float64(h)/2)
	return &Canvas{dc: dc, loader: loader}
}

// Frame is the rendered image, updated in place.
func (c *Canvas) Frame() image.Image { return c.dc.Image() }

// Context exposes the gg context, e.g. for SavePNG.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
}

func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }

func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }

func (c *Canvas) Arc(x, y, r, a0, a1 float64) {
	c.dc.NewSubPath()
	c.dc.DrawArc(x, y, r, a0, a1)
}

func (c *Canvas) Rectangle(x, y, w, h float64) { c.dc.DrawRectangle(x, y, w, h) }

func (c *Canvas) ClosePath() { c.dc.ClosePath() }

func (c *Canvas) Fill() { c.dc.Fill() }

func (c *Canvas) Stroke() { c.dc.Stroke() }

func (c *Canvas) SetLineWidth(w float64) { c.dc.SetLineWidth(w) }

func (c *Canvas) SetRGBA(r, g, b uint8, opacity float64) {
	c.dc.SetRGBA255(int(r), int(g), int(b), int(opacity*255))
}

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

func (c *Canvas) Rotate(rad float64) { c.dc.Rotate(rad) }

func (c *Canvas) Save() { c.dc.Push() }

func (c *Canvas) Restore() { c.dc.Pop() }

func (c *Canvas) Image(asset string, x, y, w, h float64) error {
	if c.loader == nil {
		return errors.New("no image loader for " + asset)
	}
	img, err := c.loader.Load(asset)
	if err != nil {
		return err
	}
	b := img.Bounds()
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Translate(x, y)
	c.dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	c.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	return nil
}
