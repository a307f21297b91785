package panel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

type slowDisplay struct {
	*Framebuffer
	ready bool
}

func (s slowDisplay) CanUpdateNow() bool { return s.ready }

// rectDisplay records every rectangle pushed to it.
type rectDisplay struct {
	*Framebuffer
	rects  [][4]int16
	pixels int
}

func (r *rectDisplay) FillRectangleWithBuffer(x, y, w, h int16, buf []color.RGBA) error {
	r.rects = append(r.rects, [4]int16{x, y, w, h})
	return r.Framebuffer.FillRectangleWithBuffer(x, y, w, h, buf)
}

func (r *rectDisplay) SetPixel(x, y int16, c color.RGBA) {
	r.pixels++
	r.Framebuffer.SetPixel(x, y, c)
}

// pixelDisplay hides everything but drivers.Displayer.
type pixelDisplay struct{ drivers.Displayer }

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func TestBlitClips(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			src.SetRGBA(x, y, c)
		}
	}

	Blit(fb, 2, 2, src)
	assert.Equal(t, c, fb.Image().RGBAAt(2, 2))
	assert.Equal(t, c, fb.Image().RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, fb.Image().RGBAAt(1, 1))

	Blit(fb, -2, -2, src)
	assert.Equal(t, c, fb.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, fb.Image().RGBAAt(1, 0))
}

func TestBlitGenericImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	Blit(fb, 0, 0, src)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, fb.Image().RGBAAt(0, 0))
}

func TestFlip(t *testing.T) {
	fb := NewFramebuffer(10, 6)
	f := NewFlip(fb)

	w, h := f.Size()
	assert.Equal(t, int16(10), w)
	assert.Equal(t, int16(6), h)

	c := color.RGBA{G: 255, A: 255}
	f.SetPixel(0, 0, c)
	f.SetPixel(3, 1, c)
	assert.Equal(t, c, fb.Image().RGBAAt(9, 5))
	assert.Equal(t, c, fb.Image().RGBAAt(6, 4))

	require.NoError(t, f.Display())
	assert.Equal(t, 1, fb.Frames())
}

func TestReady(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	assert.True(t, Ready(fb))
	assert.False(t, Ready(slowDisplay{Framebuffer: fb}))
	assert.False(t, NewFlip(slowDisplay{Framebuffer: fb}).CanUpdateNow())
}

func TestBlitterStrips(t *testing.T) {
	d := &rectDisplay{Framebuffer: NewFramebuffer(40, 40)}
	src := gradient(40, 40)

	var b Blitter
	require.NoError(t, b.Blit(d, 0, 0, src))
	assert.Equal(t, [][4]int16{{0, 0, 40, 16}, {0, 16, 40, 16}, {0, 32, 40, 8}}, d.rects)
	assert.Zero(t, d.pixels)
	assert.Equal(t, src.Pix, d.Image().Pix)

	// the strip is reused between frames
	strip := &b.strip[0]
	require.NoError(t, b.Blit(d, 0, 0, src))
	assert.Same(t, strip, &b.strip[0])
}

func TestBlitterClipsRects(t *testing.T) {
	d := &rectDisplay{Framebuffer: NewFramebuffer(10, 10)}
	src := gradient(8, 8)

	require.NoError(t, Blit(d, 5, -3, src))
	assert.Equal(t, [][4]int16{{5, 0, 5, 5}}, d.rects)
	assert.Equal(t, color.RGBA{R: 0, G: 3, B: 7, A: 255}, d.Image().RGBAAt(5, 0))
	assert.Equal(t, color.RGBA{R: 4, G: 7, B: 7, A: 255}, d.Image().RGBAAt(9, 4))
	assert.Equal(t, color.RGBA{}, d.Image().RGBAAt(4, 0))

	d.rects = nil
	require.NoError(t, Blit(d, 20, 0, src))
	assert.Empty(t, d.rects)
}

func TestFlipRects(t *testing.T) {
	a := color.RGBA{R: 255, A: 255}
	b := color.RGBA{B: 255, A: 255}

	fb := NewFramebuffer(10, 6)
	d := &rectDisplay{Framebuffer: fb}
	f := NewFlip(d)
	require.NoError(t, f.FillRectangleWithBuffer(0, 0, 2, 1, []color.RGBA{a, b}))
	assert.Equal(t, [][4]int16{{8, 5, 2, 1}}, d.rects)
	assert.Equal(t, a, fb.Image().RGBAAt(9, 5))
	assert.Equal(t, b, fb.Image().RGBAAt(8, 5))
	assert.Error(t, f.FillRectangleWithBuffer(0, 0, 2, 2, []color.RGBA{a}))

	// pixel-only panels still flip
	plain := NewFramebuffer(10, 6)
	f = NewFlip(pixelDisplay{plain})
	require.NoError(t, f.FillRectangleWithBuffer(1, 1, 1, 2, []color.RGBA{a, b}))
	assert.Equal(t, a, plain.Image().RGBAAt(8, 4))
	assert.Equal(t, b, plain.Image().RGBAAt(8, 3))
}

func TestFlipBlitMatchesPixels(t *testing.T) {
	src := gradient(12, 20)

	viaRects := NewFramebuffer(12, 20)
	require.NoError(t, Blit(NewFlip(viaRects), 0, 0, src))

	viaPixels := NewFramebuffer(12, 20)
	require.NoError(t, Blit(NewFlip(pixelDisplay{viaPixels}), 0, 0, src))

	assert.Equal(t, viaPixels.Image().Pix, viaRects.Image().Pix)
	assert.Equal(t, src.RGBAAt(0, 0), viaRects.Image().RGBAAt(11, 19))
}
