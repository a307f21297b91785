package panel

import (
	"errors"
	"image"
	"image/color"
)

// Framebuffer is an in-memory display for host builds and tests.
type Framebuffer struct {
	img    *image.RGBA
	frames int
	// OnDisplay, if set, is called by Display with the current image.
	OnDisplay func(img *image.RGBA) error
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.img.SetRGBA(int(x), int(y), c)
}

// FillRectangleWithBuffer copies a row-major block of pixels, the way SPI panels take them.
func (f *Framebuffer) FillRectangleWithBuffer(x, y, width, height int16, buffer []color.RGBA) error {
	w, h := f.Size()
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > w || y+height > h {
		return errors.New("rectangle coordinates outside display area")
	}
	if int(width)*int(height) != len(buffer) {
		return errors.New("buffer length does not match rectangle size")
	}
	for i, c := range buffer {
		f.img.SetRGBA(int(x)+i%int(width), int(y)+i/int(width), c)
	}
	return nil
}

func (f *Framebuffer) Display() error {
	f.frames++
	if f.OnDisplay != nil {
		return f.OnDisplay(f.img)
	}
	return nil
}

func (f *Framebuffer) CanUpdateNow() bool { return true }

// Image is the backing image. It is updated in place.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// Frames counts calls to Display.
func (f *Framebuffer) Frames() int { return f.frames }
