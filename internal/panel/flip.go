package panel

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Flip turns everything drawn on it by 180 degrees, for panels mounted upside down. This is the
// only place the physical orientation of the screen is corrected.
type Flip struct {
	d       drivers.Displayer
	w, h    int16
	scratch []color.RGBA
}

func NewFlip(d drivers.Displayer) *Flip {
	w, h := d.Size()
	return &Flip{
		d: d,
		w: w,
		h: h,
	}
}

func (f *Flip) Size() (x, y int16) {
	return f.w, f.h
}

func (f *Flip) SetPixel(x, y int16, c color.RGBA) {
	f.d.SetPixel(f.w-x-1, f.h-y-1, c)
}

func (f *Flip) Display() error {
	return f.d.Display()
}

func (f *Flip) CanUpdateNow() bool {
	return Ready(f.d)
}

// FillRectangleWithBuffer turns the rectangle around, which for a 180 degree flip is the same pixels in reverse order.
// Displays without RectWriter get the pixels one at a time.
func (f *Flip) FillRectangleWithBuffer(x, y, width, height int16, buffer []color.RGBA) error {
	if width <= 0 || height <= 0 || int(width)*int(height) != len(buffer) {
		return errors.New("buffer length does not match rectangle size")
	}
	rw, ok := f.d.(RectWriter)
	if !ok {
		for i, c := range buffer {
			f.SetPixel(x+int16(i%int(width)), y+int16(i/int(width)), c)
		}
		return nil
	}
	if len(f.scratch) < len(buffer) {
		f.scratch = make([]color.RGBA, len(buffer))
	}
	rev := f.scratch[:len(buffer)]
	for i, c := range buffer {
		rev[len(buffer)-1-i] = c
	}
	return rw.FillRectangleWithBuffer(f.w-x-width, f.h-y-height, width, height, rev)
}
