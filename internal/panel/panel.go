// Package panel moves rendered frames onto pixel displays.
package panel

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

type Display interface {
	drivers.Displayer

	// CanUpdateNow indicates that the device is able to take a new frame right now. This is useful if the device is
	// driven by a DMA transfer, and the previous transfer has not yet completed. Displays should still support Display
	// being called before they are ready to update; in this case, they should block until the next update is possible.
	CanUpdateNow() bool
}

// Ready reports whether disp can take a frame. Displays that do not implement Display are always ready.
func Ready(disp drivers.Displayer) bool {
	if d, ok := disp.(Display); ok {
		return d.CanUpdateNow()
	}
	return true
}

// StripRows is the height of the bands a Blitter pushes to a RectWriter.
const StripRows = 16

// RectWriter is a display that takes a whole rectangle of pixels in one transfer, like the st7789.
type RectWriter interface {
	FillRectangleWithBuffer(x, y, width, height int16, buffer []color.RGBA) error
}

// Blitter copies frames onto displays. It keeps one strip of pixels around between frames.
type Blitter struct {
	strip []color.RGBA
}

// Blit draws img on the display with its top left corner at offX, offY. Off-screen pixels are clipped.
func Blit(disp drivers.Displayer, offX, offY int16, img image.Image) error {
	var b Blitter
	return b.Blit(disp, offX, offY, img)
}

// Blit draws img on the display with its top left corner at offX, offY. Off-screen pixels are clipped. RGBA images
// go to a RectWriter in bands of StripRows; everything else is drawn pixel by pixel.
func (bl *Blitter) Blit(disp drivers.Displayer, offX, offY int16, img image.Image) error {
	w, h := disp.Size()
	rgba, isRGBA := img.(*image.RGBA)
	if rw, ok := disp.(RectWriter); ok && isRGBA {
		return bl.blitRects(rw, offX, offY, w, h, rgba)
	}
	if isRGBA {
		blitRGBA(disp, offX, offY, w, h, rgba)
		return nil
	}

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		xx := int16(x-b.Min.X) + offX
		if xx < 0 || xx >= w {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			yy := int16(y-b.Min.Y) + offY
			if yy < 0 || yy >= h {
				continue
			}
			// RGBA returns each channel |= itself << 8, the high byte is the 8-bit value
			r, g, blue, a := img.At(x, y).RGBA()
			disp.SetPixel(xx, yy, color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(blue >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return nil
}

func (bl *Blitter) blitRects(rw RectWriter, offX, offY, w, h int16, img *image.RGBA) error {
	b := img.Bounds()
	x0, y0 := max(offX, 0), max(offY, 0)
	x1, y1 := min(offX+int16(b.Dx()), w), min(offY+int16(b.Dy()), h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	cols := int(x1 - x0)
	if len(bl.strip) < cols*StripRows {
		bl.strip = make([]color.RGBA, cols*StripRows)
	}

	for y := y0; y < y1; y += StripRows {
		rows := min(StripRows, y1-y)
		buf := bl.strip[:cols*int(rows)]
		for r := 0; r < int(rows); r++ {
			src := img.Pix[img.PixOffset(b.Min.X+int(x0-offX), b.Min.Y+int(y-offY)+r):]
			for i := 0; i < cols; i++ {
				p := src[i*4 : i*4+4 : i*4+4]
				buf[r*cols+i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
			}
		}
		if err := rw.FillRectangleWithBuffer(x0, y, int16(cols), rows, buf); err != nil {
			return err
		}
	}
	return nil
}

// blitRGBA skips the color.Color interface for the common case of a gg-rendered frame.
func blitRGBA(disp drivers.Displayer, offX, offY, w, h int16, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		yy := int16(y-b.Min.Y) + offY
		if yy < 0 || yy >= h {
			continue
		}
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			xx := int16(x) + offX
			if xx < 0 || xx >= w {
				continue
			}
			p := row[x*4 : x*4+4 : x*4+4]
			disp.SetPixel(xx, yy, color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]})
		}
	}
}
