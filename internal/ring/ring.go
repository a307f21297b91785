// Package ring is the contract for the addressable light ring around the display.
package ring

import (
	"errors"
	"image/color"
)

// Pixels on the ring. Index 1 through Pixels run counter-clockwise from the reference pixel.
const Pixels = 12

// Ring is an addressable set of RGB pixels. Set only stages a colour; Write pushes all of them to
// the hardware and is called once per frame after every pixel is set.
type Ring interface {
	Set(index int, c color.RGBA)
	Write() error
}

var ErrIndex = errors.New("ring index out of range")

// Buffer is an in-memory Ring. It backs host builds and tests, and hardware rings can wrap it to
// stage colours before a flush.
type Buffer struct {
	staged  [Pixels]color.RGBA
	written [Pixels]color.RGBA
	writes  int
	// OnWrite, if set, receives the flushed colours in index order.
	OnWrite func(px []color.RGBA) error
}

// Set ignores out-of-range indices; Get reports them.
func (b *Buffer) Set(index int, c color.RGBA) {
	if index < 1 || index > Pixels {
		return
	}
	b.staged[index-1] = c
}

func (b *Buffer) Write() error {
	b.written = b.staged
	b.writes++
	if b.OnWrite != nil {
		return b.OnWrite(b.written[:])
	}
	return nil
}

// Get returns the last written colour at index.
func (b *Buffer) Get(index int) (color.RGBA, error) {
	if index < 1 || index > Pixels {
		return color.RGBA{}, ErrIndex
	}
	return b.written[index-1], nil
}

// Pixels returns a copy of the last written colours in index order.
func (b *Buffer) Pixels() []color.RGBA {
	px := b.written
	return px[:]
}

// Writes counts calls to Write.
func (b *Buffer) Writes() int { return b.writes }
