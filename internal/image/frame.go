// Package image segments a raw sensor frame into the nine-cell grid
// that feeds the vision cortical identifiers, and fuses chained crop,
// resize, and colorspace transforms into a single pass.
package image

import (
	"errors"
	"fmt"

	"github.com/feagi/feagi-data-processing/internal/bounds"
)

// Frame is one uncompressed pixel buffer with explicit layout metadata.
type Frame struct {
	Width, Height uint32
	Format        bounds.ChannelFormat
	Space         bounds.ColorSpace
	Order         bounds.MemoryOrder
	Pixels        []byte
}

// errPixelLength is returned when a Frame's Pixels slice does not
// match Width*Height*Format.Channels().
var errPixelLength = errors.New("image: pixel buffer length does not match dimensions and channel format")

// Validate checks that Pixels is exactly Width*Height*Format.Channels()
// bytes long.
func (f Frame) Validate() error {
	want := int(f.Width) * int(f.Height) * f.Format.Channels()
	if len(f.Pixels) != want {
		return fmt.Errorf("%w: want %d, got %d", errPixelLength, want, len(f.Pixels))
	}
	return nil
}

// offsetRowMajor returns the byte offset of pixel (x, y)'s first channel sample
// under row-major layout.
func (f Frame) offsetRowMajor(x, y uint32) int {
	channels := f.Format.Channels()
	return (int(y)*int(f.Width) + int(x)) * channels
}
