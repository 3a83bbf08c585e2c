package image

import "fmt"

// SegmentationDescriptor locates the center cell of a 3x3 grid within a
// source frame: everything inside [CenterX, CenterX+CenterWidth) x
// [CenterY, CenterY+CenterHeight) is the center cell; the remaining
// area splits into the eight peripheral cells around it. The center
// cell is free to carry a different effective resolution than the
// peripherals — segmentation only fixes its footprint in source
// pixels, not the resolution it's later encoded at.
type SegmentationDescriptor struct {
	CenterX, CenterY          uint32
	CenterWidth, CenterHeight uint32
}

// Segmented holds the nine cells produced by Segment, named for the
// vision cortical identifier each one feeds.
type Segmented struct {
	Center                             Frame
	TopLeft, TopMid, TopRight          Frame
	MidLeft, MidRight                  Frame
	BottomLeft, BottomMid, BottomRight Frame
}

// Segment splits frame into a 3x3 grid per desc. frame.Order must be
// MemoryOrderRowMajor.
func Segment(frame Frame, desc SegmentationDescriptor) (Segmented, error) {
	if err := frame.Validate(); err != nil {
		return Segmented{}, err
	}
	if frame.Order != 0 {
		// bounds.MemoryOrderRowMajor is the zero value; anything else
		// this package does not yet know how to slice.
		return Segmented{}, ErrUnsupportedMemoryOrder
	}
	if desc.CenterX+desc.CenterWidth > frame.Width || desc.CenterY+desc.CenterHeight > frame.Height {
		return Segmented{}, fmt.Errorf("%w: center at (%d,%d) size %dx%d, frame %dx%d",
			ErrSegmentOutOfBounds, desc.CenterX, desc.CenterY, desc.CenterWidth, desc.CenterHeight, frame.Width, frame.Height)
	}

	colStarts := [4]uint32{0, desc.CenterX, desc.CenterX + desc.CenterWidth, frame.Width}
	rowStarts := [4]uint32{0, desc.CenterY, desc.CenterY + desc.CenterHeight, frame.Height}

	cell := func(col, row int) Frame {
		x0, x1 := colStarts[col], colStarts[col+1]
		y0, y1 := rowStarts[row], rowStarts[row+1]
		return extractRowMajor(frame, x0, y0, x1-x0, y1-y0)
	}

	return Segmented{
		TopLeft: cell(0, 0), TopMid: cell(1, 0), TopRight: cell(2, 0),
		MidLeft: cell(0, 1), Center: cell(1, 1), MidRight: cell(2, 1),
		BottomLeft: cell(0, 2), BottomMid: cell(1, 2), BottomRight: cell(2, 2),
	}, nil
}

// extractRowMajor copies the axis-aligned box [x0, x0+w) x [y0, y0+h)
// out of frame into a standalone Frame of the same format.
func extractRowMajor(frame Frame, x0, y0, w, h uint32) Frame {
	channels := frame.Format.Channels()
	pixels := make([]byte, int(w)*int(h)*channels)

	for row := uint32(0); row < h; row++ {
		srcStart := frame.offsetRowMajor(x0, y0+row)
		srcEnd := srcStart + int(w)*channels
		dstStart := int(row) * int(w) * channels
		copy(pixels[dstStart:dstStart+int(w)*channels], frame.Pixels[srcStart:srcEnd])
	}

	return Frame{
		Width: w, Height: h,
		Format: frame.Format, Space: frame.Space, Order: frame.Order,
		Pixels: pixels,
	}
}
