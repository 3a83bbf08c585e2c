package bytestructure

import (
	"encoding/binary"
	"fmt"

	"github.com/feagi/feagi-data-processing/internal/bounds"
)

// ImageFramePayload is one raw frame captured from a vision sensor
// (payload_type 5): dimensions plus enough layout metadata to interpret
// the trailing pixel bytes without guessing.
type ImageFramePayload struct {
	Width, Height uint32
	Format        bounds.ChannelFormat
	Space         bounds.ColorSpace
	Order         bounds.MemoryOrder
	Pixels        []byte
}

// TypeCode implements Payload.
func (ImageFramePayload) TypeCode() TypeCode { return TypeImageFrame }

const imageFrameHeaderLength = 4 + 4 + 1 + 1 + 1

func encodeImageFrameBody(p Payload) ([]byte, error) {
	img := p.(ImageFramePayload)
	want := int(img.Width) * int(img.Height) * img.Format.Channels()
	if len(img.Pixels) != want {
		return nil, fmt.Errorf("%w: image frame declares %dx%d at %d channels (%d bytes), got %d pixel bytes",
			ErrLengthMismatch, img.Width, img.Height, img.Format.Channels(), want, len(img.Pixels))
	}

	out := make([]byte, imageFrameHeaderLength+len(img.Pixels))
	putImageHeader(out, img.Width, img.Height, img.Format, img.Space, img.Order)
	copy(out[imageFrameHeaderLength:], img.Pixels)
	return out, nil
}

func decodeImageFrameBody(body []byte, _ uint8) (Payload, error) {
	if err := needBytes(len(body), imageFrameHeaderLength); err != nil {
		return nil, err
	}
	width, height, format, space, order := parseImageHeader(body)
	pixels := body[imageFrameHeaderLength:]

	want := int(width) * int(height) * format.Channels()
	if len(pixels) != want {
		return nil, fmt.Errorf("%w: image frame declares %dx%d at %d channels (%d bytes), got %d pixel bytes",
			ErrLengthMismatch, width, height, format.Channels(), want, len(pixels))
	}

	return ImageFramePayload{
		Width: width, Height: height,
		Format: format, Space: space, Order: order,
		Pixels: append([]byte(nil), pixels...),
	}, nil
}

func putImageHeader(dst []byte, width, height uint32, format bounds.ChannelFormat, space bounds.ColorSpace, order bounds.MemoryOrder) {
	binary.LittleEndian.PutUint32(dst[0:4], width)
	binary.LittleEndian.PutUint32(dst[4:8], height)
	dst[8] = byte(format)
	dst[9] = byte(space)
	dst[10] = byte(order)
}

func parseImageHeader(src []byte) (width, height uint32, format bounds.ChannelFormat, space bounds.ColorSpace, order bounds.MemoryOrder) {
	width = binary.LittleEndian.Uint32(src[0:4])
	height = binary.LittleEndian.Uint32(src[4:8])
	format = bounds.ChannelFormat(src[8])
	space = bounds.ColorSpace(src[9])
	order = bounds.MemoryOrder(src[10])
	return
}

// SegmentedImageFramePayload splits a source frame into a GridCols x
// GridRows grid of cells (3x3 for the nine vision cells), each carrying
// its own slice of pixel bytes at a uniform per-cell resolution
// (payload_type 6).
type SegmentedImageFramePayload struct {
	GridCols, GridRows     uint8
	CellWidth, CellHeight  uint32
	Format                 bounds.ChannelFormat
	Space                  bounds.ColorSpace
	Order                  bounds.MemoryOrder
	Cells                  [][]byte // row-major, len == GridCols*GridRows
}

// TypeCode implements Payload.
func (SegmentedImageFramePayload) TypeCode() TypeCode { return TypeSegmentedImageFrame }

const segmentedHeaderLength = 1 + 1 + 4 + 4 + 1 + 1 + 1

func encodeSegmentedImageFrameBody(p Payload) ([]byte, error) {
	seg := p.(SegmentedImageFramePayload)
	cellCount := int(seg.GridCols) * int(seg.GridRows)
	if len(seg.Cells) != cellCount {
		return nil, fmt.Errorf("%w: segmented image frame declares a %dx%d grid (%d cells), got %d cells",
			ErrLengthMismatch, seg.GridCols, seg.GridRows, cellCount, len(seg.Cells))
	}
	cellBytes := int(seg.CellWidth) * int(seg.CellHeight) * seg.Format.Channels()

	size := segmentedHeaderLength
	for i, cell := range seg.Cells {
		if len(cell) != cellBytes {
			return nil, fmt.Errorf("%w: segmented image frame cell %d wants %d bytes, got %d",
				ErrLengthMismatch, i, cellBytes, len(cell))
		}
		size += cellBytes
	}

	out := make([]byte, size)
	out[0] = seg.GridCols
	out[1] = seg.GridRows
	binary.LittleEndian.PutUint32(out[2:6], seg.CellWidth)
	binary.LittleEndian.PutUint32(out[6:10], seg.CellHeight)
	out[10] = byte(seg.Format)
	out[11] = byte(seg.Space)
	out[12] = byte(seg.Order)

	offset := segmentedHeaderLength
	for _, cell := range seg.Cells {
		copy(out[offset:offset+cellBytes], cell)
		offset += cellBytes
	}
	return out, nil
}

func decodeSegmentedImageFrameBody(body []byte, _ uint8) (Payload, error) {
	if err := needBytes(len(body), segmentedHeaderLength); err != nil {
		return nil, err
	}
	gridCols, gridRows := body[0], body[1]
	cellWidth := binary.LittleEndian.Uint32(body[2:6])
	cellHeight := binary.LittleEndian.Uint32(body[6:10])
	format := bounds.ChannelFormat(body[10])
	space := bounds.ColorSpace(body[11])
	order := bounds.MemoryOrder(body[12])

	cellBytes := int(cellWidth) * int(cellHeight) * format.Channels()
	cellCount := int(gridCols) * int(gridRows)

	rest := body[segmentedHeaderLength:]
	if err := needBytes(len(rest), cellCount*cellBytes); err != nil {
		return nil, err
	}

	cells := make([][]byte, cellCount)
	offset := 0
	for i := range cells {
		cells[i] = append([]byte(nil), rest[offset:offset+cellBytes]...)
		offset += cellBytes
	}

	return SegmentedImageFramePayload{
		GridCols: gridCols, GridRows: gridRows,
		CellWidth: cellWidth, CellHeight: cellHeight,
		Format: format, Space: space, Order: order,
		Cells: cells,
	}, nil
}
