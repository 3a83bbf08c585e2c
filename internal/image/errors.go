package image

import "errors"

var (
	// ErrSegmentOutOfBounds is returned when a SegmentationDescriptor's
	// center cell does not fit inside the source frame.
	ErrSegmentOutOfBounds = errors.New("image: segmentation center cell does not fit inside source frame")
	// ErrUnsupportedMemoryOrder is returned when segmentation or fusion
	// is attempted on a frame whose MemoryOrder this package does not
	// yet know how to slice.
	ErrUnsupportedMemoryOrder = errors.New("image: unsupported memory order")
)
