package bounds

import (
	"errors"
	"fmt"
)

// ErrZeroDimension is returned when a cortical axis is zero.
var ErrZeroDimension = errors.New("cortical dimension must be positive")

// CorticalDimensions is a triple of strictly positive axis sizes for one
// cortical area. Zero on any axis is invalid at construction time.
type CorticalDimensions struct {
	X, Y, Z uint32
}

// NewCorticalDimensions validates that all three axes are non-zero.
func NewCorticalDimensions(x, y, z uint32) (CorticalDimensions, error) {
	if x == 0 || y == 0 || z == 0 {
		return CorticalDimensions{}, fmt.Errorf("%w: got (%d, %d, %d)", ErrZeroDimension, x, y, z)
	}
	return CorticalDimensions{X: x, Y: y, Z: z}, nil
}

// Volume returns the total neuron-grid capacity X*Y*Z.
func (d CorticalDimensions) Volume() uint64 {
	return uint64(d.X) * uint64(d.Y) * uint64(d.Z)
}

// Contains reports whether (x, y, z) lies within [0, X) x [0, Y) x [0, Z).
func (d CorticalDimensions) Contains(x, y, z uint32) bool {
	return x < d.X && y < d.Y && z < d.Z
}

// AxisMask marks, per axis, whether the dimension is fixed by the device
// family (true) or user-defined (false).
type AxisMask struct {
	XFixed, YFixed, ZFixed bool
}

// SingleChannelDimensions pairs CorticalDimensions with an immutable
// per-axis fixed/user-defined mask. Fixed axes cannot be overridden by a
// caller once constructed.
type SingleChannelDimensions struct {
	dims CorticalDimensions
	mask AxisMask
}

// NewSingleChannelDimensions constructs a SingleChannelDimensions from
// already-validated dimensions and an immutable mask.
func NewSingleChannelDimensions(dims CorticalDimensions, mask AxisMask) SingleChannelDimensions {
	return SingleChannelDimensions{dims: dims, mask: mask}
}

// Dimensions returns the underlying CorticalDimensions.
func (s SingleChannelDimensions) Dimensions() CorticalDimensions { return s.dims }

// Mask returns the fixed/user-defined mask.
func (s SingleChannelDimensions) Mask() AxisMask { return s.mask }

// WithOverride returns a SingleChannelDimensions where user-defined axes
// take the values from override and fixed axes are left untouched. It
// fails if override has a zero on any axis that would end up in the
// result.
func (s SingleChannelDimensions) WithOverride(override CorticalDimensions) (SingleChannelDimensions, error) {
	x, y, z := s.dims.X, s.dims.Y, s.dims.Z
	if !s.mask.XFixed {
		x = override.X
	}
	if !s.mask.YFixed {
		y = override.Y
	}
	if !s.mask.ZFixed {
		z = override.Z
	}
	dims, err := NewCorticalDimensions(x, y, z)
	if err != nil {
		return SingleChannelDimensions{}, err
	}
	return SingleChannelDimensions{dims: dims, mask: s.mask}, nil
}
