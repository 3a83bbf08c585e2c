package transcode

import (
	"math"

	"github.com/feagi/feagi-data-processing/internal/bounds"
	"github.com/feagi/feagi-data-processing/internal/neuron"
)

// Encoder turns a normalized float into a single-area neuron array
// along one axis (X) of the target cortical dimensions, at a
// resolution equal to that axis's size.
type Encoder struct {
	dims   bounds.CorticalDimensions
	scheme Scheme
}

// NewEncoder returns an Encoder targeting dims under scheme.
func NewEncoder(dims bounds.CorticalDimensions, scheme Scheme) (*Encoder, error) {
	if scheme != SchemeSinglePositional && scheme != SchemeBipolarDualAxis {
		return nil, ErrUnknownScheme
	}
	return &Encoder{dims: dims, scheme: scheme}, nil
}

// Resolution returns the axis size this encoder spreads input over.
func (e *Encoder) Resolution() uint32 { return e.dims.X }

// Encode converts v into a neuron array with exactly one active sample.
func (e *Encoder) Encode(v bounds.NormalizedFloat) *neuron.Array {
	r := e.dims.X
	var idx uint32
	switch e.scheme {
	case SchemeBipolarDualAxis:
		idx = encodeBipolarIndex(v.Value(), r)
	default:
		idx = encodeSinglePositionalIndex(v.Value(), r)
	}

	arr := neuron.NewArray(1)
	arr.Append(idx, 0, 0, 1.0)
	return arr
}

// encodeSinglePositionalIndex maps v in [-1, 1] to i = floor((v+1)/2 * r),
// clamped to [0, r-1].
func encodeSinglePositionalIndex(v float64, r uint32) uint32 {
	idx := int(math.Floor((v + 1) / 2 * float64(r)))
	return clampIndex(idx, r)
}

// encodeBipolarIndex splits the axis into a lower half for negative
// magnitudes and an upper half for non-negative magnitudes.
func encodeBipolarIndex(v float64, r uint32) uint32 {
	lowerHalf, upperHalf := axisHalves(r)
	magnitude := math.Abs(v)

	if v >= 0 {
		m := clampIndex(int(math.Floor(magnitude*float64(upperHalf))), upperHalf)
		return lowerHalf + m
	}
	m := clampIndex(int(math.Floor(magnitude*float64(lowerHalf))), lowerHalf)
	return lowerHalf - 1 - m
}

func axisHalves(r uint32) (lowerHalf, upperHalf uint32) {
	lowerHalf = r / 2
	upperHalf = r - lowerHalf
	return
}

func clampIndex(idx int, r uint32) uint32 {
	if idx < 0 {
		return 0
	}
	if idx >= int(r) {
		return r - 1
	}
	return uint32(idx)
}
