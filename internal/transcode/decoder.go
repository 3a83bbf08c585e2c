package transcode

import (
	"github.com/feagi/feagi-data-processing/internal/bounds"
	"github.com/feagi/feagi-data-processing/internal/neuron"
)

// Decoder inverts an Encoder: given a neuron array produced by a
// round-trip through the paired scheme, it reconstructs a normalized
// float with maximum absolute error 1/resolution.
type Decoder struct {
	dims   bounds.CorticalDimensions
	scheme Scheme
}

// NewDecoder returns a Decoder targeting dims under scheme. dims and
// scheme must match the Encoder that produced the arrays it decodes.
func NewDecoder(dims bounds.CorticalDimensions, scheme Scheme) (*Decoder, error) {
	if scheme != SchemeSinglePositional && scheme != SchemeBipolarDualAxis {
		return nil, ErrUnknownScheme
	}
	return &Decoder{dims: dims, scheme: scheme}, nil
}

// Decode reconstructs a normalized float from arr, which must carry
// exactly one sample.
func (d *Decoder) Decode(arr *neuron.Array) (bounds.NormalizedFloat, error) {
	switch arr.Len() {
	case 0:
		return bounds.NormalizedFloat{}, ErrEmptyArray
	case 1:
		// handled below
	default:
		return bounds.NormalizedFloat{}, ErrAmbiguousArray
	}

	idx := arr.At(0).X
	r := d.dims.X

	var v float64
	if d.scheme == SchemeBipolarDualAxis {
		v = decodeBipolarValue(idx, r)
	} else {
		v = decodeSinglePositionalValue(idx, r)
	}

	nf, err := bounds.NewNormalizedFloat(v)
	if err != nil {
		return bounds.ClampNormalized(v), nil
	}
	return nf, nil
}

// decodeSinglePositionalValue reconstructs the center of the bin index
// i mapped to, the value with minimum worst-case error against any v
// the encoder could have produced i from: (idx+0.5)*2/r - 1, computed
// as the single quotient (2*idx+1-r)/r so that the result is the
// correctly rounded bin center (e.g. exactly 0.05 for idx 10 at r 20).
func decodeSinglePositionalValue(idx, r uint32) float64 {
	return float64(2*int64(idx)+1-int64(r)) / float64(r)
}

func decodeBipolarValue(idx, r uint32) float64 {
	lowerHalf, upperHalf := axisHalves(r)
	if idx >= lowerHalf {
		magnitude := (float64(idx-lowerHalf) + 0.5) / float64(upperHalf)
		return magnitude
	}
	magnitude := (float64(lowerHalf-1-idx) + 0.5) / float64(lowerHalf)
	return -magnitude
}
