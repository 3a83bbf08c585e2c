// Package transcode converts normalized floats to and from sparse
// neuron arrays along a one-dimensional axis of a cortical area.
package transcode

// Scheme selects how a normalized float in [-1, 1] is spread across a
// cortical area's axis.
type Scheme int

const (
	// SchemeSinglePositional maps the input to exactly one neuron: the
	// axis index proportional to the input's position in [-1, 1].
	SchemeSinglePositional Scheme = iota
	// SchemeBipolarDualAxis splits sign and magnitude across the two
	// halves of the axis: the lower half encodes negative magnitudes,
	// the upper half encodes non-negative magnitudes.
	SchemeBipolarDualAxis
)
