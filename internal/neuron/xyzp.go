// Package neuron holds the sparse neuron representation shared by every
// cortical area: individual (X, Y, Z, P) samples and the parallel-array
// collection of them, plus the cortical-identifier-keyed map of such
// collections that forms one frame's payload.
package neuron

// Sample is a single neuron activation relative to a cortical area's
// origin: grid coordinates X, Y, Z and a signed potential P.
type Sample struct {
	X, Y, Z uint32
	P       float32
}

// Array is a sparse, unordered collection of neuron samples stored as four
// parallel equal-length slices (Xs, Ys, Zs, Ps) rather than a slice of
// Sample, for cache locality and bulk I/O. Absent coordinates imply zero
// potential. Element i of each slice together forms one sample; iteration
// order is not part of the public contract.
//
// The equal-length invariant is structural, not a per-call runtime check:
// the only mutator is Append, which always grows all four slices together,
// so it is impossible to construct an Array value (other than through
// unsafe direct field manipulation, which this package never does) whose
// slices disagree in length.
type Array struct {
	xs, ys, zs []uint32
	ps         []float32
}

// NewArray returns an empty Array, optionally pre-sized for capacity hints.
func NewArray(capacityHint int) *Array {
	return &Array{
		xs: make([]uint32, 0, capacityHint),
		ys: make([]uint32, 0, capacityHint),
		zs: make([]uint32, 0, capacityHint),
		ps: make([]float32, 0, capacityHint),
	}
}

// NewArrayFromSamples builds an Array from a slice of Sample values.
func NewArrayFromSamples(samples []Sample) *Array {
	a := NewArray(len(samples))
	for _, s := range samples {
		a.Append(s.X, s.Y, s.Z, s.P)
	}
	return a
}

// Append adds one sample to the array, growing all four parallel slices
// together.
func (a *Array) Append(x, y, z uint32, p float32) {
	a.xs = append(a.xs, x)
	a.ys = append(a.ys, y)
	a.zs = append(a.zs, z)
	a.ps = append(a.ps, p)
}

// Len returns the number of samples.
func (a *Array) Len() int { return len(a.xs) }

// At returns the i-th sample.
func (a *Array) At(i int) Sample {
	return Sample{X: a.xs[i], Y: a.ys[i], Z: a.zs[i], P: a.ps[i]}
}

// Xs, Ys, Zs, Ps return read-only views of the parallel coordinate and
// potential slices, for bulk consumers (e.g. the Byte Structure codec)
// that want to avoid per-sample Sample allocation.
func (a *Array) Xs() []uint32  { return a.xs }
func (a *Array) Ys() []uint32  { return a.ys }
func (a *Array) Zs() []uint32  { return a.zs }
func (a *Array) Ps() []float32 { return a.ps }

// FromParallelSlices builds an Array directly from four equal-length
// slices, failing if the lengths disagree. This is the one place the
// structural invariant is verified against externally-supplied data (e.g.
// a Byte Structure decoder reconstructing an Array from wire bytes).
func FromParallelSlices(xs, ys, zs []uint32, ps []float32) (*Array, error) {
	n := len(xs)
	if len(ys) != n || len(zs) != n || len(ps) != n {
		return nil, &LengthMismatchError{LenXs: len(xs), LenYs: len(ys), LenZs: len(zs), LenPs: len(ps)}
	}
	return &Array{
		xs: append([]uint32(nil), xs...),
		ys: append([]uint32(nil), ys...),
		zs: append([]uint32(nil), zs...),
		ps: append([]float32(nil), ps...),
	}, nil
}

// Equal reports whether a and b contain the same samples in the same
// order. NaN potentials are never equal to anything, including another
// NaN, matching ordinary float equality semantics.
func (a *Array) Equal(b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.xs {
		if a.xs[i] != b.xs[i] || a.ys[i] != b.ys[i] || a.zs[i] != b.zs[i] || a.ps[i] != b.ps[i] {
			return false
		}
	}
	return true
}
