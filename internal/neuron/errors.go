package neuron

import "fmt"

// LengthMismatchError reports that the four parallel slices backing a
// would-be Array disagree in length.
type LengthMismatchError struct {
	LenXs, LenYs, LenZs, LenPs int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("neuron array length mismatch: xs=%d ys=%d zs=%d ps=%d",
		e.LenXs, e.LenYs, e.LenZs, e.LenPs)
}
