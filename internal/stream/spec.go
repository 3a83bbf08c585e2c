package stream

import "github.com/feagi/feagi-data-processing/internal/bounds"

// ProcessorKind names one of the built-in Processor variants a
// ProcessorSpec can instantiate. It exists so registration arguments
// are comparable values rather than opaque Processor instances: two
// RegisterGroup calls with identical specs are recognized as the same
// registration even though each call builds fresh processor state.
type ProcessorKind int

const (
	ProcessorIdentity ProcessorKind = iota
	ProcessorSlidingWindowAverage
	ProcessorExponentialMovingAverage
)

// ProcessorSpec describes, in comparable form, one channel's processor.
// WindowLength applies to ProcessorSlidingWindowAverage; Alpha applies
// to ProcessorExponentialMovingAverage. Both fields are ignored by
// ProcessorIdentity.
type ProcessorSpec struct {
	Kind         ProcessorKind
	WindowLength int
	Alpha        float64
}

func newProcessorFromSpec(spec ProcessorSpec) (Processor[bounds.BoundedFloat], error) {
	switch spec.Kind {
	case ProcessorIdentity:
		return Identity[bounds.BoundedFloat]{}, nil
	case ProcessorSlidingWindowAverage:
		return NewSlidingWindowAverage(spec.WindowLength)
	case ProcessorExponentialMovingAverage:
		return NewExponentialMovingAverage(spec.Alpha)
	default:
		return nil, ErrProcessorMismatch
	}
}
