package transcode

import "errors"

var (
	// ErrEmptyArray is returned when a decoder is given a neuron array
	// with no samples.
	ErrEmptyArray = errors.New("transcode: neuron array has no samples to decode")
	// ErrAmbiguousArray is returned when a decoder is given a neuron
	// array with more than one sample and the scheme expects exactly
	// one active neuron.
	ErrAmbiguousArray = errors.New("transcode: neuron array has more than one sample")
	// ErrUnknownScheme is returned when an Encoder or Decoder is
	// constructed with a Scheme value outside the declared set.
	ErrUnknownScheme = errors.New("transcode: unknown encoding scheme")
)
