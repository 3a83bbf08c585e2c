package stream

import "errors"

var (
	// ErrInvalidWindow is returned when a sliding-window processor is
	// constructed with a window length below 1.
	ErrInvalidWindow = errors.New("stream: sliding window length must be at least 1")
	// ErrInvalidAlpha is returned when an exponential moving average is
	// constructed with a decay factor outside (0, 1].
	ErrInvalidAlpha = errors.New("stream: exponential moving average alpha must be in (0, 1]")
	// ErrReregistration is returned when RegisterGroup is called again
	// for an already-registered (type, grouping) pair with different
	// arguments than the first registration.
	ErrReregistration = errors.New("stream: group already registered with different arguments")
	// ErrUnknownChannel is returned when submit, subscribe, or latest
	// addresses a (type, grouping, channel) that was never registered.
	ErrUnknownChannel = errors.New("stream: unknown channel")
	// ErrProcessorMismatch is returned when the number of per-channel
	// processor specs does not match the registered channel count.
	ErrProcessorMismatch = errors.New("stream: processor count does not match channel count")
	// ErrUnknownSubscription is returned when Unsubscribe is called with
	// a handle that does not correspond to an active subscription.
	ErrUnknownSubscription = errors.New("stream: unknown subscription handle")
)
