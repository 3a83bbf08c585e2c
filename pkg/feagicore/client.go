// Package feagicore is the public facade over the library's internal
// subsystems: cortical identifiers, the neuron wire format, the
// per-channel stream cache, and the float/image encoders, all reachable
// through one Client.
package feagicore

import (
	"github.com/google/uuid"

	"github.com/feagi/feagi-data-processing/internal/bounds"
	"github.com/feagi/feagi-data-processing/internal/bytestructure"
	"github.com/feagi/feagi-data-processing/internal/config"
	"github.com/feagi/feagi-data-processing/internal/corticalid"
	"github.com/feagi/feagi-data-processing/internal/diagnostics"
	"github.com/feagi/feagi-data-processing/internal/image"
	"github.com/feagi/feagi-data-processing/internal/neuron"
	"github.com/feagi/feagi-data-processing/internal/stream"
	"github.com/feagi/feagi-data-processing/internal/transcode"
)

// Options configures a Client. The zero value is valid: it runs with
// the library's default tuning and the ZerologSink that New builds
// when Sink is nil.
type Options struct {
	Sink   diagnostics.Sink
	Tuning *config.Tuning
}

// Client owns one process's device-group cache and diagnostic
// configuration. It is not safe for concurrent use by multiple
// goroutines submitting to the same channel; callers serialize that
// themselves, per the library's concurrency model.
type Client struct {
	cache  *stream.DeviceGroupCache
	sink   diagnostics.Sink
	tuning config.Tuning
}

// New returns a Client configured per opts. When opts.Sink is nil, the
// Client builds its own diagnostics.ZerologSink filtered at
// tuning.DefaultDiagnosticLevel rather than staying silent, since a
// configured minimum level implies something is meant to be reported.
func New(opts Options) *Client {
	tuning := config.Default()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}

	sink := opts.Sink
	if sink == nil {
		level, err := diagnostics.ParseLevel(tuning.DefaultDiagnosticLevel)
		if err != nil {
			level = diagnostics.LevelWarn
		}
		sink = diagnostics.NewZerologSink("feagicore", level)
	}

	cache := stream.NewDeviceGroupCache()
	cache.SetSink(sink)
	cache.SetMaxSlidingWindow(tuning.DefaultSlidingWindowCapacity)

	return &Client{cache: cache, sink: sink, tuning: tuning}
}

// Tuning returns the tuning this Client was configured with.
func (c *Client) Tuning() config.Tuning { return c.tuning }

// ParseCorticalID decodes a six-character cortical identifier.
func ParseCorticalID(s string) (corticalid.CorticalType, error) {
	return corticalid.Parse(s)
}

// EmitCorticalID renders a cortical identifier back to its six-character
// wire form.
func EmitCorticalID(t corticalid.CorticalType) (string, error) {
	return corticalid.EmitString(t)
}

// EncodeFrame serializes a Byte Structure payload into wire bytes.
func EncodeFrame(payload bytestructure.Payload) ([]byte, error) {
	return bytestructure.Encode(payload)
}

// DecodeFrame parses wire bytes into a Byte Structure frame.
func DecodeFrame(data []byte) (bytestructure.Frame, error) {
	return bytestructure.Decode(data)
}

// RegisterGroup declares a cortical area's channel layout and
// per-channel processors on this Client's device-group cache.
func (c *Client) RegisterGroup(area corticalid.CorticalType, grouping bounds.GroupingIndex, resolution, channelCount int, specs []stream.ProcessorSpec) error {
	return c.cache.RegisterGroup(area, grouping, resolution, channelCount, specs)
}

// Submit feeds one sample into a registered channel.
func (c *Client) Submit(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex, sample bounds.BoundedFloat) (bounds.BoundedFloat, error) {
	return c.cache.Submit(area, grouping, channel, sample)
}

// Subscribe registers a callback for a channel's emitted samples.
func (c *Client) Subscribe(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex, callback stream.Callback) (uuid.UUID, error) {
	return c.cache.Subscribe(area, grouping, channel, callback)
}

// Unsubscribe removes a previously registered callback.
func (c *Client) Unsubscribe(handle uuid.UUID) error {
	return c.cache.Unsubscribe(handle)
}

// Latest returns a channel's last emitted sample.
func (c *Client) Latest(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex) (bounds.BoundedFloat, bool) {
	return c.cache.Latest(area, grouping, channel)
}

// NewFloatEncoder builds a normalized-float encoder over dims using
// scheme.
func NewFloatEncoder(dims bounds.CorticalDimensions, scheme transcode.Scheme) (*transcode.Encoder, error) {
	return transcode.NewEncoder(dims, scheme)
}

// NewFloatDecoder builds the decoder paired with NewFloatEncoder.
func NewFloatDecoder(dims bounds.CorticalDimensions, scheme transcode.Scheme) (*transcode.Decoder, error) {
	return transcode.NewDecoder(dims, scheme)
}

// SegmentImage splits a raw frame into the nine-cell vision grid.
func SegmentImage(frame image.Frame, desc image.SegmentationDescriptor) (image.Segmented, error) {
	return image.Segment(frame, desc)
}

// EncodeSegmentedImage converts a segmented frame into neuron arrays
// keyed by the nine vision cortical identifiers.
func EncodeSegmentedImage(seg image.Segmented, grouping bounds.GroupingIndex, color bool) (*neuron.MappedData, error) {
	return image.EncodeSegmented(seg, grouping, color)
}
