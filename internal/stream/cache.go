package stream

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/feagi/feagi-data-processing/internal/bounds"
	"github.com/feagi/feagi-data-processing/internal/corticalid"
	"github.com/feagi/feagi-data-processing/internal/diagnostics"
)

// Callback is invoked synchronously, inside Submit, after the
// processor step for the channel it subscribes to.
type Callback func(emitted bounds.BoundedFloat)

type groupKey struct {
	area     corticalid.CorticalType
	grouping bounds.GroupingIndex
}

type subscription struct {
	id       uuid.UUID
	callback Callback
}

type channelState struct {
	processor   Processor[bounds.BoundedFloat]
	latest      bounds.BoundedFloat
	hasLatest   bool
	subscribers []subscription
}

type groupState struct {
	resolution   int
	channelCount int
	specs        []ProcessorSpec
	channels     []*channelState
}

// DeviceGroupCache owns, per cortical area and grouping index, the
// per-channel processor state, the latest emitted sample, and the
// subscriber list. Callers must serialize submissions to a given
// (area, grouping, channel) themselves; the cache's mutex only makes
// concurrent reads (Latest, subscriber bookkeeping) safe alongside a
// single writer, it does not itself provide cross-channel ordering.
type DeviceGroupCache struct {
	mu        sync.RWMutex
	groups    map[groupKey]*groupState
	subs      map[uuid.UUID]groupKey
	subIdx    map[uuid.UUID]int
	sink      diagnostics.Sink
	maxWindow int
}

// NewDeviceGroupCache returns an empty cache. Subscriber callback
// failures are reported to diagnostics.Default (a no-op sink unless
// replaced) until SetSink is called, and sliding-window
// specs are honored as given unless SetMaxSlidingWindow is called.
func NewDeviceGroupCache() *DeviceGroupCache {
	return &DeviceGroupCache{
		groups: make(map[groupKey]*groupState),
		subs:   make(map[uuid.UUID]groupKey),
		subIdx: make(map[uuid.UUID]int),
	}
}

// SetSink directs subscriber callback failure reports to sink instead
// of diagnostics.Default.
func (c *DeviceGroupCache) SetSink(sink diagnostics.Sink) {
	c.mu.Lock()
	c.sink = sink
	c.mu.Unlock()
}

// SetMaxSlidingWindow caps the window length a ProcessorSlidingWindowAverage
// spec may request: a spec requesting 0 (unspecified) is given max, and a
// spec requesting more than max is clamped to it. A value of 0 leaves
// every spec's requested window length untouched.
func (c *DeviceGroupCache) SetMaxSlidingWindow(max int) {
	c.mu.Lock()
	c.maxWindow = max
	c.mu.Unlock()
}

// RegisterGroup declares a cortical area's channel layout and
// per-channel processors. Calling it again for the same (area,
// grouping) is a no-op if resolution, channelCount, and specs are
// identical to the first call; otherwise it fails with
// ErrReregistration.
func (c *DeviceGroupCache) RegisterGroup(area corticalid.CorticalType, grouping bounds.GroupingIndex, resolution, channelCount int, specs []ProcessorSpec) error {
	if len(specs) != channelCount {
		return fmt.Errorf("%w: %d channels, %d processor specs", ErrProcessorMismatch, channelCount, len(specs))
	}

	key := groupKey{area: area, grouping: grouping}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.groups[key]; ok {
		if existing.resolution == resolution && existing.channelCount == channelCount && reflect.DeepEqual(existing.specs, specs) {
			return nil
		}
		return fmt.Errorf("%w: area=%v grouping=%d", ErrReregistration, area, grouping)
	}

	channels := make([]*channelState, channelCount)
	for i, spec := range specs {
		proc, err := newProcessorFromSpec(c.boundedSpec(spec))
		if err != nil {
			return err
		}
		channels[i] = &channelState{processor: proc}
	}

	c.groups[key] = &groupState{
		resolution:   resolution,
		channelCount: channelCount,
		specs:        append([]ProcessorSpec(nil), specs...),
		channels:     channels,
	}
	return nil
}

// boundedSpec must be called with c.mu held. It applies c.maxWindow to a
// sliding-window spec, leaving every other kind untouched.
func (c *DeviceGroupCache) boundedSpec(spec ProcessorSpec) ProcessorSpec {
	if spec.Kind != ProcessorSlidingWindowAverage || c.maxWindow <= 0 {
		return spec
	}
	if spec.WindowLength <= 0 || spec.WindowLength > c.maxWindow {
		spec.WindowLength = c.maxWindow
	}
	return spec
}

// Submit feeds a new sample through the channel's processor, stores
// the emitted sample, and invokes subscribers in registration order.
// A subscriber whose callback panics is isolated: its panic is
// recovered and reported to the cache's diagnostic sink, but it
// neither corrupts cache state (already updated before callbacks run)
// nor stops the remaining subscribers from being called. The returned
// error also reports the failure so a caller with no sink configured
// still learns about it.
func (c *DeviceGroupCache) Submit(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex, sample bounds.BoundedFloat) (bounds.BoundedFloat, error) {
	c.mu.Lock()
	cs, err := c.channelLocked(area, grouping, channel)
	if err != nil {
		c.mu.Unlock()
		return bounds.BoundedFloat{}, err
	}

	emitted := cs.processor.Step(sample)
	cs.latest = emitted
	cs.hasLatest = true
	subscribers := append([]subscription(nil), cs.subscribers...)
	sink := c.sink
	c.mu.Unlock()

	var panicked []uuid.UUID
	for _, sub := range subscribers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					panicked = append(panicked, sub.id)
					diagnostics.ReportOrDefault(sink, diagnostics.Event{
						Level:   diagnostics.LevelError,
						Message: "subscriber callback panicked",
						Fields:  map[string]any{"subscription": sub.id, "area": area, "grouping": grouping, "channel": channel, "recovered": r},
					})
				}
			}()
			sub.callback(emitted)
		}()
	}
	if len(panicked) > 0 {
		return emitted, fmt.Errorf("stream: %d subscriber callback(s) panicked: %v", len(panicked), panicked)
	}
	return emitted, nil
}

// Subscribe registers a callback to be invoked on every future Submit
// for this channel, returning a handle for later Unsubscribe.
func (c *DeviceGroupCache) Subscribe(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex, callback Callback) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cs, err := c.channelLocked(area, grouping, channel)
	if err != nil {
		return uuid.UUID{}, err
	}

	id := uuid.New()
	cs.subscribers = append(cs.subscribers, subscription{id: id, callback: callback})
	c.subs[id] = groupKey{area: area, grouping: grouping}
	c.subIdx[id] = int(channel)
	return id, nil
}

// Unsubscribe removes a previously registered callback.
func (c *DeviceGroupCache) Unsubscribe(handle uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, ok := c.subs[handle]
	if !ok {
		return ErrUnknownSubscription
	}
	channel := c.subIdx[handle]

	group := c.groups[key]
	cs := group.channels[channel]
	for i, sub := range cs.subscribers {
		if sub.id == handle {
			cs.subscribers = append(cs.subscribers[:i], cs.subscribers[i+1:]...)
			break
		}
	}
	delete(c.subs, handle)
	delete(c.subIdx, handle)
	return nil
}

// Latest returns the last emitted value for a channel, or (zero,
// false) if the channel has never received a submission.
func (c *DeviceGroupCache) Latest(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex) (bounds.BoundedFloat, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cs, err := c.channelLocked(area, grouping, channel)
	if err != nil {
		return bounds.BoundedFloat{}, false
	}
	return cs.latest, cs.hasLatest
}

// channelLocked must be called with c.mu held (read or write).
func (c *DeviceGroupCache) channelLocked(area corticalid.CorticalType, grouping bounds.GroupingIndex, channel bounds.IOChannelIndex) (*channelState, error) {
	group, ok := c.groups[groupKey{area: area, grouping: grouping}]
	if !ok || int(channel) >= group.channelCount {
		return nil, fmt.Errorf("%w: area=%v grouping=%d channel=%d", ErrUnknownChannel, area, grouping, channel)
	}
	return group.channels[channel], nil
}
