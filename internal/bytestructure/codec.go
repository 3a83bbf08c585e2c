package bytestructure

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Encode serializes payload into a complete Byte Structure frame:
// infallible for well-formed inputs. It fails on an unregistered
// payload type, a MultiFrame nesting violation or more than 255
// children, a CommandJSON body that is not valid UTF-8, image pixel
// buffers whose length disagrees with the declared dimensions, and a
// cortical type that has no wire form.
func Encode(payload Payload) ([]byte, error) {
	entry, ok := registry[payload.TypeCode()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, payload.TypeCode())
	}
	body, err := entry.encodeBody(payload)
	if err != nil {
		return nil, err
	}

	total := HeaderLength + len(body)
	out := make([]byte, total)
	Header{
		GlobalVersion:  CurrentGlobalVersion,
		PayloadType:    payload.TypeCode(),
		PayloadVersion: entry.maxVersion,
		TotalLength:    uint32(total),
	}.put(out)
	copy(out[HeaderLength:], body)
	return out, nil
}

// Decode parses a complete Byte Structure frame, failing with one of
// ErrTruncated, ErrUnknownType, ErrUnsupportedVersion, ErrNestedTooDeep,
// ErrLengthMismatch, or ErrBadUTF8 (CommandJSON bodies only).
func Decode(data []byte) (Frame, error) {
	if len(data) < HeaderLength {
		return Frame{}, fmt.Errorf("%w: got %s, need at least %s for header",
			ErrTruncated, humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(HeaderLength)))
	}
	h := parseHeader(data)
	if h.GlobalVersion != CurrentGlobalVersion {
		return Frame{}, fmt.Errorf("%w: global_version=%d", ErrUnsupportedVersion, h.GlobalVersion)
	}
	if int(h.TotalLength) > len(data) {
		return Frame{}, fmt.Errorf("%w: header declares %s, got %s",
			ErrTruncated, humanize.Bytes(uint64(h.TotalLength)), humanize.Bytes(uint64(len(data))))
	}
	if int(h.TotalLength) != len(data) {
		return Frame{}, fmt.Errorf("%w: header declares %s, got %s",
			ErrLengthMismatch, humanize.Bytes(uint64(h.TotalLength)), humanize.Bytes(uint64(len(data))))
	}

	entry, ok := registry[h.PayloadType]
	if !ok {
		return Frame{}, fmt.Errorf("%w: payload_type=%d", ErrUnknownType, h.PayloadType)
	}
	if h.PayloadVersion > entry.maxVersion {
		return Frame{}, fmt.Errorf("%w: payload_version=%d", ErrUnsupportedVersion, h.PayloadVersion)
	}

	body := data[HeaderLength:]
	payload, err := entry.decodeBody(body, h.PayloadVersion)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Header: h, Payload: payload}, nil
}

// PeekType classifies a frame's payload type without decoding its body.
func PeekType(data []byte) (TypeCode, error) {
	if len(data) < HeaderLength {
		return 0, fmt.Errorf("%w: got %s, need at least %s for header",
			ErrTruncated, humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(HeaderLength)))
	}
	return TypeCode(data[1]), nil
}

// needBytes fails with ErrTruncated, including a humanized accounting of
// what was available versus what the body declared it needed.
func needBytes(have, want int) error {
	if have < want {
		return fmt.Errorf("%w: got %s, need %s", ErrTruncated, humanize.Bytes(uint64(have)), humanize.Bytes(uint64(want)))
	}
	return nil
}
