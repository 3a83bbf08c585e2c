package bytestructure

import (
	"encoding/binary"
	"fmt"
)

// MultiFramePayload bundles several independently-framed payloads (each
// already a complete header+body frame) into one wire message. A
// MultiFrame may not itself contain a MultiFrame: nesting stops at one
// level so a decoder never needs unbounded recursion to find bottom.
type MultiFramePayload struct {
	Frames []Payload
}

// TypeCode implements Payload.
func (MultiFramePayload) TypeCode() TypeCode { return TypeMultiFrame }

// multiFrameCountLength is the width of the child-count field: a single
// byte, since a MultiFrame's child count is small and bounded (nesting
// stops at one level, so K never approaches 256 in practice).
const multiFrameCountLength = 1

func encodeMultiFrameBody(p Payload) ([]byte, error) {
	mf := p.(MultiFramePayload)
	if len(mf.Frames) > 255 {
		return nil, fmt.Errorf("%w: %d children exceeds 255", ErrLengthMismatch, len(mf.Frames))
	}

	encoded := make([][]byte, len(mf.Frames))
	childrenSize := 0
	for i, child := range mf.Frames {
		if child.TypeCode() == TypeMultiFrame {
			return nil, ErrNestedTooDeep
		}
		enc, err := Encode(child)
		if err != nil {
			return nil, fmt.Errorf("multi frame child %d: %w", i, err)
		}
		encoded[i] = enc
		childrenSize += len(enc)
	}

	k := len(encoded)
	offsetTableStart := multiFrameCountLength
	childrenStart := offsetTableStart + k*4
	out := make([]byte, childrenStart+childrenSize)

	out[0] = byte(k)

	offset := childrenStart
	for i, enc := range encoded {
		binary.LittleEndian.PutUint32(out[offsetTableStart+i*4:offsetTableStart+i*4+4], uint32(offset))
		copy(out[offset:offset+len(enc)], enc)
		offset += len(enc)
	}
	return out, nil
}

func decodeMultiFrameBody(body []byte, _ uint8) (Payload, error) {
	if err := needBytes(len(body), multiFrameCountLength); err != nil {
		return nil, err
	}
	k := int(body[0])
	offsetTableStart := multiFrameCountLength

	if err := needBytes(len(body)-offsetTableStart, k*4); err != nil {
		return nil, err
	}

	frames := make([]Payload, k)
	for i := 0; i < k; i++ {
		entry := offsetTableStart + i*4
		start := int(binary.LittleEndian.Uint32(body[entry : entry+4]))
		if start < 0 || start > len(body) {
			return nil, fmt.Errorf("%w: child %d offset %d out of range", ErrLengthMismatch, i, start)
		}

		if err := needBytes(len(body)-start, HeaderLength); err != nil {
			return nil, err
		}
		childType, err := PeekType(body[start:])
		if err != nil {
			return nil, err
		}
		if childType == TypeMultiFrame {
			return nil, ErrNestedTooDeep
		}
		childLen := int(parseHeader(body[start:]).TotalLength)

		if err := needBytes(len(body)-start, childLen); err != nil {
			return nil, err
		}

		childFrame, err := Decode(body[start : start+childLen])
		if err != nil {
			return nil, fmt.Errorf("multi frame child %d: %w", i, err)
		}
		frames[i] = childFrame.Payload
	}

	return MultiFramePayload{Frames: frames}, nil
}
