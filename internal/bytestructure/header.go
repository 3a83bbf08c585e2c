// Package bytestructure implements the universal binary frame container
// ("Byte Structure") shared by every payload moving between the physical
// side and FEAGI: a fixed 7-byte header, a type-dependent body, and
// optionally a trailer of nested frames one level deep.
package bytestructure

import "encoding/binary"

// HeaderLength is the fixed size, in bytes, of every frame's header.
const HeaderLength = 7

// CurrentGlobalVersion is the only global_version byte this codec emits or
// accepts.
const CurrentGlobalVersion = 1

// Header is the fixed-layout prefix of every frame.
type Header struct {
	GlobalVersion uint8
	PayloadType   TypeCode
	PayloadVersion uint8
	TotalLength   uint32
}

// put writes the 7-byte header into dst, which must be at least
// HeaderLength bytes.
func (h Header) put(dst []byte) {
	dst[0] = h.GlobalVersion
	dst[1] = byte(h.PayloadType)
	dst[2] = h.PayloadVersion
	binary.LittleEndian.PutUint32(dst[3:7], h.TotalLength)
}

// parseHeader reads a Header from the first HeaderLength bytes of src.
// Callers must already have checked len(src) >= HeaderLength.
func parseHeader(src []byte) Header {
	return Header{
		GlobalVersion:  src[0],
		PayloadType:    TypeCode(src[1]),
		PayloadVersion: src[2],
		TotalLength:    binary.LittleEndian.Uint32(src[3:7]),
	}
}
