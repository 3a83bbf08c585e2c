package bytestructure

// TypeCode enumerates the stable wire-level payload type codes carried
// in every frame header.
type TypeCode uint8

const (
	TypeReserved            TypeCode = 0
	TypeCommandJSON         TypeCode = 1
	TypeNeuronXYZP          TypeCode = 2
	TypeMultiFrame          TypeCode = 3
	TypeAuthentication      TypeCode = 4
	TypeImageFrame          TypeCode = 5
	TypeSegmentedImageFrame TypeCode = 6
)

func (t TypeCode) String() string {
	switch t {
	case TypeReserved:
		return "Reserved"
	case TypeCommandJSON:
		return "CommandJSON"
	case TypeNeuronXYZP:
		return "NeuronXYZP"
	case TypeMultiFrame:
		return "MultiFrame"
	case TypeAuthentication:
		return "Authentication"
	case TypeImageFrame:
		return "ImageFrame"
	case TypeSegmentedImageFrame:
		return "SegmentedImageFrame"
	default:
		return "Unknown"
	}
}

// Payload is the capability every value must satisfy to travel inside a
// Byte Structure frame: it knows its own wire type code. Encoding and
// decoding of the body bytes live in the static registry (registry.go),
// not as methods on Payload, so the registry stays the single place that
// knows how to turn bytes into a concrete Go type and back.
type Payload interface {
	TypeCode() TypeCode
}

// Frame is a fully decoded Byte Structure: the header plus the decoded
// payload value.
type Frame struct {
	Header  Header
	Payload Payload
}
