package corticalid

import (
	"fmt"

	"github.com/feagi/feagi-data-processing/internal/bounds"
)

const lowerHexAlphabet = "0123456789abcdef"

// Emit is the exact inverse of Parse: emit(parse(s)) == s and
// parse(emit(t)) == t both hold for every valid identifier.
func Emit(t CorticalType) ([Length]byte, error) {
	var out [Length]byte
	switch v := t.(type) {
	case Custom:
		out[0] = 'c'
		copy(out[1:], v.Suffix[:])
		return out, nil
	case Memory:
		out[0] = 'm'
		copy(out[1:], v.Suffix[:])
		return out, nil
	case Core:
		id, ok := coreID(v.Kind)
		if !ok {
			return out, fmt.Errorf("%w: unregistered CoreKind %d", ErrUnknownCoreID, v.Kind)
		}
		copy(out[:], id)
		return out, nil
	case Input:
		code, ok := sensorCode(v.Sensor)
		if !ok {
			return out, fmt.Errorf("%w: unregistered SensorKind %d", ErrUnknownFamily, v.Sensor)
		}
		out[0] = 'i'
		copy(out[1:4], code)
		emitGroupingHex(out[4:6], v.Grouping)
		return out, nil
	case Output:
		code, ok := motorCode(v.Motor)
		if !ok {
			return out, fmt.Errorf("%w: unregistered MotorKind %d", ErrUnknownFamily, v.Motor)
		}
		out[0] = 'o'
		copy(out[1:4], code)
		emitGroupingHex(out[4:6], v.Grouping)
		return out, nil
	default:
		return out, fmt.Errorf("%w: unrecognized CorticalType %T", ErrBadDiscriminator, t)
	}
}

// EmitString is Emit with the result converted to a string for display and
// for callers that need the wire form as text (e.g. map keys in
// CorticalMappedNeuronData).
func EmitString(t CorticalType) (string, error) {
	b, err := Emit(t)
	if err != nil {
		return "", err
	}
	return string(b[:]), nil
}

func emitGroupingHex(dst []byte, g bounds.GroupingIndex) {
	dst[0] = lowerHexAlphabet[byte(g)>>4]
	dst[1] = lowerHexAlphabet[byte(g)&0x0f]
}
