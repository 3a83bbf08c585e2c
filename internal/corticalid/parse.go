package corticalid

import (
	"fmt"

	"github.com/feagi/feagi-data-processing/internal/bounds"
)

// Parse validates and decodes a six-character wire-form cortical
// identifier into its canonical CorticalType. Parsing is table-driven:
// dispatch on the first byte, then for input/output look up the
// three-byte family in the canonical catalogue.
func Parse(s string) (CorticalType, error) {
	if len(s) != Length {
		return nil, fmt.Errorf("%w: got %d bytes", ErrWrongLength, len(s))
	}

	switch s[0] {
	case 'c':
		suffix, err := validSuffix(s[1:])
		if err != nil {
			return nil, err
		}
		return Custom{Suffix: suffix}, nil
	case 'm':
		suffix, err := validSuffix(s[1:])
		if err != nil {
			return nil, err
		}
		return Memory{Suffix: suffix}, nil
	case '_':
		kind, ok := lookupCore(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCoreID, s)
		}
		return Core{Kind: kind}, nil
	case 'i':
		family := s[1:4]
		kind, ok := lookupSensor(family)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
		}
		grouping, err := parseGroupingHex(s[4:6])
		if err != nil {
			return nil, err
		}
		return Input{Sensor: kind, Grouping: grouping}, nil
	case 'o':
		family := s[1:4]
		kind, ok := lookupMotor(family)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
		}
		grouping, err := parseGroupingHex(s[4:6])
		if err != nil {
			return nil, err
		}
		return Output{Motor: kind, Grouping: grouping}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadDiscriminator, s[0:1])
	}
}

// validSuffix checks that every byte of a 5-character custom/memory suffix
// is in [A-Za-z0-9_]. A suffix that is not exactly 5 bytes fails with
// ErrWrongLength.
func validSuffix(s string) ([5]byte, error) {
	var out [5]byte
	if len(s) != len(out) {
		return out, fmt.Errorf("%w: suffix %q is %d bytes, want %d", ErrWrongLength, s, len(s), len(out))
	}
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return out, fmt.Errorf("%w: %q", ErrBadCharacter, s)
		}
		out[i] = s[i]
	}
	return out, nil
}

func isIdentChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	default:
		return false
	}
}

// parseGroupingHex parses exactly two lowercase hex digits into a
// GroupingIndex. Uppercase hex digits are rejected: the hex pair must be
// strictly lowercase, since the vision family's case convention is
// already load-bearing on the preceding byte and mixing case
// conventions within one identifier would be ambiguous to read.
func parseGroupingHex(s string) (bounds.GroupingIndex, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadGroupingIndex, s)
	}
	hi, ok := lowerHexDigit(s[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadGroupingIndex, s)
	}
	lo, ok := lowerHexDigit(s[1])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadGroupingIndex, s)
	}
	return bounds.GroupingIndex(hi<<4 | lo), nil
}

func lowerHexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	default:
		return 0, false
	}
}
