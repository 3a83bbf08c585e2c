package bytestructure

import "errors"

var (
	// ErrTruncated is returned when fewer bytes are available than the
	// header or body declares.
	ErrTruncated = errors.New("byte structure truncated")
	// ErrUnknownType is returned when the payload_type byte has no
	// registered codec.
	ErrUnknownType = errors.New("byte structure has unknown payload type")
	// ErrUnsupportedVersion is returned when global_version or
	// payload_version exceeds what this codec supports.
	ErrUnsupportedVersion = errors.New("byte structure version is unsupported")
	// ErrNestedTooDeep is returned when a MultiFrame body contains a
	// child that is itself a MultiFrame.
	ErrNestedTooDeep = errors.New("multi-frame nesting exceeds one level")
	// ErrLengthMismatch is returned when the header's declared length
	// does not match the bytes actually produced or consumed.
	ErrLengthMismatch = errors.New("byte structure length field mismatch")
	// ErrBadUTF8 is returned when a CommandJSON body is not valid UTF-8.
	ErrBadUTF8 = errors.New("command body is not valid UTF-8")
)
