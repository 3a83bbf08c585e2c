package bytestructure

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// CommandJSONPayload is an arbitrary UTF-8 JSON command body (payload_type
// 1). The library does not interpret the JSON's schema — that is FEAGI's
// and the agent's concern — it only guarantees the bytes round-trip as
// valid UTF-8 JSON.
type CommandJSONPayload struct {
	JSON json.RawMessage
}

// TypeCode implements Payload.
func (CommandJSONPayload) TypeCode() TypeCode { return TypeCommandJSON }

// NewCommandJSONPayload validates that v marshals to JSON and wraps the
// result.
func NewCommandJSONPayload(v any) (CommandJSONPayload, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return CommandJSONPayload{}, fmt.Errorf("command payload: %w", err)
	}
	return CommandJSONPayload{JSON: raw}, nil
}

func encodeCommandJSONBody(p Payload) ([]byte, error) {
	cj := p.(CommandJSONPayload)
	if !utf8.Valid(cj.JSON) {
		return nil, ErrBadUTF8
	}
	return cj.JSON, nil
}

func decodeCommandJSONBody(body []byte, _ uint8) (Payload, error) {
	if !utf8.Valid(body) {
		return nil, ErrBadUTF8
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("command body is not valid JSON")
	}
	return CommandJSONPayload{JSON: json.RawMessage(append([]byte(nil), body...))}, nil
}
