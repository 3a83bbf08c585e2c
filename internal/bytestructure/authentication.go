package bytestructure

import (
	"encoding/json"
	"fmt"
)

// AuthenticationPayload carries a bearer token exchanged before a stream
// is allowed to submit sensor or motor frames (payload_type 4).
type AuthenticationPayload struct {
	Token string
}

// TypeCode implements Payload.
func (AuthenticationPayload) TypeCode() TypeCode { return TypeAuthentication }

type authenticationWire struct {
	Token string `json:"token"`
}

func encodeAuthenticationBody(p Payload) ([]byte, error) {
	a := p.(AuthenticationPayload)
	raw, err := json.Marshal(authenticationWire{Token: a.Token})
	if err != nil {
		return nil, fmt.Errorf("authentication payload: %w", err)
	}
	return raw, nil
}

func decodeAuthenticationBody(body []byte, _ uint8) (Payload, error) {
	var w authenticationWire
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("authentication body: %w", err)
	}
	return AuthenticationPayload{Token: w.Token}, nil
}
