package bytestructure

// codecEntry is one row of the compile-time payload-type registry: how to
// turn a Payload of this type into body bytes and back, and the highest
// payload_version this codec understands for that type. The registry is
// a plain map populated once at package init — there is no dynamic
// dispatch because the set of payload types is closed and known at build
// time.
type codecEntry struct {
	maxVersion uint8
	encodeBody func(p Payload) ([]byte, error)
	decodeBody func(body []byte, version uint8) (Payload, error)
}

var registry map[TypeCode]codecEntry

func init() {
	registry = map[TypeCode]codecEntry{
		TypeCommandJSON: {
			maxVersion: 1,
			encodeBody: encodeCommandJSONBody,
			decodeBody: decodeCommandJSONBody,
		},
		TypeNeuronXYZP: {
			maxVersion: 1,
			encodeBody: encodeNeuronXYZPBody,
			decodeBody: decodeNeuronXYZPBody,
		},
		TypeMultiFrame: {
			maxVersion: 1,
			encodeBody: encodeMultiFrameBody,
			decodeBody: decodeMultiFrameBody,
		},
		TypeAuthentication: {
			maxVersion: 1,
			encodeBody: encodeAuthenticationBody,
			decodeBody: decodeAuthenticationBody,
		},
		TypeImageFrame: {
			maxVersion: 1,
			encodeBody: encodeImageFrameBody,
			decodeBody: decodeImageFrameBody,
		},
		TypeSegmentedImageFrame: {
			maxVersion: 1,
			encodeBody: encodeSegmentedImageFrameBody,
			decodeBody: decodeSegmentedImageFrameBody,
		},
	}
}
