package bytestructure

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/feagi/feagi-data-processing/internal/bounds"
	"github.com/feagi/feagi-data-processing/internal/corticalid"
	"github.com/feagi/feagi-data-processing/internal/neuron"
)

func TestCommandJSONRoundTrip(t *testing.T) {
	p, err := NewCommandJSONPayload(map[string]int{"x": 1})
	if err != nil {
		t.Fatalf("NewCommandJSONPayload: %v", err)
	}
	encoded, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := frame.Payload.(CommandJSONPayload)
	if !ok {
		t.Fatalf("decoded payload is %T, want CommandJSONPayload", frame.Payload)
	}
	if string(got.JSON) != `{"x":1}` {
		t.Errorf("JSON = %s, want {\"x\":1}", got.JSON)
	}
}

func TestCommandJSONRejectsInvalidJSON(t *testing.T) {
	header := Header{GlobalVersion: CurrentGlobalVersion, PayloadType: TypeCommandJSON, PayloadVersion: 1}
	body := []byte(`not json`)
	data := make([]byte, HeaderLength+len(body))
	header.TotalLength = uint32(len(data))
	header.put(data)
	copy(data[HeaderLength:], body)

	_, err := Decode(data)
	if err == nil {
		t.Fatal("Decode: want error for malformed JSON body")
	}
}

// TestNeuronXYZPExactWireLayout reproduces the documented wire layout
// for one cortical area with two neuron samples.
func TestNeuronXYZPExactWireLayout(t *testing.T) {
	area, err := corticalid.Parse("cABCDE")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arr := neuron.NewArray(2)
	arr.Append(1, 2, 3, 0.5)
	arr.Append(4, 5, 6, -0.5)

	data := neuron.NewMappedData()
	data.Set(area, arr)

	encoded, err := Encode(NeuronXYZPPayload{Data: data})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []byte{
		0x01, 0x02, 0x01, 0x35, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x63, 0x41, 0x42, 0x43, 0x44, 0x45,
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x3F, 0x00, 0x00, 0x00, 0xBF,
	}
	if !bytes.Equal(encoded, want) {
		t.Fatalf("encoded =\n% x\nwant\n% x", encoded, want)
	}
	if len(encoded) != 53 {
		t.Errorf("len(encoded) = %d, want 53", len(encoded))
	}

	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := frame.Payload.(NeuronXYZPPayload)
	roundTripped, ok := got.Data.Get(area)
	if !ok {
		t.Fatalf("decoded payload missing area %v", area)
	}
	if !roundTripped.Equal(arr) {
		t.Errorf("decoded array = %+v, want %+v", roundTripped, arr)
	}
}

func TestNeuronXYZPRejectsTruncated(t *testing.T) {
	area, _ := corticalid.Parse("cABCDE")
	arr := neuron.NewArray(1)
	arr.Append(1, 2, 3, 0.5)
	data := neuron.NewMappedData()
	data.Set(area, arr)

	encoded, err := Encode(NeuronXYZPPayload{Data: data})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	_, err = Decode(encoded[:len(encoded)-1])
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Decode(truncated) = %v, want ErrTruncated", err)
	}
}

// TestMultiFrameDecodesHeterogeneousChildren checks that a MultiFrame
// containing a CommandJSON and a NeuronXYZP frame decodes into exactly
// two children whose individual re-encodings equal the originals.
func TestMultiFrameDecodesHeterogeneousChildren(t *testing.T) {
	cmd, err := NewCommandJSONPayload(map[string]string{"cmd": "ping"})
	if err != nil {
		t.Fatalf("NewCommandJSONPayload: %v", err)
	}

	area, _ := corticalid.Parse("iVcc00")
	arr := neuron.NewArray(1)
	arr.Append(0, 0, 0, 1.0)
	data := neuron.NewMappedData()
	data.Set(area, arr)
	nxp := NeuronXYZPPayload{Data: data}

	multi := MultiFramePayload{Frames: []Payload{cmd, nxp}}
	encoded, err := Encode(multi)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decoded := frame.Payload.(MultiFramePayload)
	if len(decoded.Frames) != 2 {
		t.Fatalf("len(decoded.Frames) = %d, want 2", len(decoded.Frames))
	}

	reEncodedCmd, err := Encode(decoded.Frames[0])
	if err != nil {
		t.Fatalf("re-encode child 0: %v", err)
	}
	wantCmd, _ := Encode(cmd)
	if !bytes.Equal(reEncodedCmd, wantCmd) {
		t.Errorf("re-encoded child 0 does not match original CommandJSON frame")
	}

	reEncodedNxp, err := Encode(decoded.Frames[1])
	if err != nil {
		t.Fatalf("re-encode child 1: %v", err)
	}
	wantNxp, _ := Encode(nxp)
	if !bytes.Equal(reEncodedNxp, wantNxp) {
		t.Errorf("re-encoded child 1 does not match original NeuronXYZP frame")
	}
}

// TestMultiFrameWireLayoutUsesOffsetTable pins the exact MultiFrame body
// layout: a one-byte child count, then that many little-endian u32
// byte-offsets (one per child, measured from the start of the body),
// then the children's complete frames verbatim at those offsets. It
// builds the expected bytes independently of encodeMultiFrameBody so it
// fails if the body ever goes back to length-prefixing children inline
// instead of publishing an upfront offset table.
func TestMultiFrameWireLayoutUsesOffsetTable(t *testing.T) {
	childA := AuthenticationPayload{Token: "a"}
	childB := AuthenticationPayload{Token: "b"}

	encA, err := Encode(childA)
	if err != nil {
		t.Fatalf("Encode(childA): %v", err)
	}
	encB, err := Encode(childB)
	if err != nil {
		t.Fatalf("Encode(childB): %v", err)
	}

	const countWidth = 1
	offsetTableStart := countWidth
	childrenStart := offsetTableStart + 2*4
	wantBody := make([]byte, childrenStart+len(encA)+len(encB))
	wantBody[0] = 2
	binary.LittleEndian.PutUint32(wantBody[offsetTableStart:offsetTableStart+4], uint32(childrenStart))
	binary.LittleEndian.PutUint32(wantBody[offsetTableStart+4:offsetTableStart+8], uint32(childrenStart+len(encA)))
	copy(wantBody[childrenStart:], encA)
	copy(wantBody[childrenStart+len(encA):], encB)

	wantTotal := HeaderLength + len(wantBody)
	want := make([]byte, wantTotal)
	Header{
		GlobalVersion:  CurrentGlobalVersion,
		PayloadType:    TypeMultiFrame,
		PayloadVersion: 1,
		TotalLength:    uint32(wantTotal),
	}.put(want)
	copy(want[HeaderLength:], wantBody)

	got, err := Encode(MultiFramePayload{Frames: []Payload{childA, childB}})
	if err != nil {
		t.Fatalf("Encode(MultiFrame): %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("encoded =\n% x\nwant\n% x", got, want)
	}
}

func TestMultiFrameRejectsNestedMultiFrame(t *testing.T) {
	inner := MultiFramePayload{Frames: nil}
	outer := MultiFramePayload{Frames: []Payload{inner}}
	_, err := Encode(outer)
	if !errors.Is(err, ErrNestedTooDeep) {
		t.Errorf("Encode(nested multiframe) = %v, want ErrNestedTooDeep", err)
	}
}

func TestAuthenticationRoundTrip(t *testing.T) {
	p := AuthenticationPayload{Token: "secret-token"}
	encoded, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := frame.Payload.(AuthenticationPayload)
	if got.Token != "secret-token" {
		t.Errorf("Token = %q, want %q", got.Token, "secret-token")
	}
}

func TestImageFrameRoundTrip(t *testing.T) {
	p := ImageFramePayload{
		Width: 2, Height: 2,
		Format: bounds.ChannelFormatRGB3,
		Space:  bounds.ColorSpaceLinear,
		Order:  bounds.MemoryOrderRowMajor,
		Pixels: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}
	encoded, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := frame.Payload.(ImageFramePayload)
	if got.Width != 2 || got.Height != 2 || !bytes.Equal(got.Pixels, p.Pixels) {
		t.Errorf("decoded = %+v, want %+v", got, p)
	}
}

func TestImageFrameRejectsPixelLengthMismatch(t *testing.T) {
	p := ImageFramePayload{
		Width: 2, Height: 2,
		Format: bounds.ChannelFormatRGB3,
		Pixels: []byte{1, 2, 3},
	}
	_, err := Encode(p)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Encode(bad pixel length) = %v, want ErrLengthMismatch", err)
	}
}

func TestSegmentedImageFrameRoundTrip(t *testing.T) {
	cellBytes := make([]byte, 4)
	cells := make([][]byte, 9)
	for i := range cells {
		cell := append([]byte(nil), cellBytes...)
		cell[0] = byte(i)
		cells[i] = cell
	}

	p := SegmentedImageFramePayload{
		GridCols: 3, GridRows: 3,
		CellWidth: 2, CellHeight: 2,
		Format: bounds.ChannelFormatR1,
		Space:  bounds.ColorSpaceLinear,
		Order:  bounds.MemoryOrderRowMajor,
		Cells:  cells,
	}
	encoded, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	frame, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := frame.Payload.(SegmentedImageFramePayload)
	if len(got.Cells) != 9 {
		t.Fatalf("len(got.Cells) = %d, want 9", len(got.Cells))
	}
	for i, cell := range got.Cells {
		if !bytes.Equal(cell, cells[i]) {
			t.Errorf("cell %d = % x, want % x", i, cell, cells[i])
		}
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	header := Header{GlobalVersion: CurrentGlobalVersion, PayloadType: TypeCode(99), PayloadVersion: 1, TotalLength: HeaderLength}
	data := make([]byte, HeaderLength)
	header.put(data)

	_, err := Decode(data)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Decode(unknown type) = %v, want ErrUnknownType", err)
	}
}

func TestDecodeRejectsUnsupportedGlobalVersion(t *testing.T) {
	header := Header{GlobalVersion: CurrentGlobalVersion + 1, PayloadType: TypeCommandJSON, PayloadVersion: 1, TotalLength: HeaderLength}
	data := make([]byte, HeaderLength)
	header.put(data)

	_, err := Decode(data)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Decode(future global version) = %v, want ErrUnsupportedVersion", err)
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02})
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Decode(short buffer) = %v, want ErrTruncated", err)
	}
}

func TestPeekTypeDoesNotDecodeBody(t *testing.T) {
	p, _ := NewCommandJSONPayload(map[string]int{"a": 1})
	encoded, _ := Encode(p)

	typ, err := PeekType(encoded)
	if err != nil {
		t.Fatalf("PeekType: %v", err)
	}
	if typ != TypeCommandJSON {
		t.Errorf("PeekType = %v, want TypeCommandJSON", typ)
	}
}
