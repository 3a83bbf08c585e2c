package bytestructure

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/feagi/feagi-data-processing/internal/corticalid"
	"github.com/feagi/feagi-data-processing/internal/neuron"
)

// NeuronXYZPPayload is the NeuronXYZP dictionary body (payload_type 2): a
// mapping from cortical identifier to that area's sparse neuron Array.
type NeuronXYZPPayload struct {
	Data *neuron.MappedData
}

// TypeCode implements Payload.
func (NeuronXYZPPayload) TypeCode() TypeCode { return TypeNeuronXYZP }

func encodeNeuronXYZPBody(p Payload) ([]byte, error) {
	nx := p.(NeuronXYZPPayload)
	areas := nx.Data.Areas()

	size := 4
	arrays := make([]*neuron.Array, len(areas))
	for i, area := range areas {
		arr, _ := nx.Data.Get(area)
		arrays[i] = arr
		size += corticalid.Length + 4 + arr.Len()*(4+4+4+4)
	}

	out := make([]byte, size)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(areas)))
	offset := 4
	for i, area := range areas {
		id, err := corticalid.Emit(area)
		if err != nil {
			return nil, fmt.Errorf("neuron xyzp: %w", err)
		}
		copy(out[offset:offset+corticalid.Length], id[:])
		offset += corticalid.Length

		arr := arrays[i]
		n := arr.Len()
		binary.LittleEndian.PutUint32(out[offset:offset+4], uint32(n))
		offset += 4

		xs, ys, zs, ps := arr.Xs(), arr.Ys(), arr.Zs(), arr.Ps()
		for _, x := range xs {
			binary.LittleEndian.PutUint32(out[offset:offset+4], x)
			offset += 4
		}
		for _, y := range ys {
			binary.LittleEndian.PutUint32(out[offset:offset+4], y)
			offset += 4
		}
		for _, z := range zs {
			binary.LittleEndian.PutUint32(out[offset:offset+4], z)
			offset += 4
		}
		for _, v := range ps {
			binary.LittleEndian.PutUint32(out[offset:offset+4], math.Float32bits(v))
			offset += 4
		}
	}
	return out, nil
}

func decodeNeuronXYZPBody(body []byte, _ uint8) (Payload, error) {
	if err := needBytes(len(body), 4); err != nil {
		return nil, err
	}
	numAreas := binary.LittleEndian.Uint32(body[0:4])
	offset := 4

	data := neuron.NewMappedData()
	for i := uint32(0); i < numAreas; i++ {
		if err := needBytes(len(body)-offset, corticalid.Length+4); err != nil {
			return nil, err
		}
		idBytes := body[offset : offset+corticalid.Length]
		offset += corticalid.Length
		area, err := corticalid.Parse(string(idBytes))
		if err != nil {
			return nil, fmt.Errorf("neuron xyzp: %w", err)
		}

		n := binary.LittleEndian.Uint32(body[offset : offset+4])
		offset += 4

		need := int(n) * (4 + 4 + 4 + 4)
		if err := needBytes(len(body)-offset, need); err != nil {
			return nil, err
		}

		xs := make([]uint32, n)
		for j := range xs {
			xs[j] = binary.LittleEndian.Uint32(body[offset : offset+4])
			offset += 4
		}
		ys := make([]uint32, n)
		for j := range ys {
			ys[j] = binary.LittleEndian.Uint32(body[offset : offset+4])
			offset += 4
		}
		zs := make([]uint32, n)
		for j := range zs {
			zs[j] = binary.LittleEndian.Uint32(body[offset : offset+4])
			offset += 4
		}
		ps := make([]float32, n)
		for j := range ps {
			ps[j] = math.Float32frombits(binary.LittleEndian.Uint32(body[offset : offset+4]))
			offset += 4
		}

		arr, err := neuron.FromParallelSlices(xs, ys, zs, ps)
		if err != nil {
			return nil, fmt.Errorf("neuron xyzp: %w", err)
		}
		data.Set(area, arr)
	}

	return NeuronXYZPPayload{Data: data}, nil
}
