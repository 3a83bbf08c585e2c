package neuron

import "github.com/feagi/feagi-data-processing/internal/corticalid"

// MappedData is the atomic payload carried in one frame: a mapping from
// cortical identifier to that area's neuron Array. Keys are unique;
// iteration order is irrelevant and not part of the public contract.
type MappedData struct {
	byArea map[corticalid.CorticalType]*Array
}

// NewMappedData returns an empty MappedData.
func NewMappedData() *MappedData {
	return &MappedData{byArea: make(map[corticalid.CorticalType]*Array)}
}

// Set assigns the Array for a cortical area, replacing any prior value.
func (m *MappedData) Set(area corticalid.CorticalType, arr *Array) {
	m.byArea[area] = arr
}

// Get returns the Array for a cortical area, or (nil, false) if absent.
func (m *MappedData) Get(area corticalid.CorticalType) (*Array, bool) {
	arr, ok := m.byArea[area]
	return arr, ok
}

// Areas returns the set of cortical areas present, in no particular order.
func (m *MappedData) Areas() []corticalid.CorticalType {
	out := make([]corticalid.CorticalType, 0, len(m.byArea))
	for k := range m.byArea {
		out = append(out, k)
	}
	return out
}

// Len returns the number of cortical areas present.
func (m *MappedData) Len() int { return len(m.byArea) }
