// Package corticalid parses, validates, and synthesizes six-character
// cortical identifiers into a canonical tagged-variant form (CorticalType)
// and back. The structured form is canonical; the six-byte string is only
// ever a projection of it — internal APIs never thread raw strings.
package corticalid

import "github.com/feagi/feagi-data-processing/internal/bounds"

// Length is the fixed wire-form length of a cortical identifier.
const Length = 6

// CorticalType is the canonical, structured form of a cortical identifier.
// It is a sealed interface: the only implementations are the five variants
// below, one per first-byte discriminator.
type CorticalType interface {
	isCorticalType()
	// Discriminator returns the first wire-form byte for this variant.
	Discriminator() byte
}

// Custom identifies a user-defined cortical area ('c' + 5 free alphanumerics).
type Custom struct {
	Suffix [5]byte
}

func (Custom) isCorticalType()     {}
func (Custom) Discriminator() byte { return 'c' }

// Memory identifies a memory cortical area ('m' + 5 free alphanumerics).
type Memory struct {
	Suffix [5]byte
}

func (Memory) isCorticalType()     {}
func (Memory) Discriminator() byte { return 'm' }

// Core identifies one of the fixed, closed set of core cortical areas
// ('_' + a known static identifier).
type Core struct {
	Kind CoreKind
}

func (Core) isCorticalType()     {}
func (Core) Discriminator() byte { return '_' }

// Input identifies a sensor cortical area ('i' + family + hex grouping).
type Input struct {
	Sensor   SensorKind
	Grouping bounds.GroupingIndex
}

func (Input) isCorticalType()     {}
func (Input) Discriminator() byte { return 'i' }

// Output identifies a motor cortical area ('o' + family + hex grouping).
type Output struct {
	Motor    MotorKind
	Grouping bounds.GroupingIndex
}

func (Output) isCorticalType()     {}
func (Output) Discriminator() byte { return 'o' }
