package corticalid

import "github.com/feagi/feagi-data-processing/internal/bounds"

// NewCustom constructs a Custom cortical type from a 5-byte suffix,
// validating the character set.
func NewCustom(suffix string) (Custom, error) {
	b, err := validSuffix(suffix)
	if err != nil {
		return Custom{}, err
	}
	return Custom{Suffix: b}, nil
}

// NewMemory constructs a Memory cortical type from a 5-byte suffix,
// validating the character set.
func NewMemory(suffix string) (Memory, error) {
	b, err := validSuffix(suffix)
	if err != nil {
		return Memory{}, err
	}
	return Memory{Suffix: b}, nil
}

// NewCore constructs a Core cortical type from a registered CoreKind.
func NewCore(kind CoreKind) (Core, error) {
	if _, ok := coreID(kind); !ok {
		return Core{}, ErrUnknownCoreID
	}
	return Core{Kind: kind}, nil
}

// NewSensor constructs an Input cortical type from a registered
// SensorKind and a grouping index.
func NewSensor(kind SensorKind, grouping bounds.GroupingIndex) (Input, error) {
	if _, ok := sensorCode(kind); !ok {
		return Input{}, ErrUnknownFamily
	}
	return Input{Sensor: kind, Grouping: grouping}, nil
}

// NewMotor constructs an Output cortical type from a registered MotorKind
// and a grouping index.
func NewMotor(kind MotorKind, grouping bounds.GroupingIndex) (Output, error) {
	if _, ok := motorCode(kind); !ok {
		return Output{}, ErrUnknownFamily
	}
	return Output{Motor: kind, Grouping: grouping}, nil
}
