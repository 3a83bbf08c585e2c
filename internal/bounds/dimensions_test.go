package bounds

import (
	"errors"
	"testing"
)

func TestNewCorticalDimensionsRejectsZero(t *testing.T) {
	cases := []struct {
		x, y, z uint32
	}{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}
	for _, c := range cases {
		if _, err := NewCorticalDimensions(c.x, c.y, c.z); !errors.Is(err, ErrZeroDimension) {
			t.Fatalf("(%d,%d,%d): expected ErrZeroDimension, got %v", c.x, c.y, c.z, err)
		}
	}
	d, err := NewCorticalDimensions(4, 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Volume() != 120 {
		t.Fatalf("got volume %d want 120", d.Volume())
	}
	if !d.Contains(3, 4, 5) {
		t.Fatalf("expected (3,4,5) to be contained")
	}
	if d.Contains(4, 4, 5) {
		t.Fatalf("expected (4,4,5) to be out of bounds on X")
	}
}

func TestSingleChannelDimensionsOverride(t *testing.T) {
	base, _ := NewCorticalDimensions(10, 10, 1)
	mask := AxisMask{XFixed: true, YFixed: false, ZFixed: true}
	scd := NewSingleChannelDimensions(base, mask)

	overridden, err := scd.WithOverride(CorticalDimensions{X: 999, Y: 20, Z: 999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := overridden.Dimensions()
	if got.X != 10 || got.Z != 1 {
		t.Fatalf("fixed axes must not change, got %+v", got)
	}
	if got.Y != 20 {
		t.Fatalf("user-defined axis should take override, got %d", got.Y)
	}
}
