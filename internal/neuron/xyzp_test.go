package neuron

import "testing"

func TestAppendKeepsParallelSlicesInSync(t *testing.T) {
	a := NewArray(0)
	a.Append(1, 2, 3, 0.5)
	a.Append(4, 5, 6, -0.5)

	if a.Len() != 2 {
		t.Fatalf("got len %d want 2", a.Len())
	}
	if len(a.Xs()) != len(a.Ys()) || len(a.Ys()) != len(a.Zs()) || len(a.Zs()) != len(a.Ps()) {
		t.Fatalf("parallel slices diverged: %d %d %d %d", len(a.Xs()), len(a.Ys()), len(a.Zs()), len(a.Ps()))
	}

	s0 := a.At(0)
	if s0 != (Sample{X: 1, Y: 2, Z: 3, P: 0.5}) {
		t.Fatalf("got %+v", s0)
	}
}

func TestFromParallelSlicesRejectsMismatch(t *testing.T) {
	_, err := FromParallelSlices([]uint32{1, 2}, []uint32{1}, []uint32{1, 2}, []float32{1, 2})
	if err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestFromParallelSlicesAccepts(t *testing.T) {
	arr, err := FromParallelSlices(
		[]uint32{1, 4}, []uint32{2, 5}, []uint32{3, 6}, []float32{0.5, -0.5},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arr.Len() != 2 {
		t.Fatalf("got len %d want 2", arr.Len())
	}
}

func TestArrayEqual(t *testing.T) {
	a := NewArrayFromSamples([]Sample{{1, 2, 3, 0.5}, {4, 5, 6, -0.5}})
	b := NewArrayFromSamples([]Sample{{1, 2, 3, 0.5}, {4, 5, 6, -0.5}})
	c := NewArrayFromSamples([]Sample{{1, 2, 3, 0.5}})
	if !a.Equal(b) {
		t.Fatalf("expected equal arrays")
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal arrays")
	}
}
