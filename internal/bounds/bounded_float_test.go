package bounds

import (
	"errors"
	"testing"
)

func TestNewBoundedFloatRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"below lo", -1.1, true},
		{"at lo", -1.0, false},
		{"mid", 0.0, false},
		{"at hi", 1.0, false},
		{"above hi", 1.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bf, err := NewBoundedFloat(tt.value, -1, 1)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %g", tt.value)
				}
				if !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("expected ErrOutOfBounds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if bf.Value() != tt.value {
				t.Fatalf("got %g want %g", bf.Value(), tt.value)
			}
		})
	}
}

func TestNewNormalizedFloat(t *testing.T) {
	if _, err := NewNormalizedFloat(2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	nf, err := NewNormalizedFloat(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nf.Value() != 0.5 {
		t.Fatalf("got %g want 0.5", nf.Value())
	}
}

func TestClampNormalized(t *testing.T) {
	if got := ClampNormalized(5).Value(); got != 1 {
		t.Fatalf("got %g want 1", got)
	}
	if got := ClampNormalized(-5).Value(); got != -1 {
		t.Fatalf("got %g want -1", got)
	}
	if got := ClampNormalized(0.25).Value(); got != 0.25 {
		t.Fatalf("got %g want 0.25", got)
	}
}
