package qrng_test

import (
	"context"
	"testing"

	"qlab/internal/backend/local"
	"qlab/internal/qrng"
)

func newService(t *testing.T, width int, seed uint64) *qrng.Service {
	t.Helper()
	s, err := qrng.New(local.NewSeeded(seed), width)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return s
}

func TestUniform_RangeAndDeterminism(t *testing.T) {
	a, err := newService(t, 8, 1).Uniform(context.Background(), 300)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	b, err := newService(t, 8, 1).Uniform(context.Background(), 300)
	if err != nil {
		t.Fatalf("uniform: %v", err)
	}
	for i, v := range a {
		if v < 0 || v >= 1 {
			t.Fatalf("value %d out of [0,1): %v", i, v)
		}
		if v != b[i] {
			t.Fatalf("value %d differs across identical seeds", i)
		}
	}
}

func TestUints_StayUnderWidth(t *testing.T) {
	us, err := newService(t, 5, 2).Uints(context.Background(), 500)
	if err != nil {
		t.Fatalf("uints: %v", err)
	}
	for i, u := range us {
		if u >= 1<<5 {
			t.Fatalf("value %d exceeds 5 bits: %d", i, u)
		}
	}
}

func TestInts_RejectionSamplingBounds(t *testing.T) {
	vs, err := newService(t, 4, 3).Ints(context.Background(), 200, 10)
	if err != nil {
		t.Fatalf("ints: %v", err)
	}
	if len(vs) != 200 {
		t.Fatalf("want 200 values, got %d", len(vs))
	}
	seen := make(map[int]bool)
	for i, v := range vs {
		if v < 0 || v >= 10 {
			t.Fatalf("value %d out of [0,10): %d", i, v)
		}
		seen[v] = true
	}
	// 200 draws over 10 buckets should hit most of them
	if len(seen) < 8 {
		t.Fatalf("suspiciously few distinct values: %d", len(seen))
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := qrng.New(local.NewSeeded(1), 0); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := qrng.New(local.NewSeeded(1), 63); err == nil {
		t.Fatal("expected error for oversized width")
	}
	s := newService(t, 4, 1)
	if _, err := s.Ints(context.Background(), 5, 64); err == nil {
		t.Fatal("expected error when max exceeds width")
	}
	if _, err := s.Bits(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero-value request")
	}
	if _, err := s.Ints(context.Background(), 5, 1); err == nil {
		t.Fatal("expected error for max < 2")
	}
}
