package fieldedit

import (
	"math"
	"testing"
)

func TestAddRounded(t *testing.T) {
	tests := []struct {
		n      int64
		offset float64
		want   int64
	}{
		{10, 2.4, 12},
		{10, -2.6, 7},
		{1<<53 + 1, 1, 1<<53 + 2},
		{math.MaxInt64 - 2, 10, math.MaxInt64},
		{math.MinInt64 + 2, -10, math.MinInt64},
		{0, 1e30, math.MaxInt64},
		{0, -1e30, math.MinInt64},
	}
	for _, tt := range tests {
		if got := addRounded(tt.n, tt.offset); got != tt.want {
			t.Errorf("addRounded(%d, %v) = %d, want %d", tt.n, tt.offset, got, tt.want)
		}
	}
}

func TestFloatToInt64(t *testing.T) {
	tests := []struct {
		f    float64
		want int64
		ok   bool
	}{
		{42, 42, true},
		{-(1 << 63), math.MinInt64, true},
		{1 << 63, math.MaxInt64, false},
		{-1e30, math.MinInt64, false},
		{math.NaN(), 0, false},
		{math.Inf(1), math.MaxInt64, false},
	}
	for _, tt := range tests {
		got, ok := floatToInt64(tt.f)
		if got != tt.want || ok != tt.ok {
			t.Errorf("floatToInt64(%v) = %d, %v, want %d, %v", tt.f, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClampNumber(t *testing.T) {
	rng := RangeValue{Min: -0.5, Max: 2.5, HasRange: true}
	if got := clampNumber[int64](-3, rng); got != 0 {
		t.Errorf("int below = %d, want 0", got)
	}
	if got := clampNumber[int64](9, rng); got != 2 {
		t.Errorf("int above = %d, want 2", got)
	}
	if got := clampNumber(9.0, rng); got != 2.5 {
		t.Errorf("float above = %v, want 2.5", got)
	}
	if got := clampNumber[int64](1<<53+1, RangeValue{}); got != 1<<53+1 {
		t.Errorf("unbounded = %d", got)
	}
}
