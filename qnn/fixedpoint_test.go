package qnn

import (
	"math"
	"math/rand"
	"testing"
)

// identity scaling: multiplier 2^30 with shift 1 represents exactly 1.0.
const identityMult = int32(1) << 30

func TestRequantizeIdentity(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 10, -10, 127, -128, 4096, -4096, math.MaxInt32 / 4} {
		if got := Requantize(v, identityMult, 1); got != v {
			t.Errorf("Requantize(%d, identity): got %d, want %d", v, got, v)
		}
	}
}

func TestRequantizeKnownValues(t *testing.T) {
	tests := []struct {
		v, multiplier, shift, want int32
	}{
		// multiplier 2^30 is a factor of exactly 0.5 at shift 0.
		{100, identityMult, 0, 50},
		{-100, identityMult, 0, -50},
		// shift -1: factor 0.25.
		{99, identityMult, -1, 25},
		{3, identityMult, -1, 1},
		{-3, identityMult, -1, -1},
		// ~0.6578 * 2^31, then /32.
		{1000, 1412812807, -5, 21},
		{0, 1412812807, -5, 0},
	}

	for _, tt := range tests {
		if got := Requantize(tt.v, tt.multiplier, tt.shift); got != tt.want {
			t.Errorf("Requantize(%d, %d, %d): got %d, want %d",
				tt.v, tt.multiplier, tt.shift, got, tt.want)
		}
	}
}

// The doubling high multiply rounds halfway values up (toward +inf): +0.5
// becomes 1, -0.5 becomes 0. The divide-by-power-of-two stage rounds
// halfway values away from zero instead. Both behaviors are contractual.
func TestRequantizeHalfwayRounding(t *testing.T) {
	// v * 2^30 / 2^31 = v/2: odd v lands exactly between output levels.
	if got := Requantize(1, identityMult, 0); got != 1 {
		t.Errorf("halfway +0.5: got %d, want 1", got)
	}
	if got := Requantize(-1, identityMult, 0); got != 0 {
		t.Errorf("halfway -0.5: got %d, want 0", got)
	}

	// After the multiply stage the right shift rounds away from zero:
	// +-2 * 0.5 / 2 = +-0.5.
	if got := Requantize(2, identityMult, -1); got != 1 {
		t.Errorf("shifted halfway +0.5: got %d, want 1", got)
	}
	if got := Requantize(-2, identityMult, -1); got != -1 {
		t.Errorf("shifted halfway -0.5: got %d, want -1", got)
	}
}

// A positive shift pre-multiplies at wrapping 32-bit precision and adds no
// rounding; only the negative direction rounds. The directions are not
// symmetric and must not be implemented as one.
func TestRequantizeShiftAsymmetry(t *testing.T) {
	// shift +2 on 2^30: v * 4 * 0.5 = 2v, no rounding anywhere.
	for _, v := range []int32{1, -1, 3, -3, 1001} {
		if got := Requantize(v, identityMult, 2); got != 2*v {
			t.Errorf("Requantize(%d, shift +2): got %d, want %d", v, got, 2*v)
		}
	}

	// Left shift wraps like the 32-bit multiply it stands for:
	// (1<<28)<<4 wraps to zero.
	if got := Requantize(int32(1)<<28, identityMult, 4); got != 0 {
		t.Errorf("Requantize wrap: got %d, want 0", got)
	}
}

func TestRequantizeExtremes(t *testing.T) {
	// Extremes must not overflow the 64-bit intermediate.
	if got := Requantize(math.MaxInt32, math.MaxInt32, 0); got != math.MaxInt32-1 {
		t.Errorf("Requantize(max, max, 0): got %d", got)
	}
	if got := Requantize(math.MinInt32, math.MaxInt32, 0); got != math.MinInt32+1 {
		t.Errorf("Requantize(min, max, 0): got %d", got)
	}
}

// The doubling high multiply wraps on the one overflowing input pair
// instead of saturating: min * min doubles to 2^63, and the high word
// 2^31 wraps to MinInt32. The saturating variant of this operation would
// return MaxInt32 here; the kernels are built on the wrapping form.
func TestDoublingHighMultMinTimesMin(t *testing.T) {
	if got := doublingHighMult(math.MinInt32, math.MinInt32); got != math.MinInt32 {
		t.Errorf("doublingHighMult(min, min): got %d, want %d", got, math.MinInt32)
	}
}

func TestRequantizeLanesMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		multiplier := int32(1<<30) + rng.Int31n(1<<30)
		shift := int32(rng.Intn(17) - 8)

		data := make([]int32, MaxLanes[int32]())
		for i := range data {
			data[i] = rng.Int31() - rng.Int31()
		}
		// Make sure boundary accumulators show up in the sweep.
		data[0] = int32(rng.Intn(5) - 2)

		got := RequantizeLanes(Load(data), multiplier, shift)
		for i := range data {
			want := Requantize(data[i], multiplier, shift)
			if got.Data()[i] != want {
				t.Fatalf("RequantizeLanes(mult=%d, shift=%d): lane %d (acc %d): got %d, want %d",
					multiplier, shift, i, data[i], got.Data()[i], want)
			}
		}
	}
}
