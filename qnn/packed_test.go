package qnn

import (
	"math/rand"
	"testing"
)

func TestLoadS8x4(t *testing.T) {
	w := LoadS8x4([]int8{1, 2, 3, 4})
	if w != 0x04030201 {
		t.Errorf("LoadS8x4: got %#08x, want 0x04030201", w)
	}

	w = LoadS8x4([]int8{-1, 0, -128, 127})
	if w != 0x7f8000ff {
		t.Errorf("LoadS8x4 negative: got %#08x, want 0x7f8000ff", w)
	}
}

func TestPackUnpackS16x2(t *testing.T) {
	w := PackS16x2(-2, 300)
	lo, hi := UnpackS16x2(w)
	if lo != -2 || hi != 300 {
		t.Errorf("Pack/UnpackS16x2: got (%d, %d), want (-2, 300)", lo, hi)
	}
}

func TestExtendS8(t *testing.T) {
	w := LoadS8x4([]int8{10, -20, 30, -40})

	lo, hi := UnpackS16x2(ExtendEvenS8(w))
	if lo != 10 || hi != 30 {
		t.Errorf("ExtendEvenS8: got (%d, %d), want (10, 30)", lo, hi)
	}

	lo, hi = UnpackS16x2(ExtendOddS8(w))
	if lo != -20 || hi != -40 {
		t.Errorf("ExtendOddS8: got (%d, %d), want (-20, -40)", lo, hi)
	}
}

func TestAddS16x2(t *testing.T) {
	sum := AddS16x2(PackS16x2(100, -100), PackS16x2(-28, 128))
	lo, hi := UnpackS16x2(sum)
	if lo != 72 || hi != 28 {
		t.Errorf("AddS16x2: got (%d, %d), want (72, 28)", lo, hi)
	}

	// Halves are independent: no carry crosses bit 16.
	sum = AddS16x2(PackS16x2(-1, 0), PackS16x2(1, 0))
	lo, hi = UnpackS16x2(sum)
	if lo != 0 || hi != 0 {
		t.Errorf("AddS16x2 carry isolation: got (%d, %d), want (0, 0)", lo, hi)
	}
}

func TestDualMulAccS16(t *testing.T) {
	acc := DualMulAccS16(7, PackS16x2(3, -4), PackS16x2(5, 6))
	if acc != 7+15-24 {
		t.Errorf("DualMulAccS16: got %d, want -2", acc)
	}

	// Extremes stay exact at 32-bit accumulation.
	acc = DualMulAccS16(0, PackS16x2(-32768, 32767), PackS16x2(-32768, 32767))
	if acc != 1073741824+1073676289 {
		t.Errorf("DualMulAccS16 extreme: got %d, want %d", acc, 1073741824+1073676289)
	}
}

// TestPackedQuadDot checks that a packed 4-element dot product with a
// folded offset equals the plain widened arithmetic, the way the packed
// kernel strategy uses these primitives.
func TestPackedQuadDot(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 1000; iter++ {
		var vec, ker [4]int8
		for i := range vec {
			vec[i] = int8(rng.Intn(256) - 128)
			ker[i] = int8(rng.Intn(256) - 128)
		}
		offset := int32(rng.Intn(256) - 127)

		offset2 := PackS16x2(int16(offset), int16(offset))
		w := LoadS8x4(vec[:])
		k := LoadS8x4(ker[:])

		var acc int32
		acc = DualMulAccS16(acc, ExtendOddS8(k), AddS16x2(offset2, ExtendOddS8(w)))
		acc = DualMulAccS16(acc, ExtendEvenS8(k), AddS16x2(offset2, ExtendEvenS8(w)))

		var want int32
		for i := range vec {
			want += (int32(vec[i]) + offset) * int32(ker[i])
		}

		if acc != want {
			t.Fatalf("packed quad dot: vec=%v ker=%v offset=%d: got %d, want %d",
				vec, ker, offset, acc, want)
		}
	}
}
