package qnn

import (
	"math"
	"testing"
)

func TestSaturatedAddInt8(t *testing.T) {
	a := Load([]int8{120, -120, 100, -100, 0})
	b := Load([]int8{20, -20, -50, 50, 0})
	got := SaturatedAdd(a, b)
	want := []int8{127, -128, 50, -50, 0}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("SaturatedAdd: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestSaturatedAddUint8(t *testing.T) {
	a := Load([]uint8{250, 10, 0})
	b := Load([]uint8{10, 10, 255})
	got := SaturatedAdd(a, b)
	want := []uint8{255, 20, 255}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("SaturatedAdd uint8: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestSaturatedSubInt8(t *testing.T) {
	a := Load([]int8{-120, 120, 10, 0})
	b := Load([]int8{20, -20, 5, 0})
	got := SaturatedSub(a, b)
	want := []int8{-128, 127, 5, 0}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("SaturatedSub: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestSaturatedSubUint8(t *testing.T) {
	a := Load([]uint8{5, 200, 0})
	b := Load([]uint8{10, 100, 0})
	got := SaturatedSub(a, b)
	want := []uint8{0, 100, 0}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("SaturatedSub uint8: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestSaturatedAddInt32Extremes(t *testing.T) {
	const maxI32 = int32(math.MaxInt32)
	const minI32 = int32(math.MinInt32)
	a := Load([]int32{maxI32, minI32, maxI32})
	b := Load([]int32{1, -1, minI32})
	got := SaturatedAdd(a, b)
	want := []int32{maxI32, minI32, -1}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("SaturatedAdd int32: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestClamp(t *testing.T) {
	v := Load([]int32{-500, -128, 127, 500})
	lo := Set[int32](-128)
	hi := Set[int32](127)
	got := Clamp(v, lo, hi)
	want := []int32{-128, -128, 127, 127}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("Clamp: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestClampNarrowInterval(t *testing.T) {
	v := Load([]int8{-10, 3, 10})
	got := Clamp(v, Set[int8](2), Set[int8](5))
	want := []int8{2, 3, 5}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("Clamp narrow: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}
