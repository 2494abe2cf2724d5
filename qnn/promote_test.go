package qnn

import "testing"

func TestPromoteI8ToI16(t *testing.T) {
	v := Load([]int8{-128, -1, 0, 1, 127})
	got := PromoteI8ToI16(v)
	want := []int16{-128, -1, 0, 1, 127}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("PromoteI8ToI16: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestPromoteI16ToI32(t *testing.T) {
	v := Load([]int16{-32768, -1, 0, 32767})
	got := PromoteI16ToI32(v)
	want := []int32{-32768, -1, 0, 32767}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("PromoteI16ToI32: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestPromoteI8ToI32(t *testing.T) {
	v := Load([]int8{-128, 127, -5})
	got := PromoteI8ToI32(v)
	want := []int32{-128, 127, -5}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("PromoteI8ToI32: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestDemoteI32ToI8(t *testing.T) {
	// Truncation keeps the low byte: 257 -> 1, -129 -> 127.
	v := Load([]int32{127, -128, 257, -129})
	got := DemoteI32ToI8(v)
	want := []int8{127, -128, 1, 127}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("DemoteI32ToI8: lane %d: got %d, want %d", i, got.Data()[i], want[i])
		}
	}
}

func TestPromoteDemoteRoundTrip(t *testing.T) {
	src := make([]int8, MaxLanes[int8]())
	for i := range src {
		src[i] = int8(i*17 - 128)
	}
	got := DemoteI32ToI8(PromoteI8ToI32(Load(src)))
	for i := range src {
		if got.Data()[i] != src[i] {
			t.Errorf("round trip: lane %d: got %d, want %d", i, got.Data()[i], src[i])
		}
	}
}
