package qnn

// This file provides integer type promotion and demotion between lane
// widths. PromoteTo operations widen (int8 -> int16 -> int32) with sign
// extension; DemoteTo operations narrow by truncation, matching a C-style
// integer cast.
//
// Note: Go generics don't support type relationships like "T is narrower
// than U", so we provide concrete type-specific functions.

// PromoteI8ToI16 widens int8 to int16 (sign-extended).
func PromoteI8ToI16(v Vec[int8]) Vec[int16] {
	result := make([]int16, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int16(v.data[i])
	}
	return Vec[int16]{data: result}
}

// PromoteI16ToI32 widens int16 to int32 (sign-extended).
func PromoteI16ToI32(v Vec[int16]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// PromoteI8ToI32 widens int8 directly to int32 (sign-extended).
func PromoteI8ToI32(v Vec[int8]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// DemoteI32ToI8 narrows int32 lanes to int8 by truncation, keeping the low
// byte of each lane. Callers clamp before demoting when range matters; the
// post-processing pipeline clamps to the activation interval first.
func DemoteI32ToI8(v Vec[int32]) Vec[int8] {
	result := make([]int8, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int8(v.data[i])
	}
	return Vec[int8]{data: result}
}
