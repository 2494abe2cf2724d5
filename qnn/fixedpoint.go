// Copyright 2025 go-qnn Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qnn

// Fixed-point requantization: a 32-bit accumulator is rescaled by a
// multiplier/shift pair representing a real-valued factor
// multiplier * 2^(shift-31). The multiplier is a Q31 fixed-point value in
// [2^30, 2^31), derived externally from the floating-point scales.
//
// The computation is split into a doubling high multiply (gemmlowp-style
// saturating-doubling-high-mul semantics, round half up) followed by a
// rounding divide by a power of two (round half away from zero). Both the
// scalar and the lane-parallel form below go through the identical scalar
// helpers, which is what makes every kernel level produce byte-identical
// output.

// Requantize rescales a 32-bit accumulator by the fixed-point multiplier
// and shift, returning round(v * multiplier * 2^shift / 2^31).
//
// A positive shift is applied as a wrapping left shift of the accumulator
// before the doubling high multiply and contributes no rounding of its
// own; a negative shift becomes the exponent of the rounding right shift
// afterwards. The two directions are deliberately not symmetric.
func Requantize(v, multiplier, shift int32) int32 {
	left, right := shiftSplit(shift)
	return divideByPowerOfTwo(doublingHighMult(v<<left, multiplier), right)
}

// RequantizeLanes applies Requantize to every lane of v with the shared
// per-tensor multiplier and shift. Lane k of the result equals
// Requantize(v.Data()[k], multiplier, shift) exactly.
func RequantizeLanes(v Vec[int32], multiplier, shift int32) Vec[int32] {
	left, right := shiftSplit(shift)
	result := make([]int32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = divideByPowerOfTwo(doublingHighMult(v.data[i]<<left, multiplier), right)
	}
	return Vec[int32]{data: result}
}

// shiftSplit separates a signed shift into the wrapping pre-multiply left
// shift (shift > 0) and the rounding right shift exponent (shift < 0).
func shiftSplit(shift int32) (left, right uint32) {
	if shift > 0 {
		return uint32(shift), 0
	}
	return 0, uint32(-shift)
}

// doublingHighMult returns the high 32 bits of 2*a*b with rounding: the
// 64-bit product is offset by 2^30 before the arithmetic 31-bit shift, so
// halfway values round up.
func doublingHighMult(a, b int32) int32 {
	return int32((int64(a)*int64(b) + (1 << 30)) >> 31)
}

// divideByPowerOfTwo computes round(dividend / 2^exponent) with halfway
// values rounded away from zero. exponent must be in [0, 31].
func divideByPowerOfTwo(dividend int32, exponent uint32) int32 {
	mask := int32(1)<<exponent - 1
	remainder := dividend & mask
	result := dividend >> exponent

	threshold := mask >> 1
	if result < 0 {
		threshold++
	}
	if remainder > threshold {
		result++
	}
	return result
}
