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

// Packed-word arithmetic: four int8 values carried in one uint32, widened
// to two int16 pairs and combined with dual 16-bit multiply-accumulates.
// This models packed-integer DSP instruction sets and is the basis of the
// packed kernel level. Lane order is little-endian: element 0 lives in the
// least-significant byte.
//
// All operations are exact as long as each 16-bit half stays in int16
// range; for int8 inputs plus a zero-point offset that is always the case.

// LoadS8x4 packs four consecutive int8 values from src into a uint32 word,
// first element in the least-significant byte.
func LoadS8x4(src []int8) uint32 {
	return uint32(uint8(src[0])) |
		uint32(uint8(src[1]))<<8 |
		uint32(uint8(src[2]))<<16 |
		uint32(uint8(src[3]))<<24
}

// PackS16x2 packs two int16 values into a uint32 word, lo in bits 0-15.
func PackS16x2(lo, hi int16) uint32 {
	return uint32(uint16(lo)) | uint32(uint16(hi))<<16
}

// UnpackS16x2 splits a uint32 word into its two int16 halves.
func UnpackS16x2(x uint32) (lo, hi int16) {
	return int16(uint16(x)), int16(uint16(x >> 16))
}

// ExtendEvenS8 sign-extends bytes 0 and 2 of x into the two int16 halves
// of the result.
func ExtendEvenS8(x uint32) uint32 {
	return PackS16x2(int16(int8(x)), int16(int8(x>>16)))
}

// ExtendOddS8 sign-extends bytes 1 and 3 of x into the two int16 halves
// of the result.
func ExtendOddS8(x uint32) uint32 {
	return PackS16x2(int16(int8(x>>8)), int16(int8(x>>24)))
}

// AddS16x2 adds the int16 halves of a and b independently. Each half wraps
// on overflow; callers keep values in range.
func AddS16x2(a, b uint32) uint32 {
	aLo, aHi := UnpackS16x2(a)
	bLo, bHi := UnpackS16x2(b)
	return PackS16x2(aLo+bLo, aHi+bHi)
}

// DualMulAccS16 multiplies the int16 halves of x and y pairwise and adds
// both 32-bit products to acc. Two of these per packed load advance a row
// accumulator by four elements.
func DualMulAccS16(acc int32, x, y uint32) int32 {
	xLo, xHi := UnpackS16x2(x)
	yLo, yHi := UnpackS16x2(y)
	return acc + int32(xLo)*int32(yLo) + int32(xHi)*int32(yHi)
}
