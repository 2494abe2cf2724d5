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

// This file provides saturated arithmetic and clamping.
// Saturated operations clamp results to the type's valid range instead of
// wrapping; Clamp bounds lanes to an arbitrary closed interval, which is
// how activation ranges are applied.

// SaturatedAdd performs element-wise addition with saturation.
// For example, int8: 120 + 20 = 127 (not -116).
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = saturatedAdd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, int8: -120 - 20 = -128 (not 116).
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = saturatedSub(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Clamp clamps each element to the closed interval [lo, hi].
// Elements less than lo become lo, elements greater than hi become hi.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	n := len(v.data)
	if len(lo.data) < n {
		n = len(lo.data)
	}
	if len(hi.data) < n {
		n = len(hi.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		val := v.data[i]
		if val < lo.data[i] {
			val = lo.data[i]
		}
		if val > hi.data[i] {
			val = hi.data[i]
		}
		result[i] = val
	}
	return Vec[T]{data: result}
}

func saturatedAdd[T Integers](a, b T) T {
	sum := a + b
	var zero T

	// Detect whether T is signed by checking if the all-ones pattern is
	// negative.
	allOnes := zero - 1
	if allOnes > zero {
		// Unsigned: overflow iff the sum wrapped below an operand.
		if sum < a {
			return allOnes
		}
		return sum
	}

	// Signed: overflow iff operands share a sign the sum doesn't.
	if a > zero && b > zero && sum < zero {
		return maxSigned[T]()
	}
	if a < zero && b < zero && sum >= zero {
		return minSigned[T]()
	}
	return sum
}

func saturatedSub[T Integers](a, b T) T {
	diff := a - b
	var zero T

	allOnes := zero - 1
	if allOnes > zero {
		// Unsigned: underflow iff b > a.
		if b > a {
			return zero
		}
		return diff
	}

	if a >= zero && b < zero && diff < zero {
		return maxSigned[T]()
	}
	if a < zero && b > zero && diff >= zero {
		return minSigned[T]()
	}
	return diff
}

// maxSigned returns the maximum value of a signed integer type T.
func maxSigned[T Integers]() T {
	var zero T
	bits := 8 * sizeOf[T]()
	var max uint64 = 1<<(bits-1) - 1
	return zero + T(max)
}

// minSigned returns the minimum value of a signed integer type T.
func minSigned[T Integers]() T {
	return -maxSigned[T]() - 1
}
