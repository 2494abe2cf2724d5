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

package fc

//go:generate go run github.com/ajroetker/go-qnn/cmd/qnngen -pkg . -kernel VecMatMultTS8 -output z_fc_dispatch.go

import (
	"github.com/ajroetker/go-qnn/qnn"
)

// Status is the result code shared by the operator suite. This kernel has
// no runtime failure condition and always reports StatusSuccess; the type
// exists for interface uniformity with operators that do validate.
type Status int32

const (
	// StatusSuccess indicates the operation completed.
	StatusSuccess Status = 0

	// StatusArgError is reserved for operators with checked arguments.
	StatusArgError Status = -1
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusArgError:
		return "arg error"
	default:
		return "unknown"
	}
}

// Params carries the per-call quantization and layout parameters of the
// kernel. Multiplier and Shift are per-tensor (shared by all output rows).
type Params struct {
	// LHSOffset is the input zero-point negation, added to every lhs
	// element before multiplication. It must be small enough that
	// LHSOffset plus any int8 value fits in int16; for s8 activations
	// this is the negated zero-point in [-127, 128].
	LHSOffset int32

	// DSTOffset is the output zero-point, added after requantization.
	DSTOffset int32

	// Multiplier is the Q31 fixed-point rescale numerator.
	Multiplier int32

	// Shift is the fixed-point rescale shift; negative means a rounding
	// right shift, positive a wrapping left pre-shift (see
	// qnn.Requantize).
	Shift int32

	// ActivationMin and ActivationMax bound the final value before it is
	// narrowed to int8.
	ActivationMin int32
	ActivationMax int32

	// AddressOffset is the stride, in elements, between consecutive
	// logical results in dst. 1 means contiguous output.
	AddressOffset int32
}

// Kernel is the signature shared by the strategies.
type Kernel func(lhs, rhs []int8, bias []int32, dst []int8, rhsCols, rhsRows int, p Params) Status

// vecMatMultTS8Impl is the strategy run by VecMatMultTS8. The generated
// dispatch init in z_fc_dispatch.go assigns the implementation matching
// qnn.CurrentLevel(); the hot path never branches on capability.
var vecMatMultTS8Impl Kernel = VecMatMultTS8Scalar

// VecMatMultTS8 multiplies the activation vector lhs by the transposed
// weight matrix rhs and writes rhsRows requantized int8 results into dst,
// p.AddressOffset elements apart.
//
// Caller obligations (not validated beyond the panics below): lhs, rhs and
// dst must not alias, accumulators must not overflow int32 for the given
// dimensions, and dst must not be written concurrently.
//
// Panics if:
//   - rhsCols < 1, rhsRows < 0, or p.AddressOffset < 1
//   - len(lhs) < rhsCols
//   - len(rhs) < rhsRows*rhsCols
//   - bias != nil and len(bias) < rhsRows
//   - len(dst) < (rhsRows-1)*p.AddressOffset + 1 (for rhsRows > 0)
func VecMatMultTS8(lhs, rhs []int8, bias []int32, dst []int8, rhsCols, rhsRows int, p Params) Status {
	if rhsCols < 1 {
		panic("fc: rhsCols must be at least 1")
	}
	if rhsRows < 0 {
		panic("fc: rhsRows must be non-negative")
	}
	if p.AddressOffset < 1 {
		panic("fc: AddressOffset must be at least 1")
	}
	if len(lhs) < rhsCols {
		panic("fc: lhs slice too short")
	}
	if len(rhs) < rhsRows*rhsCols {
		panic("fc: rhs slice too short")
	}
	if bias != nil && len(bias) < rhsRows {
		panic("fc: bias slice too short")
	}
	if rhsRows > 0 && len(dst) < (rhsRows-1)*int(p.AddressOffset)+1 {
		panic("fc: dst slice too short")
	}

	return vecMatMultTS8Impl(lhs, rhs, bias, dst, rhsCols, rhsRows, p)
}

// Impl returns the strategy for a given kernel level, mainly for tests and
// diagnostics. The returned function performs no argument checks.
func Impl(level qnn.KernelLevel) Kernel {
	switch level {
	case qnn.LevelVector:
		return VecMatMultTS8Vector
	case qnn.LevelPacked:
		return VecMatMultTS8Packed
	default:
		return VecMatMultTS8Scalar
	}
}

// finishS8 applies the shared post-processing pipeline to one accumulator:
// requantize, output zero-point, activation clamp, narrow to int8.
func finishS8(acc int32, p Params) int8 {
	v := qnn.Requantize(acc, p.Multiplier, p.Shift) + p.DSTOffset
	if v < p.ActivationMin {
		v = p.ActivationMin
	}
	if v > p.ActivationMax {
		v = p.ActivationMax
	}
	return int8(v)
}
