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

// Package fc provides the s8 fully-connected support kernel: a quantized
// int8 vector by transposed-matrix multiplication with per-output
// requantization, bias addition and activation clamping. It is the inner
// loop of dense-layer inference in a quantized network runtime.
//
// # Operation
//
// For an activation vector lhs of rhsCols elements and a weight matrix rhs
// of rhsRows x rhsCols elements (row-major, each row dotted against lhs):
//
//	acc    = bias[r] + sum_c (lhs[c] + LHSOffset) * rhs[r][c]
//	out[r] = clamp(requantize(acc) + DSTOffset, ActivationMin, ActivationMax)
//
// Results are int8 values stored AddressOffset elements apart in dst, so
// callers can interleave output across channel-major layouts.
//
// # Strategies
//
// Three implementations share this contract and produce byte-identical
// output:
//
//   - VecMatMultTS8Scalar: portable reference, three rows per pass.
//   - VecMatMultTS8Packed: two rows per pass using packed 4-x-int8 words
//     (qnn.LoadS8x4 / qnn.DualMulAccS16), scalar cleanup for column tails.
//   - VecMatMultTS8Vector: three rows per pass using 16 predicated int8
//     lanes (qnn.TailMask / qnn.MaskLoad / qnn.DotWideS8) with the
//     zero-point contribution deferred to one row-sum correction per row.
//
// VecMatMultTS8 runs the strategy matching qnn.CurrentLevel(), resolved
// once at package init.
package fc
