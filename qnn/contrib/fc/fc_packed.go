package fc

import (
	"github.com/ajroetker/go-qnn/qnn"
)

// VecMatMultTS8Packed is the packed-word strategy. It processes two output
// rows per pass: each 4-element chunk of lhs is loaded as one 32-bit word,
// widened into int16 pairs with the zero-point offset folded in, and two
// dual multiply-accumulates per chunk advance both row accumulators in
// lockstep. Accumulation stays at exact int32 precision, so the result is
// byte-identical to the scalar reference.
//
// Columns beyond the last multiple of four finish in a scalar cleanup
// loop; an odd trailing row runs a single-row variant of the packed loop.
func VecMatMultTS8Packed(lhs, rhs []int8, bias []int32, dst []int8, rhsCols, rhsRows int, p Params) Status {
	stride := int(p.AddressOffset)
	offset2 := qnn.PackS16x2(int16(p.LHSOffset), int16(p.LHSOffset))
	colQuads := rhsCols / 4

	rhsIdx := 0
	dstIdx := 0
	biasIdx := 0

	for i := 0; i < rhsRows/2; i++ {
		var acc0, acc1 int32
		if bias != nil {
			acc0 = bias[biasIdx]
			acc1 = bias[biasIdx+1]
			biasIdx += 2
		}

		li := 0
		r0 := rhsIdx
		r1 := rhsIdx + rhsCols
		for j := 0; j < colQuads; j++ {
			w := qnn.LoadS8x4(lhs[li:])
			vecOdd := qnn.AddS16x2(offset2, qnn.ExtendOddS8(w))
			vecEven := qnn.AddS16x2(offset2, qnn.ExtendEvenS8(w))

			k := qnn.LoadS8x4(rhs[r0:])
			acc0 = qnn.DualMulAccS16(acc0, qnn.ExtendOddS8(k), vecOdd)
			acc0 = qnn.DualMulAccS16(acc0, qnn.ExtendEvenS8(k), vecEven)

			k = qnn.LoadS8x4(rhs[r1:])
			acc1 = qnn.DualMulAccS16(acc1, qnn.ExtendOddS8(k), vecOdd)
			acc1 = qnn.DualMulAccS16(acc1, qnn.ExtendEvenS8(k), vecEven)

			li += 4
			r0 += 4
			r1 += 4
		}

		for c := colQuads * 4; c < rhsCols; c++ {
			v := int32(lhs[c]) + p.LHSOffset
			acc0 += v * int32(rhs[rhsIdx+c])
			acc1 += v * int32(rhs[rhsIdx+rhsCols+c])
		}
		rhsIdx += 2 * rhsCols

		dst[dstIdx] = finishS8(acc0, p)
		dst[dstIdx+stride] = finishS8(acc1, p)
		dstIdx += 2 * stride
	}

	if rhsRows%2 == 1 {
		var acc int32
		if bias != nil {
			acc = bias[biasIdx]
		}

		li := 0
		r0 := rhsIdx
		for j := 0; j < colQuads; j++ {
			w := qnn.LoadS8x4(lhs[li:])
			vecOdd := qnn.AddS16x2(offset2, qnn.ExtendOddS8(w))
			vecEven := qnn.AddS16x2(offset2, qnn.ExtendEvenS8(w))

			k := qnn.LoadS8x4(rhs[r0:])
			acc = qnn.DualMulAccS16(acc, qnn.ExtendOddS8(k), vecOdd)
			acc = qnn.DualMulAccS16(acc, qnn.ExtendEvenS8(k), vecEven)

			li += 4
			r0 += 4
		}

		for c := colQuads * 4; c < rhsCols; c++ {
			acc += (int32(lhs[c]) + p.LHSOffset) * int32(rhs[rhsIdx+c])
		}

		dst[dstIdx] = finishS8(acc, p)
	}

	return StatusSuccess
}
