package fc

import (
	"github.com/ajroetker/go-qnn/qnn"
)

// VecMatMultTS8Vector is the predicated-lane strategy. It processes three
// output rows per pass over 16-lane int8 chunks; the final partial chunk
// of each row is handled by the same loop body under a tail mask rather
// than a scalar cleanup.
//
// The zero-point contribution is deferred: each row accumulates both the
// raw dot product and the raw element sum, and the identity
//
//	sum_c (lhs[c]+off)*rhs[r][c] = sum_c lhs[c]*rhs[r][c] + off*sum_c rhs[r][c]
//
// turns the per-element offset add into one correction per row. The
// factoring is exact in int32, so output stays byte-identical to the
// scalar reference.
//
// Post-processing runs on a 4-lane int32 vector (fourth lane unused):
// bias, offset correction, requantize, output zero-point, clamp. The store
// is a strided scatter for AddressOffset > 1 and a masked contiguous
// narrow store otherwise, writing only the three valid lanes either way.
func VecMatMultTS8Vector(lhs, rhs []int8, bias []int32, dst []int8, rhsCols, rhsRows int, p Params) Status {
	lanes := qnn.MaxLanes[int8]()
	stride := int(p.AddressOffset)

	rhsIdx := 0
	dstIdx := 0
	biasIdx := 0

	for t := 0; t < rhsRows/3; t++ {
		var acc0, acc1, acc2 int32
		var sum0, sum1, sum2 int32

		row0 := rhsIdx
		row1 := rhsIdx + rhsCols
		row2 := rhsIdx + 2*rhsCols
		for col := 0; col < rhsCols; col += lanes {
			m := qnn.TailMask[int8](rhsCols - col)

			in := qnn.MaskLoad(m, lhs[col:])

			k0 := qnn.MaskLoad(m, rhs[row0+col:])
			sum0 = qnn.SumWideS8(sum0, k0)
			acc0 = qnn.DotWideS8(acc0, k0, in)

			k1 := qnn.MaskLoad(m, rhs[row1+col:])
			sum1 = qnn.SumWideS8(sum1, k1)
			acc1 = qnn.DotWideS8(acc1, k1, in)

			k2 := qnn.MaskLoad(m, rhs[row2+col:])
			sum2 = qnn.SumWideS8(sum2, k2)
			acc2 = qnn.DotWideS8(acc2, k2, in)
		}
		rhsIdx += 3 * rhsCols

		acc := qnn.Load([]int32{acc0, acc1, acc2, 0})
		rows := qnn.TailMask[int32](3)
		if bias != nil {
			acc = qnn.Add(acc, qnn.MaskLoad(rows, bias[biasIdx:]))
			biasIdx += 3
		}
		rowSums := qnn.Load([]int32{sum0, sum1, sum2, 0})
		acc = qnn.Add(acc, qnn.Mul(qnn.Set(p.LHSOffset), rowSums))

		acc = qnn.RequantizeLanes(acc, p.Multiplier, p.Shift)
		acc = qnn.Add(acc, qnn.Set(p.DSTOffset))
		acc = qnn.Clamp(acc, qnn.Set(p.ActivationMin), qnn.Set(p.ActivationMax))

		out := qnn.DemoteI32ToI8(acc)
		if stride > 1 {
			offsets := qnn.IndicesStride[int32](4, 0, int32(stride))
			qnn.ScatterIndexMasked(out, dst[dstIdx:], offsets, qnn.TailMask[int8](3))
		} else {
			qnn.MaskStore(qnn.TailMask[int8](3), out, dst[dstIdx:])
		}
		dstIdx += 3 * stride
	}

	// Remainder rows run the same predicated column loop for one row's
	// accumulator, with scalar post-processing.
	for r := 0; r < rhsRows%3; r++ {
		var acc, sum int32

		for col := 0; col < rhsCols; col += lanes {
			m := qnn.TailMask[int8](rhsCols - col)

			in := qnn.MaskLoad(m, lhs[col:])
			k := qnn.MaskLoad(m, rhs[rhsIdx+col:])
			sum = qnn.SumWideS8(sum, k)
			acc = qnn.DotWideS8(acc, k, in)
		}
		rhsIdx += rhsCols

		if bias != nil {
			acc += bias[biasIdx]
			biasIdx++
		}
		acc += p.LHSOffset * sum

		dst[dstIdx] = finishS8(acc, p)
		dstIdx += stride
	}

	return StatusSuccess
}
