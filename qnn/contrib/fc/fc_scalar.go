package fc

// VecMatMultTS8Scalar is the portable reference strategy. It processes
// three output rows per pass over lhs to amortize the activation reload;
// the grouping is an optimization only, output order and values are
// identical to a naive one-row-at-a-time loop.
func VecMatMultTS8Scalar(lhs, rhs []int8, bias []int32, dst []int8, rhsCols, rhsRows int, p Params) Status {
	stride := int(p.AddressOffset)

	rhsIdx := 0
	dstIdx := 0
	biasIdx := 0

	for t := 0; t < rhsRows/3; t++ {
		var acc0, acc1, acc2 int32
		if bias != nil {
			acc0 = bias[biasIdx]
			acc1 = bias[biasIdx+1]
			acc2 = bias[biasIdx+2]
			biasIdx += 3
		}

		row0 := rhsIdx
		row1 := rhsIdx + rhsCols
		row2 := rhsIdx + 2*rhsCols
		for c := 0; c < rhsCols; c++ {
			v := int32(lhs[c]) + p.LHSOffset
			acc0 += v * int32(rhs[row0+c])
			acc1 += v * int32(rhs[row1+c])
			acc2 += v * int32(rhs[row2+c])
		}
		rhsIdx += 3 * rhsCols

		dst[dstIdx] = finishS8(acc0, p)
		dst[dstIdx+stride] = finishS8(acc1, p)
		dst[dstIdx+2*stride] = finishS8(acc2, p)
		dstIdx += 3 * stride
	}

	// Remainder rows, one at a time.
	for r := 0; r < rhsRows%3; r++ {
		var acc int32
		if bias != nil {
			acc = bias[biasIdx]
			biasIdx++
		}

		for c := 0; c < rhsCols; c++ {
			acc += (int32(lhs[c]) + p.LHSOffset) * int32(rhs[rhsIdx+c])
		}
		rhsIdx += rhsCols

		dst[dstIdx] = finishS8(acc, p)
		dstIdx += stride
	}

	return StatusSuccess
}
