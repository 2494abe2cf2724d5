package qnn

// Widening reductions. Quantized kernels multiply int8 lanes but accumulate
// at 32-bit precision; these are the accumulate-form reductions the vector
// strategy is built from.

// SumWideS8 adds every int8 lane of v to acc at int32 precision and
// returns the new accumulator. Inactive (zeroed) lanes of a masked load
// contribute nothing, so the same call handles full and partial chunks.
func SumWideS8(acc int32, v Vec[int8]) int32 {
	for i := 0; i < len(v.data); i++ {
		acc += int32(v.data[i])
	}
	return acc
}

// DotWideS8 multiplies the int8 lanes of a and b pairwise, widening each
// product to int32, adds all products to acc and returns the new
// accumulator. This is the masked multiply-accumulate at the heart of the
// vector strategy's dot products.
func DotWideS8(acc int32, a, b Vec[int8]) int32 {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	for i := 0; i < n; i++ {
		acc += int32(a.data[i]) * int32(b.data[i])
	}
	return acc
}
