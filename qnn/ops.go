package qnn

// This file provides the pure Go implementations of the lane operations.
// Every kernel level shares these semantics; the levels differ in how the
// kernels are structured, not in what a single operation computes.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction. Integer lanes wrap on overflow.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication. Integer lanes wrap on overflow.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes at lane precision. For a widening sum of int8
// lanes use SumWideS8, which accumulates at 32-bit precision.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}

// IfThenElse performs conditional selection: active lanes from a,
// inactive lanes from b.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := len(mask.bits)
	if len(a.data) < n {
		n = len(a.data)
	}
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes are zero, so a masked load of a partial chunk feeds
// accumulate operations without contributing to the result.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := len(mask.bits)
	if len(src) < n {
		n = len(src)
	}
	result := make([]T, len(mask.bits))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = src[i]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// MaskStore stores vector data to a slice only for lanes where the mask is
// true. Inactive lanes leave the destination untouched.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := len(mask.bits)
	if len(v.data) < n {
		n = len(v.data)
	}
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
