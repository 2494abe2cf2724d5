package qnn

// This file provides gather and scatter operations over non-contiguous
// memory. The kernel strategies use a strided scatter to interleave
// output rows into channel-major layouts.

// GatherIndex loads elements from non-contiguous locations specified by
// indices. For each lane i, it loads src[indices[i]].
// Out-of-bounds indices (negative or >= len(src)) yield zero for that lane.
func GatherIndex[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I]) Vec[T] {
	n := len(indices.data)
	result := make([]T, n)
	for i := range n {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(src) {
			result[i] = src[idx]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// ScatterIndex stores elements to non-contiguous locations specified by
// indices. For each lane i, it stores v[i] to dst[indices[i]].
// Out-of-bounds indices skip the store for that lane.
func ScatterIndex[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, indices Vec[I]) {
	n := min(len(indices.data), len(v.data))
	for i := range n {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(dst) {
			dst[idx] = v.data[i]
		}
	}
}

// ScatterIndexMasked stores elements to non-contiguous locations, but only
// for lanes where the mask is true. Out-of-bounds indices and inactive
// lanes skip the store.
func ScatterIndexMasked[T Lanes, I ~int32 | ~int64](v Vec[T], dst []T, indices Vec[I], mask Mask[T]) {
	n := min(len(mask.bits), min(len(indices.data), len(v.data)))
	for i := range n {
		if mask.bits[i] {
			idx := int(indices.data[i])
			if idx >= 0 && idx < len(dst) {
				dst[idx] = v.data[i]
			}
		}
	}
}

// IndicesFromFunc builds an index vector of numLanes lanes via f.
func IndicesFromFunc[I ~int32 | ~int64](numLanes int, f func(lane int) I) Vec[I] {
	data := make([]I, numLanes)
	for i := range numLanes {
		data[i] = f(i)
	}
	return Vec[I]{data: data}
}

// IndicesIota builds the index vector {0, 1, 2, ...} of numLanes lanes.
func IndicesIota[I ~int32 | ~int64](numLanes int) Vec[I] {
	return IndicesFromFunc(numLanes, func(lane int) I { return I(lane) })
}

// IndicesStride builds the index vector {start, start+stride,
// start+2*stride, ...} of numLanes lanes. With a stride equal to the
// output address offset this addresses one interleaved result per lane.
func IndicesStride[I ~int32 | ~int64](numLanes int, start, stride I) Vec[I] {
	return IndicesFromFunc(numLanes, func(lane int) I { return start + I(lane)*stride })
}
