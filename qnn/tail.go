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

// TailMask creates a mask with the first 'count' lanes active.
// This is the lane predicate used for the final partial chunk of a row
// whose length is not a multiple of the vector width: a count of
// MaxLanes or more yields an all-true mask, so the same masked loop body
// handles full and partial chunks.
//
// Example:
//
//	lanes := qnn.MaxLanes[int8]()
//	for col := 0; col < cols; col += lanes {
//	    m := qnn.TailMask[int8](cols - col)
//	    v := qnn.MaskLoad(m, row[col:])
//	    // ... accumulate
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail is a helper for processing arrays that handles both full
// vectors and the tail (remainder) chunk.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     the vector width
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of the vector width.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned returns true if size is a multiple of the vector width.
func IsAligned[T Lanes](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}
