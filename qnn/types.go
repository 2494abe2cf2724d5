// Package qnn provides portable integer vector operations for quantized
// neural-network kernels, with runtime capability dispatch.
//
// It follows the Highway model: kernels are written once against a small
// lane abstraction, and a strategy suited to the detected hardware class
// (scalar, packed-word, true vector lanes) is resolved once at startup.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-qnn/qnn"
//
//	a := qnn.Load(weights)
//	b := qnn.Load(inputs)
//	acc := qnn.DotWideS8(0, a, b)
package qnn

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Quantized inference works entirely in integers, so Lanes is integer-only.
type Lanes interface {
	Integers
}

// Vec is a portable vector handle. The logical register width is fixed at
// 16 bytes on every kernel level (16 int8 lanes, 4 int32 lanes), matching
// the narrowest vector unit the packed and vector strategies model.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in hot loops.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the qnn.Store function.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Mask is a lane predicate. It controls which lanes participate in masked
// loads, stores, and scatters, and is how partial (tail) chunks of a row
// are processed without touching out-of-range memory.
//
// Mask instances should not be created directly; use TailMask or the
// comparison operations.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
