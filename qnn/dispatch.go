package qnn

import (
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// KernelLevel represents the hardware capability class the kernels run as.
type KernelLevel int

const (
	// LevelScalar indicates plain scalar code, the portable reference.
	LevelScalar KernelLevel = iota

	// LevelPacked indicates packed-word arithmetic: groups of four 8-bit
	// values processed inside 32-bit words, as on packed-integer DSP
	// instruction sets.
	LevelPacked

	// LevelVector indicates true vector lanes with predication: 16 int8
	// lanes per register with tail masking.
	LevelVector
)

// String returns a human-readable name for the kernel level.
func (l KernelLevel) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelPacked:
		return "packed"
	case LevelVector:
		return "vector"
	default:
		return "unknown"
	}
}

// currentLevel is the resolved kernel level for this process.
// Set by init() in dispatch_*.go files; never changed afterwards, so
// strategy selection happens exactly once, not per call.
var currentLevel KernelLevel

// currentWidth is the logical vector width in bytes. All levels use
// 16-byte vectors so lane counts are identical everywhere.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

// CurrentLevel returns the kernel level selected for this process.
func CurrentLevel() KernelLevel {
	return currentLevel
}

// CurrentWidth returns the logical vector width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level,
// for example "vector" or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the QNN_NO_SIMD environment variable is set.
// When set, kernels use the scalar reference level regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("QNN_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// ForcedLevel reports the kernel level requested via the QNN_KERNEL
// environment variable ("scalar", "packed" or "vector"), if any.
// Unrecognized values are ignored. Every level is portable Go, so forcing
// any level on any architecture is safe.
func ForcedLevel() (KernelLevel, bool) {
	switch strings.ToLower(os.Getenv("QNN_KERNEL")) {
	case "scalar":
		return LevelScalar, true
	case "packed":
		return LevelPacked, true
	case "vector":
		return LevelVector, true
	}
	return LevelScalar, false
}

// resolveLevel applies the environment overrides to the detected level.
// Called from the per-arch init() functions.
func resolveLevel(detected KernelLevel) KernelLevel {
	if lvl, ok := ForcedLevel(); ok {
		return lvl
	}
	if NoSimdEnv() {
		return LevelScalar
	}
	return detected
}

func setLevel(l KernelLevel) {
	currentLevel = l
	currentWidth = 16
	currentName = l.String()
}

// MaxLanes returns the number of lanes for type T at the logical 16-byte
// vector width: 16 for int8, 8 for int16, 4 for int32.
func MaxLanes[T Lanes]() int {
	elementSize := sizeOf[T]()
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

func sizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
