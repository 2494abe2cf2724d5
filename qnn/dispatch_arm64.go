//go:build arm64

package qnn

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has ASIMD (NEON) in the ARMv8-A base
	// architecture; the cpu package check mirrors the amd64 file and
	// keeps room for finer-grained detection later.
	detected := LevelPacked
	if cpu.ARM64.HasASIMD {
		detected = LevelVector
	}
	setLevel(resolveLevel(detected))
}
