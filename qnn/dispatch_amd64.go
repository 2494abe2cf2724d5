//go:build amd64

package qnn

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is part of the amd64 baseline, so the vector level is always
	// available here. The check is kept for symmetry with other arches
	// and so a hypothetical no-SSE2 environment degrades cleanly to the
	// packed-word level rather than to scalar.
	detected := LevelPacked
	if cpu.X86.HasSSE2 {
		detected = LevelVector
	}
	setLevel(resolveLevel(detected))
}
