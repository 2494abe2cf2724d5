//go:build arm

package qnn

func init() {
	// 32-bit ARM is the home of the packed-word strategy (four int8
	// values per 32-bit register, dual 16-bit multiply-accumulate).
	// NEON availability is not guaranteed on GOARM targets, so the
	// vector level is not auto-selected here; QNN_KERNEL=vector still
	// forces it.
	setLevel(resolveLevel(LevelPacked))
}
