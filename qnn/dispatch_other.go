//go:build !amd64 && !arm64 && !arm

package qnn

func init() {
	// Other architectures fall back to the scalar reference level.
	// Future candidates:
	// - riscv64: packed level once the P extension is detectable
	// - wasm: vector level via SIMD128
	setLevel(resolveLevel(LevelScalar))
}
