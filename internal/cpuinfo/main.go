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

// Package main provides a diagnostic tool that prints the resolved kernel
// level and the CPU features it was derived from.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-qnn/qnn"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()

	fmt.Printf("Kernel level: %s\n", qnn.CurrentLevel())
	fmt.Printf("Vector width: %d bytes\n", qnn.CurrentWidth())
	fmt.Printf("int8 lanes:   %d\n", qnn.MaxLanes[int8]())
	fmt.Printf("int32 lanes:  %d\n", qnn.MaxLanes[int32]())
	fmt.Println()

	if lvl, ok := qnn.ForcedLevel(); ok {
		fmt.Printf("QNN_KERNEL override: %s\n", lvl)
	}
	if qnn.NoSimdEnv() {
		fmt.Printf("QNN_NO_SIMD set: %s\n", os.Getenv("QNN_NO_SIMD"))
	}

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasSVE:     %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:    %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS: %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:   %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:  %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX2:   %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
