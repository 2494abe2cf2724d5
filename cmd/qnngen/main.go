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

// Command qnngen generates the strategy-dispatch file for a kernel package.
//
// A kernel package provides one exported function per capability level,
// named <Kernel>Scalar, <Kernel>Packed and <Kernel>Vector, plus a
// package-level variable <kernel>Impl holding the active strategy. qnngen
// verifies the three strategies share one signature and writes an init()
// that assigns the strategy matching qnn.CurrentLevel().
//
// Usage:
//
//	qnngen -pkg . -kernel VecMatMultTS8 -output z_fc_dispatch.go
//
// Or via go:generate in the kernel package:
//
//	//go:generate go run github.com/ajroetker/go-qnn/cmd/qnngen -pkg . -kernel VecMatMultTS8 -output z_fc_dispatch.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

const qnnImportPath = "github.com/ajroetker/go-qnn/qnn"

var levels = []string{"Vector", "Packed", "Scalar"}

var (
	pkgPattern = flag.String("pkg", ".", "kernel package to load")
	kernelList = flag.String("kernel", "", "comma-separated kernel base names (required)")
	outputFile = flag.String("output", "", "output file (required)")
)

func main() {
	flag.Parse()

	if *kernelList == "" || *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -kernel and -output flags are required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	kernels := strings.Split(*kernelList, ",")

	pkg, err := loadPackage(*pkgPattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, kernel := range kernels {
		if err := checkKernel(pkg, kernel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	src, err := render(pkg.Types.Name(), kernels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadPackage(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pattern, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %s has errors", pattern)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(pkgs))
	}
	return pkgs[0], nil
}

// checkKernel verifies the three strategy functions exist with identical
// signatures and that the impl variable they dispatch into is present.
func checkKernel(pkg *packages.Package, kernel string) error {
	scope := pkg.Types.Scope()

	var sig *types.Signature
	for _, level := range levels {
		name := kernel + level
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok {
			return fmt.Errorf("%s: missing strategy %s", pkg.Types.Name(), name)
		}
		s := fn.Type().(*types.Signature)
		if sig == nil {
			sig = s
		} else if !types.Identical(sig, s) {
			return fmt.Errorf("%s: signature of %s differs from %s%s", pkg.Types.Name(), name, kernel, levels[0])
		}
	}

	implVar := implName(kernel)
	if _, ok := scope.Lookup(implVar).(*types.Var); !ok {
		return fmt.Errorf("%s: missing dispatch variable %s", pkg.Types.Name(), implVar)
	}
	return nil
}

func render(pkgName string, kernels []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by qnngen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import (\n\t%q\n)\n\n", qnnImportPath)
	fmt.Fprintf(&buf, "func init() {\n")
	fmt.Fprintf(&buf, "\tswitch qnn.CurrentLevel() {\n")
	for _, level := range []string{"Vector", "Packed"} {
		fmt.Fprintf(&buf, "\tcase qnn.Level%s:\n", level)
		for _, kernel := range kernels {
			fmt.Fprintf(&buf, "\t\t%s = %s%s\n", implName(kernel), kernel, level)
		}
	}
	fmt.Fprintf(&buf, "\tdefault:\n")
	for _, kernel := range kernels {
		fmt.Fprintf(&buf, "\t\t%s = %sScalar\n", implName(kernel), kernel)
	}
	fmt.Fprintf(&buf, "\t}\n}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated dispatch: %w", err)
	}
	return src, nil
}

// implName lowers the first rune of the kernel name and appends "Impl",
// e.g. VecMatMultTS8 -> vecMatMultTS8Impl.
func implName(kernel string) string {
	runes := []rune(kernel)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes) + "Impl"
}
