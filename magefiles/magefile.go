// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

// Package main contains Mage build targets for paper-coder developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"

	"github.com/pdiddy/paper-coder/internal/evaluate"
	"github.com/pdiddy/paper-coder/pkg/types"
)

const (
	binDir  = "bin"
	binName = "paper-coder"
	cmdPkg  = "./cmd/paper-coder"
)

// Default is the target run when mage is invoked without arguments.
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build and run outputs.
func Clean() error {
	for _, dir := range []string{binDir, outputDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints project metrics for the Go sources: file count, tokens, and
// func keywords, split into production and test code.
func Stats() error {
	prod, test, err := collectGoFiles(".")
	if err != nil {
		return err
	}
	prodStats := evaluate.Statistics(prod)
	testStats := evaluate.Statistics(test)

	fmt.Printf("%-12s %6s %8s %6s\n", "", "files", "tokens", "funcs")
	fmt.Printf("%-12s %6d %8d %6d\n", "production", prodStats.FileCount, prodStats.TotalTokens, prodStats.FunctionCount)
	fmt.Printf("%-12s %6d %8d %6d\n", "tests", testStats.FileCount, testStats.TotalTokens, testStats.FunctionCount)
	return nil
}

// collectGoFiles reads every Go file under root, skipping hidden and
// underscore-prefixed directories, and splits them into production and test
// sources keyed by path.
func collectGoFiles(root string) (prod, test types.Repository, err error) {
	prod, test = types.Repository{}, types.Repository{}
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir || name == outputDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if strings.HasSuffix(name, "_test.go") {
			test[path] = string(data)
		} else {
			prod[path] = string(data)
		}
		return nil
	})
	return prod, test, err
}
