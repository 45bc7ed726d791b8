//go:build mage

// Package main provides build targets for the soroban project using Mage.
//
// Usage:
//
//	mage build     Compile the soroban binary to bin/
//	mage test      Run all tests
//	mage lint      Run golangci-lint
//	mage gallery   Render a sample card batch to out/gallery/
//	mage clean     Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "soroban"
	binaryDir  = "bin"
)

// Build compiles the soroban binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), ".")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Gallery builds the binary and renders a sample card batch, one per shape.
func Gallery() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	for _, shape := range []string{"diamond", "circle", "square"} {
		out := filepath.Join("out", "gallery", shape)
		err := sh.RunV(bin, "cards", "--range", "0-9",
			"--shape", shape, "--scheme", "place-value", "--out", out)
		if err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts and generated images.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return os.RemoveAll("out")
}
