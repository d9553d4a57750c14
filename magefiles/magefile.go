//go:build mage

// Package main provides build targets for the openklant project using Mage.
//
// Usage:
//
//	mage build       Compile the openklant binary to bin/
//	mage test        Run all tests with the race detector
//	mage cover       Run tests and write coverage.out
//	mage lint        Run golangci-lint
//	mage fakeServer  Build and run the in-memory API on :8000
//	mage clean       Remove build artifacts
//	mage install     Install openklant to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "openklant"
	binaryDir  = "bin"
	cmdDir     = "./cmd/openklant"
	coverFile  = "coverage.out"
)

// Build compiles the openklant binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}

	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Cover runs all tests and prints the coverage per function.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}

	return sh.RunV("go", "tool", "cover", "-func="+coverFile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// FakeServer builds and runs the in-memory klantinteracties API.
func FakeServer() error {
	mg.Deps(Build)

	return sh.RunV(filepath.Join(binaryDir, binaryName), "fake-server", "--addr", ":8000")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}

	if err := os.Remove(coverFile); err != nil && !os.IsNotExist(err) {
		return err
	}

	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)

	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}

	return sh.Copy(filepath.Join(gopath, "bin", binaryName), filepath.Join(binaryDir, binaryName))
}

// ldflags stamps the version reported by `openklant version`.
func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}

	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "none"
	}

	return strings.Join([]string{
		fmt.Sprintf("-X main.version=%s", version),
		fmt.Sprintf("-X main.commit=%s", commit),
		fmt.Sprintf("-X main.date=%s", time.Now().UTC().Format(time.RFC3339)),
	}, " ")
}
