// Package env resolves the per-user directories used for source checkouts
// and staged builds.
package env

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// WorkDir returns the per-user workspace directory, creating it if needed.
func WorkDir() (string, error) {
	dir := filepath.Join(xdg.CacheHome, "openblas-build")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// SourceDir returns the expected location of the OpenBLAS source checkout.
// OPENBLAS_SOURCE overrides the default workspace location. The returned
// path is not checked for existence.
func SourceDir() (string, error) {
	if dir := os.Getenv("OPENBLAS_SOURCE"); dir != "" {
		return dir, nil
	}
	workDir, err := WorkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(workDir, "source"), nil
}

// DefaultOutDir returns the default staging directory for a build.
func DefaultOutDir() (string, error) {
	workDir, err := WorkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(workDir, "build"), nil
}
