package openblas

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/blasgo/openblas-build/internal/env"
)

// markerFile is the entry point of the external build; a checkout without it
// is not usable.
const markerFile = "Makefile"

// SourceDir locates the OpenBLAS source checkout and verifies it is
// initialized. OPENBLAS_SOURCE overrides the default workspace location.
func SourceDir() (string, error) {
	dir, err := env.SourceDir()
	if err != nil {
		return "", err
	}
	if err := checkSource(dir); err != nil {
		return "", err
	}
	return dir, nil
}

func checkSource(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, markerFile)); err != nil {
		return &ConfigError{Dir: dir}
	}
	return nil
}

// stage copies the source tree into outDir, replacing whatever was there.
// The copy lands in a temporary sibling directory first and is renamed into
// place, so an interrupted copy never leaves a half-staged tree at outDir.
func stage(srcDir, outDir string) error {
	if err := checkSource(srcDir); err != nil {
		return err
	}

	parent := filepath.Dir(outDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return &StageError{Path: parent, Err: err}
	}
	tmp := filepath.Join(parent, ".stage-"+uuid.NewString())
	if err := os.CopyFS(tmp, os.DirFS(srcDir)); err != nil {
		os.RemoveAll(tmp)
		return &StageError{Path: srcDir, Err: err}
	}
	if err := os.RemoveAll(outDir); err != nil {
		os.RemoveAll(tmp)
		return &StageError{Path: outDir, Err: err}
	}
	if err := os.Rename(tmp, outDir); err != nil {
		os.RemoveAll(tmp)
		return &StageError{Path: outDir, Err: err}
	}
	return nil
}
