package openblas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newSource lays out a minimal source checkout with the Makefile marker.
func newSource(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	files := map[string]string{
		"Makefile":          "all:\n\t@echo build\n",
		"Makefile.rule":     "# build rules\n",
		"kernel/x86/gemm.c": "/* kernel */\n",
	}
	for name, content := range files {
		path := filepath.Join(src, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return src
}

func TestStageCopiesInside(t *testing.T) {
	src := newSource(t)
	out := filepath.Join(t.TempDir(), "build")

	if err := stage(src, out); err != nil {
		t.Fatalf("stage: %v", err)
	}

	for _, name := range []string{"Makefile", "Makefile.rule", "kernel/x86/gemm.c"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("staged file %s missing: %v", name, err)
		}
	}
	// Source stays untouched.
	if _, err := os.Stat(filepath.Join(src, "kernel/x86/gemm.c")); err != nil {
		t.Errorf("source tree modified: %v", err)
	}
}

func TestStageReplacesExisting(t *testing.T) {
	src := newSource(t)
	out := filepath.Join(t.TempDir(), "build")

	if err := os.MkdirAll(filepath.Join(out, "old"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(out, "stale.o"), []byte("stale"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := stage(src, out); err != nil {
		t.Fatalf("stage: %v", err)
	}

	for _, stale := range []string{"stale.o", "old"} {
		if _, err := os.Stat(filepath.Join(out, stale)); !os.IsNotExist(err) {
			t.Errorf("%s survived restaging", stale)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "Makefile")); err != nil {
		t.Errorf("Makefile missing after restaging: %v", err)
	}
}

func TestStageMissingMarker(t *testing.T) {
	src := t.TempDir() // no Makefile
	parent := t.TempDir()
	out := filepath.Join(parent, "build")

	err := stage(src, out)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("stage = %v, want *ConfigError", err)
	}
	if cfgErr.Dir != src {
		t.Errorf("ConfigError.Dir = %q, want %q", cfgErr.Dir, src)
	}

	// The failure must precede any side effect: no output directory, no
	// leftover temp staging directory.
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output directory created despite missing marker")
	}
	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("staging left %d entries behind", len(entries))
	}
}

func TestStageNoTempLeftovers(t *testing.T) {
	src := newSource(t)
	parent := t.TempDir()
	out := filepath.Join(parent, "build")

	if err := stage(src, out); err != nil {
		t.Fatalf("stage: %v", err)
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "build" {
		t.Errorf("unexpected entries next to output directory: %v", entries)
	}
}

func TestSourceDir(t *testing.T) {
	src := newSource(t)
	t.Setenv("OPENBLAS_SOURCE", src)

	dir, err := SourceDir()
	if err != nil {
		t.Fatalf("SourceDir(): %v", err)
	}
	if dir != src {
		t.Fatalf("SourceDir() = %q, want %q", dir, src)
	}
}

func TestSourceDirUninitialized(t *testing.T) {
	t.Setenv("OPENBLAS_SOURCE", t.TempDir())

	_, err := SourceDir()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("SourceDir() = %v, want *ConfigError", err)
	}
}
