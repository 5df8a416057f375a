package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkDir(t *testing.T) {
	workDir, err := WorkDir()
	if err != nil {
		t.Fatalf("WorkDir() returned error: %v", err)
	}
	if workDir == "" {
		t.Fatal("WorkDir() returned empty path")
	}

	info, err := os.Stat(workDir)
	if err != nil {
		t.Fatalf("directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("WorkDir() created a file instead of a directory")
	}
}

func TestWorkDirIdempotent(t *testing.T) {
	dir1, err := WorkDir()
	if err != nil {
		t.Fatalf("first WorkDir() call failed: %v", err)
	}
	dir2, err := WorkDir()
	if err != nil {
		t.Fatalf("second WorkDir() call failed: %v", err)
	}
	if dir1 != dir2 {
		t.Errorf("WorkDir() not idempotent: %q vs %q", dir1, dir2)
	}
}

func TestSourceDirOverride(t *testing.T) {
	t.Setenv("OPENBLAS_SOURCE", "/opt/openblas")
	dir, err := SourceDir()
	if err != nil {
		t.Fatalf("SourceDir(): %v", err)
	}
	if dir != "/opt/openblas" {
		t.Fatalf("SourceDir() = %q, want %q", dir, "/opt/openblas")
	}
}

func TestSourceDirDefault(t *testing.T) {
	t.Setenv("OPENBLAS_SOURCE", "")
	dir, err := SourceDir()
	if err != nil {
		t.Fatalf("SourceDir(): %v", err)
	}
	workDir, err := WorkDir()
	if err != nil {
		t.Fatalf("WorkDir(): %v", err)
	}
	if want := filepath.Join(workDir, "source"); dir != want {
		t.Fatalf("SourceDir() = %q, want %q", dir, want)
	}
}

func TestDefaultOutDir(t *testing.T) {
	out, err := DefaultOutDir()
	if err != nil {
		t.Fatalf("DefaultOutDir(): %v", err)
	}
	workDir, _ := WorkDir()
	if want := filepath.Join(workDir, "build"); out != want {
		t.Fatalf("DefaultOutDir() = %q, want %q", out, want)
	}
}
