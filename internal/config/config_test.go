package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blasgo/openblas-build/pkgs/openblas"
	"github.com/blasgo/openblas-build/pkgs/target"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
source: /opt/openblas
out: /tmp/openblas-build
no_shared: true
use_thread: true
interface: ilp64
target: haswell
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Source != "/opt/openblas" || p.Out != "/tmp/openblas-build" {
		t.Errorf("paths = %q, %q", p.Source, p.Out)
	}

	opt, err := p.BuildOption()
	if err != nil {
		t.Fatalf("BuildOption: %v", err)
	}
	want := openblas.BuildOption{
		NoShared:  true,
		UseThread: true,
		Interface: openblas.ILP64,
		Target:    target.HASWELL,
	}
	if diff := cmp.Diff(want, opt); diff != "" {
		t.Fatalf("BuildOption mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyProfileIsDefaults(t *testing.T) {
	p, err := Load(writeProfile(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opt, err := p.BuildOption()
	if err != nil {
		t.Fatalf("BuildOption: %v", err)
	}
	if len(opt.MakeArgs()) != 0 {
		t.Fatalf("default profile emits args: %v", opt.MakeArgs())
	}
}

func TestLoadBadInterface(t *testing.T) {
	p, err := Load(writeProfile(t, "interface: lp32\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := p.BuildOption(); err == nil {
		t.Fatal("BuildOption accepted bad interface")
	}
}

func TestLoadBadTarget(t *testing.T) {
	p, err := Load(writeProfile(t, "target: PENTIUM9\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := p.BuildOption(); err == nil {
		t.Fatal("BuildOption accepted unknown target")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeProfile(t, ":\t- not yaml")); err == nil {
		t.Fatal("Load of malformed yaml succeeded")
	}
}
