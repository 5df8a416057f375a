// Package openblas drives the Makefile build of a vendored OpenBLAS source
// tree: it stages the checkout into a disposable output directory, turns a
// BuildOption into make argument tokens, and supervises the external make
// run, leaving out.log and err.log behind for inspection.
package openblas

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/blasgo/openblas-build/pkgs/buildsys"
)

const defaultTool = "make"

// Detail describes a finished build. It is an open record: fields may be
// added without changing the Build calling convention.
type Detail struct {
	OutDir    string
	MakeArgs  []string
	Interface Interface
	Target    string // token passed to make; empty means auto-detected
	OutLog    string
	ErrLog    string
	Duration  time.Duration

	// Expected artifact names relative to OutDir once the external build
	// has completed. Their presence is not verified here.
	StaticLib string // empty when NoStatic
	SharedLib string // empty when NoShared
}

// Builder runs OpenBLAS builds. Staging is destructive: two concurrent
// builds must not share an output directory. Callers needing parallel
// builds allocate disjoint directories.
type Builder struct {
	SourceDir string

	tool   string
	outDir string
	env    map[string]string
	clk    clock.Clock
}

var _ buildsys.BuildSystem = (*Builder)(nil)

// New creates a Builder. The source checkout is resolved on Run when Source
// was never called.
func New() *Builder {
	return &Builder{
		tool: defaultTool,
		env:  map[string]string{},
		clk:  clock.NewClock(),
	}
}

func (b *Builder) Source(dir string) {
	b.SourceDir = dir
}

func (b *Builder) Env(key, val string) {
	if b.env == nil {
		b.env = map[string]string{}
	}
	b.env[key] = val
}

// OutputDir returns the directory of the last staged build.
func (b *Builder) OutputDir() string {
	return b.outDir
}

// Build invokes the external build tool in the staged directory with the
// given argument tokens. Run is the usual entry point; Build exists for
// callers that stage once and drive make themselves.
func (b *Builder) Build(args ...string) error {
	return b.build(context.Background(), args)
}

func (b *Builder) build(ctx context.Context, args []string) error {
	if b.outDir == "" {
		return fmt.Errorf("openblas: nothing staged, call Run")
	}
	return runTool(ctx, b.tool, b.outDir, args, b.env)
}

// Run stages the source tree into outDir and executes the external build
// with the arguments derived from opt, blocking until it exits. An existing
// outDir is replaced. On failure the staged directory and its logs are left
// in place for postmortem inspection.
func (b *Builder) Run(ctx context.Context, opt BuildOption, outDir string) (*Detail, error) {
	src := b.SourceDir
	if src == "" {
		dir, err := SourceDir()
		if err != nil {
			return nil, err
		}
		src = dir
	}
	if err := stage(src, outDir); err != nil {
		return nil, err
	}
	b.outDir = outDir

	args := opt.MakeArgs()
	start := b.clk.Now()
	if err := b.build(ctx, args); err != nil {
		return nil, err
	}

	d := &Detail{
		OutDir:    outDir,
		MakeArgs:  args,
		Interface: opt.Interface,
		Target:    opt.Target.Token(),
		OutLog:    filepath.Join(outDir, outLogName),
		ErrLog:    filepath.Join(outDir, errLogName),
		Duration:  b.clk.Since(start),
	}
	if !opt.NoStatic {
		d.StaticLib = "libopenblas.a"
	}
	if !opt.NoShared {
		d.SharedLib = sharedLibName()
	}
	return d, nil
}

// Build stages and builds opt into outDir using a default Builder. It is
// the one-shot form: the option value is consumed and the result handle is
// returned.
func (opt BuildOption) Build(outDir string) (*Detail, error) {
	return New().Run(context.Background(), opt, outDir)
}

func sharedLibName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libopenblas.dylib"
	case "windows":
		return "libopenblas.dll"
	}
	return "libopenblas.so"
}
