package openblas

import (
	"fmt"

	"github.com/blasgo/openblas-build/pkgs/target"
)

// Interface selects the integer calling convention of the compiled library.
type Interface int

const (
	// LP64 is the 32-bit index width convention, the external build's default.
	LP64 Interface = iota
	// ILP64 compiles with 64-bit wide integer indices.
	ILP64
)

// String returns the interface name in lowercase.
func (i Interface) String() string {
	if i == ILP64 {
		return "ilp64"
	}
	return "lp64"
}

// ParseInterface returns the Interface for "lp64" or "ilp64".
func ParseInterface(s string) (Interface, error) {
	switch s {
	case "", "lp64", "LP64":
		return LP64, nil
	case "ilp64", "ILP64":
		return ILP64, nil
	}
	return LP64, fmt.Errorf("unknown interface %q (want lp64 or ilp64)", s)
}

// BuildOption configures a single OpenBLAS build. The zero value selects the
// external build's own defaults. A BuildOption is consumed once per build and
// never mutated by it.
type BuildOption struct {
	NoStatic  bool // do not build libopenblas.a
	NoShared  bool // do not build libopenblas.so
	NoCBLAS   bool
	NoLAPACK  bool
	NoLAPACKE bool
	NoFortran bool
	UseThread bool
	UseOpenMP bool

	// DynamicArch requests a multi-target kernel build. It maps to no
	// make token.
	DynamicArch bool

	Interface Interface

	// Target pins the CPU microarchitecture to build for. When empty the
	// external build auto-detects the host CPU.
	Target target.Target
}

// MakeArgs translates the option record into the argument tokens for the
// external make invocation. The token order is fixed so that identical
// options always produce the identical command line.
func (opt BuildOption) MakeArgs() []string {
	var args []string
	if opt.NoStatic {
		args = append(args, "NO_STATIC=1")
	}
	if opt.NoShared {
		args = append(args, "NO_SHARED=1")
	}
	if opt.NoCBLAS {
		args = append(args, "NO_CBLAS=1")
	}
	if opt.NoLAPACK {
		args = append(args, "NO_LAPACK=1")
	}
	if opt.NoLAPACKE {
		args = append(args, "NO_LAPACKE=1")
	}
	if opt.NoFortran {
		args = append(args, "NOFORTRAN=1")
	}
	if opt.UseThread {
		args = append(args, "USE_THREAD=1")
	}
	if opt.UseOpenMP {
		args = append(args, "USE_OPENMP=1")
	}
	if opt.Interface == ILP64 {
		args = append(args, "INTERFACE64=1")
	}
	if opt.Target != "" {
		args = append(args, "TARGET="+opt.Target.Token())
	}
	return args
}
