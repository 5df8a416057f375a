// Package config loads YAML build profiles for the command line tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blasgo/openblas-build/pkgs/openblas"
	"github.com/blasgo/openblas-build/pkgs/target"
)

// Profile is the on-disk form of a build configuration.
type Profile struct {
	Source string `yaml:"source,omitempty"`
	Out    string `yaml:"out,omitempty"`

	NoStatic    bool `yaml:"no_static,omitempty"`
	NoShared    bool `yaml:"no_shared,omitempty"`
	NoCBLAS     bool `yaml:"no_cblas,omitempty"`
	NoLAPACK    bool `yaml:"no_lapack,omitempty"`
	NoLAPACKE   bool `yaml:"no_lapacke,omitempty"`
	NoFortran   bool `yaml:"no_fortran,omitempty"`
	UseThread   bool `yaml:"use_thread,omitempty"`
	UseOpenMP   bool `yaml:"use_openmp,omitempty"`
	DynamicArch bool `yaml:"dynamic_arch,omitempty"`

	Interface string `yaml:"interface,omitempty"` // lp64 (default) or ilp64
	Target    string `yaml:"target,omitempty"`
}

// Load reads a profile from path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// BuildOption converts the profile into the typed build configuration.
func (p *Profile) BuildOption() (openblas.BuildOption, error) {
	opt := openblas.BuildOption{
		NoStatic:    p.NoStatic,
		NoShared:    p.NoShared,
		NoCBLAS:     p.NoCBLAS,
		NoLAPACK:    p.NoLAPACK,
		NoLAPACKE:   p.NoLAPACKE,
		NoFortran:   p.NoFortran,
		UseThread:   p.UseThread,
		UseOpenMP:   p.UseOpenMP,
		DynamicArch: p.DynamicArch,
	}
	iface, err := openblas.ParseInterface(p.Interface)
	if err != nil {
		return opt, err
	}
	opt.Interface = iface
	if p.Target != "" {
		tgt, err := target.Parse(p.Target)
		if err != nil {
			return opt, err
		}
		opt.Target = tgt
	}
	return opt, nil
}
