package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blasgo/openblas-build/internal/config"
	"github.com/blasgo/openblas-build/internal/env"
	"github.com/blasgo/openblas-build/pkgs/openblas"
	"github.com/blasgo/openblas-build/pkgs/target"
)

var (
	buildProfile   string
	buildSource    string
	buildOut       string
	buildTarget    string
	buildInterface string

	buildNoStatic    bool
	buildNoShared    bool
	buildNoCBLAS     bool
	buildNoLAPACK    bool
	buildNoLAPACKE   bool
	buildNoFortran   bool
	buildUseThread   bool
	buildUseOpenMP   bool
	buildDynamicArch bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Stage the OpenBLAS sources and run the external build",
	Long: `Build copies the source checkout into the output directory (replacing
whatever was there), runs make with the derived arguments, and leaves
out.log and err.log in the output directory.`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVarP(&buildProfile, "config", "c", "", "YAML build profile to start from")
	f.StringVar(&buildSource, "source", "", "OpenBLAS source checkout (default $OPENBLAS_SOURCE)")
	f.StringVarP(&buildOut, "out", "o", "", "Output directory (replaced if it exists)")
	f.StringVar(&buildTarget, "target", "", "CPU target token, e.g. HASWELL (default: auto-detect)")
	f.StringVar(&buildInterface, "interface", "", "Integer interface width: lp64 or ilp64")
	f.BoolVar(&buildNoStatic, "no-static", false, "Do not build the static library")
	f.BoolVar(&buildNoShared, "no-shared", false, "Do not build the shared library")
	f.BoolVar(&buildNoCBLAS, "no-cblas", false, "Do not build the CBLAS layer")
	f.BoolVar(&buildNoLAPACK, "no-lapack", false, "Do not build LAPACK")
	f.BoolVar(&buildNoLAPACKE, "no-lapacke", false, "Do not build LAPACKE")
	f.BoolVar(&buildNoFortran, "no-fortran", false, "Build without a Fortran compiler")
	f.BoolVar(&buildUseThread, "use-thread", false, "Build the threaded library")
	f.BoolVar(&buildUseOpenMP, "use-openmp", false, "Build the OpenMP library")
	f.BoolVar(&buildDynamicArch, "dynamic-arch", false, "Build kernels for multiple targets")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	opt, srcDir, outDir, err := resolveBuild(cmd)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir, err = env.DefaultOutDir()
		if err != nil {
			return fmt.Errorf("failed to resolve output directory: %w", err)
		}
	}

	b := openblas.New()
	if srcDir != "" {
		b.Source(srcDir)
	}
	d, err := b.Run(cmd.Context(), opt, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("built openblas in %s (%s)\n", d.OutDir, d.Duration.Round(0))
	if d.StaticLib != "" {
		fmt.Printf("  static: %s\n", d.StaticLib)
	}
	if d.SharedLib != "" {
		fmt.Printf("  shared: %s\n", d.SharedLib)
	}
	return nil
}

// resolveBuild merges the profile file (when given) with the command line,
// command line winning for any flag that was set explicitly.
func resolveBuild(cmd *cobra.Command) (openblas.BuildOption, string, string, error) {
	var opt openblas.BuildOption
	var srcDir, outDir string

	if buildProfile != "" {
		p, err := config.Load(buildProfile)
		if err != nil {
			return opt, "", "", err
		}
		opt, err = p.BuildOption()
		if err != nil {
			return opt, "", "", fmt.Errorf("invalid profile %s: %w", buildProfile, err)
		}
		srcDir, outDir = p.Source, p.Out
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		srcDir = buildSource
	}
	if flags.Changed("out") {
		outDir = buildOut
	}
	if flags.Changed("no-static") {
		opt.NoStatic = buildNoStatic
	}
	if flags.Changed("no-shared") {
		opt.NoShared = buildNoShared
	}
	if flags.Changed("no-cblas") {
		opt.NoCBLAS = buildNoCBLAS
	}
	if flags.Changed("no-lapack") {
		opt.NoLAPACK = buildNoLAPACK
	}
	if flags.Changed("no-lapacke") {
		opt.NoLAPACKE = buildNoLAPACKE
	}
	if flags.Changed("no-fortran") {
		opt.NoFortran = buildNoFortran
	}
	if flags.Changed("use-thread") {
		opt.UseThread = buildUseThread
	}
	if flags.Changed("use-openmp") {
		opt.UseOpenMP = buildUseOpenMP
	}
	if flags.Changed("dynamic-arch") {
		opt.DynamicArch = buildDynamicArch
	}
	if flags.Changed("interface") {
		iface, err := openblas.ParseInterface(buildInterface)
		if err != nil {
			return opt, "", "", err
		}
		opt.Interface = iface
	}
	if flags.Changed("target") {
		tgt, err := target.Parse(buildTarget)
		if err != nil {
			return opt, "", "", err
		}
		opt.Target = tgt
	}
	return opt, srcDir, outDir, nil
}
