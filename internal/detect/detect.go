// Package detect suggests a catalog target for the host CPU. The suggestion
// is advisory: omitting TARGET entirely lets the external build tool run its
// own, far more precise, detection.
package detect

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/blasgo/openblas-build/pkgs/target"
)

// Host returns the closest catalog target for the current machine.
func Host() (target.Target, error) {
	switch runtime.GOARCH {
	case "amd64", "386":
		infos, err := cpu.Info()
		if err != nil {
			return "", fmt.Errorf("read cpu info: %w", err)
		}
		if len(infos) == 0 {
			return "", fmt.Errorf("no cpu info available")
		}
		return classifyX86(infos[0].ModelName, infos[0].Flags), nil
	case "arm":
		return target.ARMV7, nil
	case "arm64":
		return target.ARMV8, nil
	case "ppc64", "ppc64le":
		return target.POWER8, nil
	case "s390x":
		return target.ZARCH_GENERIC, nil
	}
	return "", fmt.Errorf("no catalog target for %s", runtime.GOARCH)
}

// classifyX86 picks an x86 target from the CPU model name and feature flags,
// preferring the newest instruction set the core advertises.
func classifyX86(modelName string, flags []string) target.Target {
	name := strings.ToLower(modelName)
	if strings.Contains(name, "ryzen") || strings.Contains(name, "epyc") {
		return target.ZEN
	}

	have := make(map[string]bool, len(flags))
	for _, f := range flags {
		have[strings.ToLower(f)] = true
	}
	switch {
	case have["avx512f"]:
		return target.SKYLAKEX
	case have["avx2"]:
		return target.HASWELL
	case have["avx"]:
		return target.SANDYBRIDGE
	case have["sse4_2"]:
		return target.NEHALEM
	case have["ssse3"]:
		return target.CORE2
	case have["sse3"]:
		return target.PRESCOTT
	}
	return target.SSE_GENERIC
}
