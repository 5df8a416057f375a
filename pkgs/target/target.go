// Package target enumerates the CPU microarchitectures the OpenBLAS build
// system accepts as TARGET values. The catalog follows TargetList.txt of
// OpenBLAS v0.3.10.
package target

import (
	"fmt"
	"strings"
)

// Target identifies a CPU microarchitecture by its canonical build-tool token.
type Target string

const (
	// X86/X86_64 Intel
	P2          Target = "P2"
	KATMAI      Target = "KATMAI"
	COPPERMINE  Target = "COPPERMINE"
	NORTHWOOD   Target = "NORTHWOOD"
	PRESCOTT    Target = "PRESCOTT"
	BANIAS      Target = "BANIAS"
	YONAH       Target = "YONAH"
	CORE2       Target = "CORE2"
	PENRYN      Target = "PENRYN"
	DUNNINGTON  Target = "DUNNINGTON"
	NEHALEM     Target = "NEHALEM"
	SANDYBRIDGE Target = "SANDYBRIDGE"
	HASWELL     Target = "HASWELL"
	SKYLAKEX    Target = "SKYLAKEX"
	ATOM        Target = "ATOM"

	// X86/X86_64 AMD
	ATHLON       Target = "ATHLON"
	OPTERON      Target = "OPTERON"
	OPTERON_SSE3 Target = "OPTERON_SSE3"
	BARCELONA    Target = "BARCELONA"
	SHANGHAI     Target = "SHANGHAI"
	ISTANBUL     Target = "ISTANBUL"
	BOBCAT       Target = "BOBCAT"
	BULLDOZER    Target = "BULLDOZER"
	PILEDRIVER   Target = "PILEDRIVER"
	STEAMROLLER  Target = "STEAMROLLER"
	EXCAVATOR    Target = "EXCAVATOR"
	ZEN          Target = "ZEN"

	// X86/X86_64 generic
	SSE_GENERIC Target = "SSE_GENERIC"
	VIAC3       Target = "VIAC3"
	NANO        Target = "NANO"

	// Power
	POWER4    Target = "POWER4"
	POWER5    Target = "POWER5"
	POWER6    Target = "POWER6"
	POWER7    Target = "POWER7"
	POWER8    Target = "POWER8"
	POWER9    Target = "POWER9"
	PPCG4     Target = "PPCG4"
	PPC970    Target = "PPC970"
	PPC970MP  Target = "PPC970MP"
	PPC440    Target = "PPC440"
	PPC440FP2 Target = "PPC440FP2"
	CELL      Target = "CELL"

	// MIPS
	P5600     Target = "P5600"
	MIPS1004K Target = "MIPS1004K"
	MIPS24K   Target = "MIPS24K"

	// MIPS64
	SICORTEX   Target = "SICORTEX"
	LOONGSON3A Target = "LOONGSON3A"
	LOONGSON3B Target = "LOONGSON3B"
	I6400      Target = "I6400"
	P6600      Target = "P6600"
	I6500      Target = "I6500"

	// IA64
	ITANIUM2 Target = "ITANIUM2"

	// Sparc
	SPARC   Target = "SPARC"
	SPARCV7 Target = "SPARCV7"

	// ARM
	CORTEXA15 Target = "CORTEXA15"
	CORTEXA9  Target = "CORTEXA9"
	ARMV7     Target = "ARMV7"
	ARMV6     Target = "ARMV6"
	ARMV5     Target = "ARMV5"

	// ARM64
	ARMV8        Target = "ARMV8"
	CORTEXA53    Target = "CORTEXA53"
	CORTEXA57    Target = "CORTEXA57"
	CORTEXA72    Target = "CORTEXA72"
	CORTEXA73    Target = "CORTEXA73"
	NEOVERSEN1   Target = "NEOVERSEN1"
	EMAG8180     Target = "EMAG8180"
	FALKOR       Target = "FALKOR"
	THUNDERX     Target = "THUNDERX"
	THUNDERX2T99 Target = "THUNDERX2T99"
	TSV110       Target = "TSV110"

	// System Z
	ZARCH_GENERIC Target = "ZARCH_GENERIC"
	Z13           Target = "Z13"
	Z14           Target = "Z14"
)

var catalog = []Target{
	P2, KATMAI, COPPERMINE, NORTHWOOD, PRESCOTT, BANIAS, YONAH, CORE2,
	PENRYN, DUNNINGTON, NEHALEM, SANDYBRIDGE, HASWELL, SKYLAKEX, ATOM,
	ATHLON, OPTERON, OPTERON_SSE3, BARCELONA, SHANGHAI, ISTANBUL, BOBCAT,
	BULLDOZER, PILEDRIVER, STEAMROLLER, EXCAVATOR, ZEN,
	SSE_GENERIC, VIAC3, NANO,
	POWER4, POWER5, POWER6, POWER7, POWER8, POWER9, PPCG4, PPC970,
	PPC970MP, PPC440, PPC440FP2, CELL,
	P5600, MIPS1004K, MIPS24K,
	SICORTEX, LOONGSON3A, LOONGSON3B, I6400, P6600, I6500,
	ITANIUM2,
	SPARC, SPARCV7,
	CORTEXA15, CORTEXA9, ARMV7, ARMV6, ARMV5,
	ARMV8, CORTEXA53, CORTEXA57, CORTEXA72, CORTEXA73, NEOVERSEN1,
	EMAG8180, FALKOR, THUNDERX, THUNDERX2T99, TSV110,
	ZARCH_GENERIC, Z13, Z14,
}

var byToken = func() map[string]Target {
	m := make(map[string]Target, len(catalog))
	for _, t := range catalog {
		m[string(t)] = t
	}
	return m
}()

// Supported returns the full catalog in its canonical order.
func Supported() []Target {
	out := make([]Target, len(catalog))
	copy(out, catalog)
	return out
}

// Token returns the canonical uppercase identifier recognized by the
// external build tool.
func (t Target) Token() string {
	return string(t)
}

// String returns the target as string.
func (t Target) String() string {
	return string(t)
}

// IsValid reports whether t is a catalog member.
func (t Target) IsValid() bool {
	_, ok := byToken[string(t)]
	return ok
}

// Parse returns the catalog Target for the provided token, matching
// case-insensitively, or an error if the token is not in the catalog.
func Parse(s string) (Target, error) {
	if t, ok := byToken[strings.ToUpper(s)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown target %q", s)
}
