// SPDX-License-Identifier: MIT

package benchmark

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a benchmark ran on.
type Host struct {
	OS        string   `json:"os"`
	Arch      string   `json:"arch"`
	NumCPU    int      `json:"num_cpu"`
	GoVersion string   `json:"go_version"`
	Features  []string `json:"features"`
}

type feature struct {
	name string
	has  bool
}

// DetectHost reports the runtime platform and the SIMD/FMA features that
// golang.org/x/sys/cpu detects. Only features relevant to float64 kernels are listed.
func DetectHost() Host {
	h := Host{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	var flags []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		flags = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		flags = []feature{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}
	h.Features = make([]string, 0, len(flags))
	for _, f := range flags {
		if f.has {
			h.Features = append(h.Features, f.name)
		}
	}

	return h
}
