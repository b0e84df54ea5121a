package main

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hostInfo describes the machine a benchmark ran on. It is informational
// only; the worker count never depends on it.
type hostInfo struct {
	Arch     string
	CPUs     int
	Features []string
}

// feature is one named instruction-set flag.
type feature struct {
	name string
	has  bool
}

// archFeatures lists the flags golang.org/x/sys/cpu exposes for goarch.
func archFeatures(goarch string) []feature {
	switch goarch {
	case "amd64", "386":
		return []feature{
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fphp", cpu.ARM64.HasFPHP},
			{"asimdhp", cpu.ARM64.HasASIMDHP},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	return nil
}

// describeHost collects the extensions present on the current machine.
func describeHost() hostInfo {
	info := hostInfo{Arch: runtime.GOARCH, CPUs: runtime.NumCPU()}
	for _, f := range archFeatures(runtime.GOARCH) {
		if f.has {
			info.Features = append(info.Features, f.name)
		}
	}

	return info
}
