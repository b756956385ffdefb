package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Workers returns the goroutine limit used for record-parallel work.
// It prefers the logical core count reported by the CPU itself and
// falls back to the runtime when the topology is unknown.
func Workers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
