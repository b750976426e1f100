package reportpdf

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one report is generated at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent reports; each holds a few full-page
	// RGBA surfaces (~8MB each) until it is assembled.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for PNG encoding and the PDF writer.
	cpuDivisor = 2
)

// ResolveWorkers determines how many reports to generate in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
