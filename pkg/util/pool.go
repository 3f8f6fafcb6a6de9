package util

import "runtime"

// GetOptimalPoolSize returns the worker count for CPU-bound parallel work:
// twice the core count, clamped to [4, 32]. The floor keeps some
// parallelism on small machines; the ceiling bounds memory on large ones.
func GetOptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// GetOptimalPoolSizeWithOverride uses override when positive, otherwise
// the computed size.
func GetOptimalPoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return GetOptimalPoolSize()
}
