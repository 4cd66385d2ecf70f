// Package compute provides pluggable backends for elementwise maps
// over pixel buffers.
//
// Every field in the pipeline is embarrassingly data-parallel: no
// pixel depends on another, so a backend may split a map across
// workers without changing observable results.
//
//	backend := compute.GetBackend()
//	backend.Map(dst, src, fn)
//
// The CPU backend chunks large buffers across runtime.NumCPU()
// goroutines and runs small ones serially.
package compute
