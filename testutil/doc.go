// Package testutil provides testing utilities for staticvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source so property tests over
// push/pop/insert/remove sequences are reproducible.
//
//	rng := testutil.NewRNG(42)
//	vals := rng.Uint32s(16)
//	idx := rng.Intn(len(vals))
package testutil
