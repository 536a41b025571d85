// Package testutil provides testing utilities for vecunits.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible raw triples for property tests:
//
//	rng := testutil.NewRNG(seed)
//	xyz := rng.Triple(-100, 100)
//	batch := rng.Triples(1000, -1, 1)
//	ints := rng.IntTriples(1000, 50)
package testutil
