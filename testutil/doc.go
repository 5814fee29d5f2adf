// Package testutil generates random records for tests.
//
// This package is intended for use in tests and benchmarks only.
//
//	rng := testutil.NewRNG(seed)
//	r := rng.Record(10, 3)        // 10 rows, 3 atomic fields
//	nested := rng.NestedRecord(4) // one nested record field
package testutil
