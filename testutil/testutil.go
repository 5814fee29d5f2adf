package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/rcrd/record"
	"github.com/hupe1980/rcrd/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Column returns a random atomic column of length n with some missing
// elements. kind must be atomic.
func (r *RNG) Column(kind vector.Kind, n int) vector.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch kind {
	case vector.KindBool:
		v := make([]bool, n)
		for i := range v {
			v[i] = r.rand.Intn(2) == 1
		}
		return withMissing(r, vector.NewColumn(v), n)
	case vector.KindInt:
		v := make([]int64, n)
		for i := range v {
			v[i] = r.rand.Int63n(2000) - 1000
		}
		return withMissing(r, vector.NewColumn(v), n)
	case vector.KindFloat:
		v := make([]float64, n)
		for i := range v {
			v[i] = r.rand.NormFloat64()
		}
		return withMissing(r, vector.NewColumn(v), n)
	case vector.KindString:
		v := make([]string, n)
		for i := range v {
			v[i] = fmt.Sprintf("s%d", r.rand.Intn(100))
		}
		return withMissing(r, vector.NewColumn(v), n)
	default:
		panic(fmt.Sprintf("testutil: %s is not atomic", kind))
	}
}

// withMissing is called with r.mu held.
func withMissing[T vector.Scalar](r *RNG, c *vector.Column[T], n int) vector.Vector {
	var pos []int
	for i := range n {
		if r.rand.Intn(5) == 0 {
			pos = append(pos, i)
		}
	}
	return c.WithMissing(pos...)
}

var atomicKinds = []vector.Kind{vector.KindBool, vector.KindInt, vector.KindFloat, vector.KindString}

// Record returns a record with n rows and width atomic fields named f0, f1, ...
func (r *RNG) Record(n, width int) *record.Record {
	fields := make([]record.Field, width)
	for i := range fields {
		fields[i] = record.Field{
			Name:   fmt.Sprintf("f%d", i),
			Vector: r.Column(atomicKinds[r.Intn(len(atomicKinds))], n),
		}
	}
	rec, err := record.New(fields)
	if err != nil {
		panic(err)
	}
	return rec
}

// NestedRecord returns a record with n rows whose last field is itself a
// record.
func (r *RNG) NestedRecord(n int) *record.Record {
	inner := r.Record(n, 2)
	rec, err := record.New([]record.Field{
		{Name: "id", Vector: r.Column(vector.KindInt, n)},
		{Name: "inner", Vector: inner},
	}, record.WithClass(record.NewClass("nested")))
	if err != nil {
		panic(err)
	}
	return rec
}
