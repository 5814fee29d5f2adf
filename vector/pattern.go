package vector

import (
	"fmt"
	"math"
)

// MaxLength bounds the number of positions a Pattern may resolve to.
const MaxLength = math.MaxInt32

// Pattern describes how to replicate a vector. A single pattern resolves to
// one position vector, so every field of a composite vector is replicated
// identically.
//
// The zero value leaves the vector unchanged.
type Pattern struct {
	times     int
	each      int
	length    int
	hasTimes  bool
	hasEach   bool
	hasLength bool
}

// Times repeats the whole vector k times.
func Times(k int) Pattern { return Pattern{}.Times(k) }

// Each repeats every element k times in place.
func Each(k int) Pattern { return Pattern{}.Each(k) }

// Times returns a copy of p that repeats the whole vector k times.
func (p Pattern) Times(k int) Pattern {
	p.times, p.hasTimes = k, true
	return p
}

// Each returns a copy of p that repeats every element k times.
func (p Pattern) Each(k int) Pattern {
	p.each, p.hasEach = k, true
	return p
}

// LengthOut returns a copy of p whose output is recycled to exactly n
// elements. When set, the Times factor is ignored.
func (p Pattern) LengthOut(n int) Pattern {
	p.length, p.hasLength = n, true
	return p
}

// Resolve returns the source positions for a vector of length n.
func (p Pattern) Resolve(n int) ([]int, error) {
	times, each := 1, 1
	if p.hasTimes {
		times = p.times
	}
	if p.hasEach {
		each = p.each
	}
	if times < 0 || each < 0 {
		return nil, fmt.Errorf("%w: times=%d each=%d", ErrNegativeFactor, times, each)
	}
	if p.hasLength && p.length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, p.length)
	}

	baseLen, ok := mulLength(n, each)
	if !ok {
		return nil, fmt.Errorf("%w: %d elements each=%d", ErrTooLong, n, each)
	}
	if p.hasLength && p.length > MaxLength {
		return nil, fmt.Errorf("%w: length=%d", ErrTooLong, p.length)
	}

	base := make([]int, 0, baseLen)
	for i := 0; i < n; i++ {
		for e := 0; e < each; e++ {
			base = append(base, i)
		}
	}

	if p.hasLength {
		out := make([]int, p.length)
		for j := range out {
			if len(base) == 0 {
				out[j] = Fill
				continue
			}
			out[j] = base[j%len(base)]
		}
		return out, nil
	}

	outLen, ok := mulLength(len(base), times)
	if !ok {
		return nil, fmt.Errorf("%w: %d elements times=%d", ErrTooLong, len(base), times)
	}
	out := make([]int, 0, outLen)
	if len(base) == 0 {
		return out, nil
	}
	for t := 0; t < times; t++ {
		out = append(out, base...)
	}
	return out, nil
}

// mulLength returns a*b for non-negative a and b if it is at most MaxLength.
func mulLength(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > MaxLength/b {
		return 0, false
	}
	return a * b, true
}

// String renders the pattern for logs.
func (p Pattern) String() string {
	s := "rep("
	sep := ""
	if p.hasTimes {
		s += fmt.Sprintf("times=%d", p.times)
		sep = ","
	}
	if p.hasEach {
		s += fmt.Sprintf("%seach=%d", sep, p.each)
		sep = ","
	}
	if p.hasLength {
		s += fmt.Sprintf("%slength=%d", sep, p.length)
	}
	return s + ")"
}
