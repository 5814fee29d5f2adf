package frame

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/rcrd/vector"
)

// Policy decides how column names are matched when casting one frame to
// the shape of another.
type Policy uint8

const (
	// MatchExact requires both frames to have the same set of column names.
	// The result takes its column order from the target.
	MatchExact Policy = iota
	// MatchFill fills target columns absent from the source with missing
	// values. Source columns absent from the target are still rejected.
	MatchFill
)

// String returns the string representation of the Policy.
func (p Policy) String() string {
	switch p {
	case MatchExact:
		return "exact"
	case MatchFill:
		return "fill"
	default:
		return "unknown"
	}
}

// ParsePolicy is the inverse of Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "exact", "":
		return MatchExact, nil
	case "fill":
		return MatchFill, nil
	default:
		return MatchExact, fmt.Errorf("frame: unknown cast policy %q", s)
	}
}

// Cast converts x to the column shape of to. Each column is cast with
// vector.Cast; row count and row labels come from x.
func Cast(x, to *Frame, policy Policy) (*Frame, error) {
	var extra, missing []string
	for _, c := range x.cols {
		if _, ok := to.Lookup(c.Name); !ok {
			extra = append(extra, c.Name)
		}
	}
	for _, c := range to.cols {
		if _, ok := x.Lookup(c.Name); !ok {
			missing = append(missing, c.Name)
		}
	}
	if len(extra) > 0 {
		return nil, fmt.Errorf("%w: unexpected columns %s", ErrShapeMismatch, quoteAll(extra))
	}
	if len(missing) > 0 && policy != MatchFill {
		return nil, fmt.Errorf("%w: missing columns %s", ErrShapeMismatch, quoteAll(missing))
	}

	cols := make([]Column, len(to.cols))
	for i, c := range to.cols {
		src, ok := x.Lookup(c.Name)
		if !ok {
			filled, err := vector.Take(c.Vector, fill(x.rows))
			if err != nil {
				return nil, fmt.Errorf("%w: column %q: %w", ErrShapeMismatch, c.Name, err)
			}
			cols[i] = Column{Name: c.Name, Vector: filled}
			continue
		}
		v, err := vector.Cast(src, c.Vector)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", ErrShapeMismatch, c.Name, err)
		}
		cols[i] = Column{Name: c.Name, Vector: v}
	}

	opts := []Option{WithRows(x.rows)}
	if x.rowNames != nil {
		opts = append(opts, WithRowNames(x.rowNames))
	}
	return New(cols, opts...)
}

func fill(n int) []int {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = vector.Fill
	}
	return pos
}

func quoteAll(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for i, n := range sorted {
		sorted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(sorted, ", ")
}
