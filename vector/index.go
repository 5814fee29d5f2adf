package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

type indexKind uint8

const (
	indexAll indexKind = iota
	indexAt
	indexExcept
	indexMask
	indexSelection
)

// Index selects positions of a vector. The zero value selects every position.
type Index struct {
	kind indexKind
	pos  []int
	mask []bool
	sel  *roaring.Bitmap
}

// All selects every position.
func All() Index { return Index{} }

// At selects the given 0-based positions in the given order. Repeats are allowed.
func At(pos ...int) Index {
	return Index{kind: indexAt, pos: append([]int(nil), pos...)}
}

// Except selects every position not listed, in ascending order.
func Except(pos ...int) Index {
	return Index{kind: indexExcept, pos: append([]int(nil), pos...)}
}

// Mask selects the positions whose flag is true. The mask must have the
// vector's length, or length one in which case it is recycled.
func Mask(mask ...bool) Index {
	return Index{kind: indexMask, mask: append([]bool(nil), mask...)}
}

// Selection selects the positions contained in bm, in ascending order.
func Selection(bm *roaring.Bitmap) Index {
	if bm == nil {
		bm = roaring.New()
	}
	return Index{kind: indexSelection, sel: bm.Clone()}
}

// IsAll reports whether the index selects every position.
func (i Index) IsAll() bool { return i.kind == indexAll }

// Resolve returns the positions selected from a vector of length n.
func (i Index) Resolve(n int) ([]int, error) {
	switch i.kind {
	case indexAll:
		return seq(n), nil
	case indexAt:
		out := make([]int, len(i.pos))
		for j, p := range i.pos {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, p, n)
			}
			out[j] = p
		}
		return out, nil
	case indexExcept:
		bm := roaring.New()
		bm.AddRange(0, uint64(n))
		for _, p := range i.pos {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("%w: excluded position %d, length %d", ErrOutOfBounds, p, n)
			}
			bm.Remove(uint32(p))
		}
		return toInts(bm.ToArray()), nil
	case indexMask:
		switch len(i.mask) {
		case n:
			out := make([]int, 0, n)
			for p, keep := range i.mask {
				if keep {
					out = append(out, p)
				}
			}
			return out, nil
		case 1:
			if i.mask[0] {
				return seq(n), nil
			}
			return []int{}, nil
		default:
			return nil, fmt.Errorf("%w: mask has %d elements, vector has %d", ErrMaskLength, len(i.mask), n)
		}
	case indexSelection:
		if !i.sel.IsEmpty() && int(i.sel.Maximum()) >= n {
			return nil, fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, i.sel.Maximum(), n)
		}
		return toInts(i.sel.ToArray()), nil
	}
	return nil, fmt.Errorf("vector: unknown index kind %d", i.kind)
}

// String renders the index for logs and error messages.
func (i Index) String() string {
	switch i.kind {
	case indexAt:
		return "at(" + joinInts(i.pos) + ")"
	case indexExcept:
		return "except(" + joinInts(i.pos) + ")"
	case indexMask:
		parts := make([]string, len(i.mask))
		for j, b := range i.mask {
			parts[j] = strconv.FormatBool(b)
		}
		return "mask(" + strings.Join(parts, ",") + ")"
	case indexSelection:
		return "selection(" + joinInts(toInts(i.sel.ToArray())) + ")"
	default:
		return "all"
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
