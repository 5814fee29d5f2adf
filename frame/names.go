package frame

import (
	"fmt"
	"strings"
)

// CheckNames normalizes column names and verifies they are unique and
// non-blank. Normalization trims surrounding whitespace.
func CheckNames(names []string) ([]string, error) {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrBlankName, i)
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateName, name, prev, i)
		}
		seen[name] = i
		out[i] = name
	}
	return out, nil
}
