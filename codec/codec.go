// Package codec centralizes how record documents are turned into bytes.
//
// Persisted records store the codec name and the compression type in their
// envelope, so changing the default never breaks existing blobs. Only
// registered codecs can be named in an envelope.
package codec

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// MaxNameLen is the longest codec name an envelope can hold.
const MaxNameLen = 255

var (
	// ErrInvalidName is returned for codec names an envelope cannot carry.
	ErrInvalidName = errors.New("codec: invalid name")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("codec: already registered")
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used for newly written records.
var Default Codec = GoJSON{}

var registry = struct {
	sync.RWMutex
	codecs map[string]Codec
}{
	codecs: map[string]Codec{
		JSON{}.Name():   JSON{},
		GoJSON{}.Name(): GoJSON{},
	},
}

// ValidateName checks that name is non-empty printable ASCII of at most
// MaxNameLen bytes.
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLen {
		return fmt.Errorf("%w: %q must be 1-%d bytes", ErrInvalidName, name, MaxNameLen)
	}
	for i := 0; i < len(name); i++ {
		if name[i] <= ' ' || name[i] > '~' {
			return fmt.Errorf("%w: %q contains byte %#x", ErrInvalidName, name, name[i])
		}
	}
	return nil
}

// Register makes c available to ByName, and so to decoding.
func Register(c Codec) error {
	name := c.Name()
	if err := ValidateName(name); err != nil {
		return err
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.codecs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	registry.codecs[name] = c
	return nil
}

// ByName returns a registered codec by its stable name.
func ByName(name string) (Codec, bool) {
	registry.RLock()
	defer registry.RUnlock()
	c, ok := registry.codecs[name]
	return c, ok
}

// Names returns the registered codec names, sorted.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.codecs))
	for name := range registry.codecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MustMarshal is a helper for tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
