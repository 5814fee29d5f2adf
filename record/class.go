package record

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/hupe1980/rcrd/vector"
)

// Class identifies a concrete kind of record. Two records have the same
// class when their class names are equal.
//
// A Class may additionally implement Formatter, MathOperator or
// RecordCaster. Operations that find no hook fall back to the base
// behaviour.
type Class interface {
	Name() string
}

// Formatter renders one string per record element.
type Formatter interface {
	Format(r *Record) ([]string, error)
}

// MathOperator gives a record class numeric semantics.
type MathOperator interface {
	Math(op string, r *Record, args ...vector.Vector) (vector.Vector, error)
}

// RecordCaster overrides how records are cast to this class. Implementations
// that only want to adjust the default can call DefaultCast.
type RecordCaster interface {
	CastRecord(x, to *Record) (*Record, error)
}

type tag string

func (t tag) Name() string { return string(t) }

// Base is the class of records built without WithClass.
var Base Class = tag("record")

// NewClass returns a class that carries only a name and no hooks.
func NewClass(name string) Class { return tag(name) }

func sameClass(a, b Class) bool { return a.Name() == b.Name() }

var registry = struct {
	sync.RWMutex
	classes map[string]Class
}{classes: map[string]Class{Base.Name(): Base}}

// RegisterClass makes c available to LookupClass, so records decoded from
// storage get their hooks back. Registering a class of the same type under
// the same name again replaces it.
func RegisterClass(c Class) error {
	name := strings.TrimSpace(c.Name())
	if name == "" {
		return fmt.Errorf("record: class name must not be blank")
	}

	registry.Lock()
	defer registry.Unlock()

	if prev, ok := registry.classes[name]; ok && reflect.TypeOf(prev) != reflect.TypeOf(c) {
		return fmt.Errorf("%w: %q", ErrClassRegistered, name)
	}
	registry.classes[name] = c
	return nil
}

// LookupClass returns the class registered under name.
func LookupClass(name string) (Class, bool) {
	registry.RLock()
	defer registry.RUnlock()

	c, ok := registry.classes[name]
	return c, ok
}

// ClassByName returns the registered class or, for unknown names, a
// tag-only class with that name.
func ClassByName(name string) Class {
	if c, ok := LookupClass(name); ok {
		return c
	}
	return NewClass(name)
}
