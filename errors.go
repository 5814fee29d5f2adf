package rcrd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rcrd/blobstore"
	"github.com/hupe1980/rcrd/persistence"
)

var (
	// ErrNotFound is returned when no record is stored under a name.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidName is returned for empty or malformed record names.
	ErrInvalidName = errors.New("invalid record name")
	// ErrNilStore is returned by Open without a store.
	ErrNilStore = errors.New("nil blob store")
	// ErrNilRecord is returned when a nil record is written.
	ErrNilRecord = errors.New("nil record")
)

// ErrCorruptRecord indicates a stored blob that cannot be decoded.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrCorruptRecord struct {
	Name  string
	cause error
}

func (e *ErrCorruptRecord) Error() string {
	return fmt.Sprintf("corrupt record %q: %v", e.Name, e.cause)
}

func (e *ErrCorruptRecord) Unwrap() error { return e.cause }

func translateError(name string, err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %q: %w", ErrNotFound, name, err)
	}
	if errors.Is(err, blobstore.ErrInvalidName) {
		return fmt.Errorf("%w: %q: %w", ErrInvalidName, name, err)
	}

	// Envelope damage.
	for _, target := range []error{
		persistence.ErrInvalidMagic,
		persistence.ErrInvalidVersion,
		persistence.ErrChecksum,
		persistence.ErrTruncated,
		persistence.ErrUnknownCodec,
	} {
		if errors.Is(err, target) {
			return &ErrCorruptRecord{Name: name, cause: err}
		}
	}

	return err
}
