package persistence

import (
	"errors"

	"github.com/hupe1980/rcrd/internal/hash"
)

const (
	// MagicNumber identifies record blobs; it is "RCRD" on disk.
	MagicNumber uint32 = 0x44524352
	// Version is the current envelope version.
	Version uint16 = 1

	headerSize = 12
)

var (
	ErrInvalidMagic    = errors.New("persistence: invalid magic number")
	ErrInvalidVersion  = errors.New("persistence: unsupported version")
	ErrChecksum        = errors.New("persistence: checksum mismatch")
	ErrUnknownCodec    = errors.New("persistence: unknown codec")
	ErrTruncated       = errors.New("persistence: truncated blob")
	ErrUnsupportedKind = errors.New("persistence: unsupported field kind")
	ErrInvalidValue    = errors.New("persistence: invalid encoded value")
)

// Header is the fixed-size prefix of every record blob.
type Header struct {
	Magic       uint32
	Version     uint16
	Compression uint8
	CodecLen    uint8
	Checksum    uint32 // CRC32C of the payload block
}

// Checksum returns the CRC32C of data.
func Checksum(data []byte) uint32 {
	return hash.CRC32C(data)
}
