package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/rcrd/codec"
	"github.com/hupe1980/rcrd/record"
)

// Encode serializes r with c and compresses the payload with comp. A nil
// codec means codec.Default.
func Encode(r *record.Record, c codec.Codec, comp codec.Compression) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	doc, err := FromRecord(r)
	if err != nil {
		return nil, err
	}
	raw, err := c.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("persistence: marshal with %s: %w", c.Name(), err)
	}
	block, err := codec.Compress(raw, comp)
	if err != nil {
		return nil, fmt.Errorf("persistence: compress with %s: %w", comp, err)
	}

	name := c.Name()
	if err := codec.ValidateName(name); err != nil {
		return nil, err
	}
	if _, ok := codec.ByName(name); !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrUnknownCodec, name)
	}
	h := Header{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(comp),
		CodecLen:    uint8(len(name)),
		Checksum:    Checksum(block),
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(name) + len(block))
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	buf.WriteString(name)
	buf.Write(block)
	return buf.Bytes(), nil
}

// ReadHeader parses and validates the header of a record blob.
func ReadHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, ErrTruncated
	}
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return h, err
	}
	if h.Magic != MagicNumber {
		return h, ErrInvalidMagic
	}
	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrInvalidVersion, h.Version)
	}
	return h, nil
}

// Decode reverses Encode.
func Decode(data []byte) (*record.Record, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	rest := data[headerSize:]
	if len(rest) < int(h.CodecLen) {
		return nil, ErrTruncated
	}
	name := string(rest[:h.CodecLen])
	block := rest[h.CodecLen:]

	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	if Checksum(block) != h.Checksum {
		return nil, ErrChecksum
	}
	raw, err := codec.Decompress(block, codec.Compression(h.Compression))
	if err != nil {
		return nil, fmt.Errorf("persistence: decompress: %w", err)
	}

	var doc Document
	if err := c.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("persistence: unmarshal with %s: %w", name, err)
	}
	return doc.Record()
}

// MarshalDocument encodes r as a bare Document with c, without the envelope.
// It is meant for human-readable exchange files.
func MarshalDocument(r *record.Record, c codec.Codec) ([]byte, error) {
	doc, err := FromRecord(r)
	if err != nil {
		return nil, err
	}
	return c.Marshal(doc)
}

// UnmarshalDocument is the inverse of MarshalDocument.
func UnmarshalDocument(data []byte, c codec.Codec) (*record.Record, error) {
	var doc Document
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Record()
}
