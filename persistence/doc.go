// Package persistence turns records into self-describing byte blobs and back.
//
// A blob is a fixed header followed by the codec name and a compressed
// payload:
//
//	offset  size  field
//	0       4     magic "RCRD" (little-endian u32)
//	4       2     version
//	6       1     compression (codec.Compression)
//	7       1     codec name length
//	8       4     CRC32C of the payload block
//	12      n     codec name
//	12+n    ...   payload block (see codec.Compress)
//
// The payload is the codec encoding of a Document. Decoding selects the codec
// and the decompressor from the header, so blobs written with different
// settings can be read side by side.
//
// Attributes are stored with a type tag, so bool, string, integer and float
// attributes (NaN and infinities included) come back with their Go type.
// Other attribute values go through the codec as-is. Non-finite float
// elements are kept in per-field position lists.
package persistence
