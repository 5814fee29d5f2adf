// Package hash provides the CRC32-Castagnoli checksum used for blob integrity.
//
// Record envelopes store a CRC32C of their payload, and the S3 backend sends
// the same checksum with uploads so the service can verify them. Go's crc32
// package uses SSE4.2 or the ARM CRC extension when available.
//
//	checksum := hash.CRC32C(data)
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
