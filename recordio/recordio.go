// Package recordio implements the record-oriented container format used for
// evaluation output files: each record is framed as
//
//	uint64  little-endian payload length
//	uint32  masked CRC-32C of the length bytes
//	bytes   payload
//	uint32  masked CRC-32C of the payload
//
// The framing is TFRecord-compatible, so files written here can be consumed
// by readers of that format. Payload bytes are opaque to this package.
package recordio

import (
	"encoding/binary"
	"hash/crc32"
)

// maskDelta offsets masked CRCs so that CRCs of CRC-bearing frames do not
// collide with CRCs of raw data.
const maskDelta = 0xa282ead8

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// maskedCRC returns the masked CRC-32C checksum of data.
func maskedCRC(data []byte) uint32 {
	crc := crc32.Checksum(data, castagnoli)
	return ((crc >> 15) | (crc << 17)) + maskDelta
}

// frameHeader encodes the length word and its checksum for a payload of n bytes.
func frameHeader(n int) [12]byte {
	var header [12]byte
	binary.LittleEndian.PutUint64(header[:8], uint64(n))
	binary.LittleEndian.PutUint32(header[8:], maskedCRC(header[:8]))
	return header
}
