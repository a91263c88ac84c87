// Package wire defines the byte-level record formats carried over a
// subconnector's intercommunicator: event records (double t, int32 id),
// message records (double t, size_t size, bytes[size]), and raw continuous
// blocks. All peers on a given port share the same record type.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EventRecordSize is the packed size of one event record: an 8-byte
// float64 timestamp followed by a 4-byte int32 id, no padding beyond the
// producing host's natural alignment.
const EventRecordSize = 8 + 4

// EncodeEvent packs (t, id) into dst, which must be at least
// EventRecordSize bytes.
func EncodeEvent(dst []byte, t float64, id int) {
	if len(dst) < EventRecordSize {
		panic(fmt.Sprintf("wire: event record needs %d bytes, got %d", EventRecordSize, len(dst)))
	}
	binary.LittleEndian.PutUint64(dst[0:8], math.Float64bits(t))
	binary.LittleEndian.PutUint32(dst[8:12], uint32(int32(id)))
}

// DecodeEvent unpacks an event record from src.
func DecodeEvent(src []byte) (t float64, id int) {
	if len(src) < EventRecordSize {
		panic(fmt.Sprintf("wire: event record needs %d bytes, got %d", EventRecordSize, len(src)))
	}
	t = math.Float64frombits(binary.LittleEndian.Uint64(src[0:8]))
	id = int(int32(binary.LittleEndian.Uint32(src[8:12])))
	return t, id
}

// MessageHeaderSize is the packed size of a message record's header: an
// 8-byte float64 timestamp followed by an 8-byte payload length.
const MessageHeaderSize = 8 + 8

// EncodeMessageHeader packs (t, size) into dst, which must be at least
// MessageHeaderSize bytes.
func EncodeMessageHeader(dst []byte, t float64, size int) {
	if len(dst) < MessageHeaderSize {
		panic(fmt.Sprintf("wire: message header needs %d bytes, got %d", MessageHeaderSize, len(dst)))
	}
	binary.LittleEndian.PutUint64(dst[0:8], math.Float64bits(t))
	binary.LittleEndian.PutUint64(dst[8:16], uint64(size))
}

// DecodeMessageHeader unpacks a message record's header from src.
func DecodeMessageHeader(src []byte) (t float64, size int) {
	if len(src) < MessageHeaderSize {
		panic(fmt.Sprintf("wire: message header needs %d bytes, got %d", MessageHeaderSize, len(src)))
	}
	t = math.Float64frombits(binary.LittleEndian.Uint64(src[0:8]))
	size = int(binary.LittleEndian.Uint64(src[8:16]))
	return t, size
}
