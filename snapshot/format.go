package snapshot

import (
	"encoding/binary"
	"errors"
)

const (
	// Magic identifies a snapshot stream.
	Magic = "SVEC"
	// Version is the format version written by this package.
	Version = 1

	headerSize = 24
)

var (
	// ErrBadMagic is returned when the stream does not start with Magic.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrVersion is returned for unsupported format versions.
	ErrVersion = errors.New("snapshot: unsupported version")
	// ErrElementSize is returned when the element size differs from the target vector.
	ErrElementSize = errors.New("snapshot: element size mismatch")
	// ErrByteOrder is returned when the snapshot was taken with the other byte order.
	ErrByteOrder = errors.New("snapshot: byte order mismatch")
	// ErrChecksum is returned when the payload checksum does not match.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
	// ErrCorrupt is returned for truncated or inconsistent snapshots.
	ErrCorrupt = errors.New("snapshot: corrupt")
	// ErrNoSpace is returned when the snapshot holds more elements than the
	// target vector has room for. Nothing is appended in that case.
	ErrNoSpace = errors.New("snapshot: not enough space in vector")
)

// ByteOrder records the element byte order of a snapshot.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = 0
	BigEndian    ByteOrder = 1
)

// nativeOrder is the byte order of this machine.
var nativeOrder = func() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return LittleEndian
	}
	return BigEndian
}()

// Header is the fixed-size snapshot header.
type Header struct {
	Version     uint8
	Compression Compression
	ByteOrder   ByteOrder
	ElemSize    uint32
	Count       uint32
	PayloadLen  uint32
	Checksum    uint32
}

func (h *Header) encode() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], Magic)
	buf[4] = h.Version
	buf[5] = byte(h.Compression)
	buf[6] = byte(h.ByteOrder)
	binary.LittleEndian.PutUint32(buf[8:], h.ElemSize)
	binary.LittleEndian.PutUint32(buf[12:], h.Count)
	binary.LittleEndian.PutUint32(buf[16:], h.PayloadLen)
	binary.LittleEndian.PutUint32(buf[20:], h.Checksum)
	return buf
}

// decodeHeader parses and validates everything that does not depend on the
// target vector.
func decodeHeader(buf []byte) (Header, error) {
	if string(buf[0:4]) != Magic {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Version:     buf[4],
		Compression: Compression(buf[5]),
		ByteOrder:   ByteOrder(buf[6]),
		ElemSize:    binary.LittleEndian.Uint32(buf[8:]),
		Count:       binary.LittleEndian.Uint32(buf[12:]),
		PayloadLen:  binary.LittleEndian.Uint32(buf[16:]),
		Checksum:    binary.LittleEndian.Uint32(buf[20:]),
	}
	if h.Version != Version {
		return Header{}, ErrVersion
	}
	if !h.Compression.valid() {
		return Header{}, ErrCorrupt
	}
	if h.ByteOrder != LittleEndian && h.ByteOrder != BigEndian {
		return Header{}, ErrCorrupt
	}
	if h.ByteOrder != nativeOrder {
		return Header{}, ErrByteOrder
	}
	return h, nil
}
