package snapshot

import (
	"fmt"
	"io"

	"github.com/hupe1980/staticvec"
	"github.com/hupe1980/staticvec/internal/conv"
	"github.com/hupe1980/staticvec/internal/hash"
)

type options struct {
	compression Compression
}

// Option configures Write.
type Option func(*options)

// WithCompression compresses the payload. Defaults to CompressionNone.
// Payloads that do not shrink are stored uncompressed.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Write writes the elements [0, Len) of v to w and returns the number of bytes written.
// v must be a live handle.
func Write[T any](w io.Writer, v *staticvec.Vec[T], opts ...Option) (int64, error) {
	o := options{compression: CompressionNone}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.compression.valid() {
		return 0, fmt.Errorf("snapshot: unknown compression %d", o.compression)
	}

	raw := v.Bytes()
	d := v.Descriptor()

	elemSize, err := conv.IntToUint32(int(d.ElemSize))
	if err != nil {
		return 0, fmt.Errorf("snapshot: element size: %w", err)
	}
	count, err := conv.IntToUint32(d.Len)
	if err != nil {
		return 0, fmt.Errorf("snapshot: count: %w", err)
	}

	payload, applied, err := compress(raw, o.compression)
	if err != nil {
		return 0, fmt.Errorf("snapshot: compress %s: %w", o.compression, err)
	}
	payloadLen, err := conv.IntToUint32(len(payload))
	if err != nil {
		return 0, fmt.Errorf("snapshot: payload: %w", err)
	}

	h := Header{
		Version:     Version,
		Compression: applied,
		ByteOrder:   nativeOrder,
		ElemSize:    elemSize,
		Count:       count,
		PayloadLen:  payloadLen,
		Checksum:    hash.CRC32C(raw),
	}

	n, err := w.Write(h.encode())
	written := int64(n)
	if err != nil {
		return written, err
	}
	n, err = w.Write(payload)
	written += int64(n)
	return written, err
}

// Read appends the elements of a snapshot to v and returns how many were appended.
//
// The snapshot is validated completely before anything is appended, so on
// error v is unchanged. A snapshot larger than the remaining capacity of v is
// reported as ErrNoSpace; unlike Vec.AppendBytes it does not panic, since the
// size comes from input.
func Read[T any](r io.Reader, v *staticvec.Vec[T]) (int, error) {
	d := v.Descriptor()

	h, err := ReadHeader(r)
	if err != nil {
		return 0, err
	}
	if uintptr(h.ElemSize) != d.ElemSize {
		return 0, fmt.Errorf("%w: snapshot has %d, vector has %d", ErrElementSize, h.ElemSize, d.ElemSize)
	}

	count, err := conv.Uint32ToInt(h.Count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if count > d.Cap-d.Len {
		return 0, fmt.Errorf("%w: %d elements, %d free", ErrNoSpace, count, d.Cap-d.Len)
	}
	// count fits in the vector, so this cannot overflow.
	rawSize := count * int(d.ElemSize)

	payloadLen, err := conv.Uint32ToInt(h.PayloadLen)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	switch {
	case h.Compression == CompressionNone && payloadLen != rawSize:
		return 0, fmt.Errorf("%w: payload is %d bytes, want %d", ErrCorrupt, payloadLen, rawSize)
	case h.Compression != CompressionNone && payloadLen >= rawSize:
		return 0, fmt.Errorf("%w: compressed payload of %d bytes for %d raw bytes", ErrCorrupt, payloadLen, rawSize)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, fmt.Errorf("%w: payload: %w", ErrCorrupt, err)
	}

	raw, err := decompress(payload, h.Compression, rawSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrCorrupt, h.Compression, err)
	}
	if hash.CRC32C(raw) != h.Checksum {
		return 0, ErrChecksum
	}

	v.AppendBytes(raw)
	return count, nil
}

// ReadHeader reads and validates a snapshot header without a target vector.
// The header's byte order must match this machine.
func ReadHeader(r io.Reader) (Header, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Header{}, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	return decodeHeader(hdr[:])
}
