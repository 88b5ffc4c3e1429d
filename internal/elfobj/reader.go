package elfobj

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a fixed-width read would run past the end
// of the buffer. Nothing is ever read partially.
var ErrOutOfBounds = errors.New("elfobj: read out of bounds")

// reader is the primitive field reader: bounds-checked, fixed-width reads
// against an immutable buffer. The byte order and class are decided once,
// from the identity bytes, and threaded through every later read.
type reader struct {
	raw   []byte
	order binary.ByteOrder
	class Class
}

func (r reader) bytes(off, n uint64) ([]byte, error) {
	end := off + n
	if end < off || end > uint64(len(r.raw)) {
		return nil, fmt.Errorf("%w: %d bytes at offset 0x%x in a %d-byte file",
			ErrOutOfBounds, n, off, len(r.raw))
	}
	return r.raw[off:end], nil
}

func (r reader) u8(off uint64) (uint8, error) {
	b, err := r.bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r reader) u16(off uint64) (uint16, error) {
	b, err := r.bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r reader) u32(off uint64) (uint32, error) {
	b, err := r.bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

func (r reader) u64(off uint64) (uint64, error) {
	b, err := r.bytes(off, 8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

// word reads a class-sized address or offset field: 4 bytes for ELFCLASS32
// (zero-extended), 8 bytes for ELFCLASS64.
func (r reader) word(off uint64) (uint64, error) {
	if r.class == Class32 {
		v, err := r.u32(off)
		return uint64(v), err
	}
	return r.u64(off)
}

// sword reads a class-sized signed field with explicit sign extension.
// Used only for documented signed fields (the RELA addend).
func (r reader) sword(off uint64) (int64, error) {
	if r.class == Class32 {
		v, err := r.u32(off)
		return int64(int32(v)), err
	}
	v, err := r.u64(off)
	return int64(v), err
}

func (r reader) wordSize() uint64 {
	if r.class == Class32 {
		return 4
	}
	return 8
}
