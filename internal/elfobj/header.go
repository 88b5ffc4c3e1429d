package elfobj

import (
	"errors"
	"fmt"
)

var (
	ErrBadMagic             = errors.New("elfobj: bad ELF magic")
	ErrUnsupportedClass     = errors.New("elfobj: unsupported ELF class")
	ErrUnsupportedEncoding  = errors.New("elfobj: unsupported data encoding")
	ErrDeclaredSizeTooLarge = errors.New("elfobj: declared table size too large")
)

const identSize = 16

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// Ident holds the decoded identity bytes. Immutable once parsed.
type Ident struct {
	Class      Class
	Data       Encoding
	Version    uint8
	OSABI      OSABI
	ABIVersion uint8
}

// Header is the decoded ELF file header. All offsets and counts are carried
// as declared; consistency with the buffer is checked by the table parsers,
// not here, so truncated files can still be partially inspected.
type Header struct {
	Ident
	Type      FileType
	Machine   Machine
	Version   uint32
	Entry     uint64
	PhOff     uint64
	ShOff     uint64
	Flags     uint32
	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16
}

// parseHeader validates the identity bytes and decodes the file header.
// It is a pure function of the buffer: either a complete header and a
// configured reader come back, or a fatal error and nothing else.
func parseHeader(raw []byte) (Header, reader, error) {
	var h Header
	if len(raw) < identSize {
		return h, reader{}, fmt.Errorf("%w: file is only %d bytes", ErrBadMagic, len(raw))
	}
	if [4]byte(raw[:4]) != elfMagic {
		return h, reader{}, ErrBadMagic
	}

	h.Class = Class(raw[4])
	if h.Class != Class32 && h.Class != Class64 {
		return h, reader{}, fmt.Errorf("%w: %d", ErrUnsupportedClass, raw[4])
	}
	h.Data = Encoding(raw[5])
	if h.Data != LittleEndian && h.Data != BigEndian {
		return h, reader{}, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, raw[5])
	}
	h.Ident.Version = raw[6]
	h.OSABI = OSABI(raw[7])
	h.ABIVersion = raw[8]

	r := reader{raw: raw, order: h.Data.byteOrder(), class: h.Class}

	// Fixed fields after the identity. Widths follow the class resolved
	// above; a short buffer fails the whole header.
	var err error
	read16 := func(off uint64) uint16 {
		var v uint16
		if err == nil {
			v, err = r.u16(off)
		}
		return v
	}
	read32 := func(off uint64) uint32 {
		var v uint32
		if err == nil {
			v, err = r.u32(off)
		}
		return v
	}
	readWord := func(off uint64) uint64 {
		var v uint64
		if err == nil {
			v, err = r.word(off)
		}
		return v
	}

	h.Type = FileType(read16(16))
	h.Machine = Machine(read16(18))
	h.Version = read32(20)

	ws := r.wordSize()
	off := uint64(24)
	h.Entry = readWord(off)
	h.PhOff = readWord(off + ws)
	h.ShOff = readWord(off + 2*ws)
	off += 3 * ws
	h.Flags = read32(off)
	h.EhSize = read16(off + 4)
	h.PhEntSize = read16(off + 6)
	h.PhNum = read16(off + 8)
	h.ShEntSize = read16(off + 10)
	h.ShNum = read16(off + 12)
	h.ShStrNdx = read16(off + 14)
	if err != nil {
		return Header{}, reader{}, fmt.Errorf("elfobj: file header: %w", err)
	}
	return h, r, nil
}
