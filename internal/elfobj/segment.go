package elfobj

import "fmt"

// ProgramHeader describes one segment. Entries keep their on-disk order,
// which is significant for load semantics.
type ProgramHeader struct {
	Type   SegmentType
	Flags  SegmentFlags
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	FileSz uint64
	MemSz  uint64
	Align  uint64
}

func (p ProgramHeader) String() string {
	return fmt.Sprintf("%s segment at 0x%x (offset 0x%x, %d bytes in file, %d in memory, align 0x%x) %s",
		p.Type, p.Vaddr, p.Off, p.FileSz, p.MemSz, p.Align, p.Flags)
}

// Structurally required entry sizes. Declared sizes may exceed these; the
// excess is stride padding and is never decoded.
func phMinEntSize(c Class) uint64 {
	if c == Class32 {
		return 32
	}
	return 56
}

func (f *File) parseSegments(r reader) {
	h := &f.Header
	if h.PhNum == 0 {
		return
	}
	minSize := phMinEntSize(r.class)
	stride := uint64(h.PhEntSize)
	if stride < minSize {
		f.diag(DiagMalformedSectionTable,
			"program header entry size %d below the required %d", h.PhEntSize, minSize)
		return
	}

	segs := make([]ProgramHeader, 0, h.PhNum)
	for i := uint64(0); i < uint64(h.PhNum); i++ {
		off := h.PhOff + i*stride
		p, err := decodeProgramHeader(r, off)
		if err != nil {
			f.diag(DiagTruncatedTable,
				"program header table: entry %d of %d extends past end of file", i, h.PhNum)
			break
		}
		segs = append(segs, p)
	}
	f.Segments = segs
}

func decodeProgramHeader(r reader, off uint64) (ProgramHeader, error) {
	var p ProgramHeader
	typ, err := r.u32(off)
	if err != nil {
		return p, err
	}
	p.Type = SegmentType(typ)

	// The flags field moved between the 32- and 64-bit layouts.
	if r.class == Class32 {
		fields, err := r.bytes(off+4, 28)
		if err != nil {
			return p, err
		}
		p.Off = uint64(r.order.Uint32(fields[0:]))
		p.Vaddr = uint64(r.order.Uint32(fields[4:]))
		p.Paddr = uint64(r.order.Uint32(fields[8:]))
		p.FileSz = uint64(r.order.Uint32(fields[12:]))
		p.MemSz = uint64(r.order.Uint32(fields[16:]))
		p.Flags = SegmentFlags(r.order.Uint32(fields[20:]))
		p.Align = uint64(r.order.Uint32(fields[24:]))
		return p, nil
	}
	fields, err := r.bytes(off+4, 52)
	if err != nil {
		return p, err
	}
	p.Flags = SegmentFlags(r.order.Uint32(fields[0:]))
	p.Off = r.order.Uint64(fields[4:])
	p.Vaddr = r.order.Uint64(fields[12:])
	p.Paddr = r.order.Uint64(fields[20:])
	p.FileSz = r.order.Uint64(fields[28:])
	p.MemSz = r.order.Uint64(fields[36:])
	p.Align = r.order.Uint64(fields[44:])
	return p, nil
}
