package elfobj

import "fmt"

// SectionHeader describes one section. Index in File.Sections equals the
// on-disk table position; index 0 is the reserved null entry.
type SectionHeader struct {
	Name       string
	NameOffset uint32
	Type       SectionType
	Flags      SectionFlags
	Addr       uint64
	Off        uint64
	Size       uint64
	Link       uint32
	Info       uint32
	Align      uint64
	EntSize    uint64
}

func (s SectionHeader) String() string {
	return fmt.Sprintf("%s %s: %d bytes at 0x%x (offset 0x%x), link %d, flags %s",
		s.Name, s.Type, s.Size, s.Addr, s.Off, s.Link, s.Flags)
}

func shMinEntSize(c Class) uint64 {
	if c == Class32 {
		return 40
	}
	return 64
}

func (f *File) parseSections(r reader) {
	h := &f.Header
	if h.ShNum == 0 {
		return
	}
	minSize := shMinEntSize(r.class)
	stride := uint64(h.ShEntSize)
	if stride < minSize {
		f.diag(DiagMalformedSectionTable,
			"section header entry size %d below the required %d", h.ShEntSize, minSize)
		return
	}

	sections := make([]SectionHeader, 0, h.ShNum)
	for i := uint64(0); i < uint64(h.ShNum); i++ {
		off := h.ShOff + i*stride
		s, err := decodeSectionHeader(r, off)
		if err != nil {
			f.diag(DiagTruncatedTable,
				"section header table: entry %d of %d extends past end of file", i, h.ShNum)
			break
		}
		sections = append(sections, s)
	}
	f.Sections = sections

	// The reserved index 0 entry must decode to all zeros. Readers tolerate
	// a violation, so report and continue.
	if len(f.Sections) > 0 && f.Sections[0] != (SectionHeader{}) {
		f.diag(DiagMalformedSectionTable, "section 0 is not the reserved null entry")
	}
}

func decodeSectionHeader(r reader, off uint64) (SectionHeader, error) {
	var s SectionHeader
	fields, err := r.bytes(off, shMinEntSize(r.class))
	if err != nil {
		return s, err
	}
	s.NameOffset = r.order.Uint32(fields[0:])
	s.Type = SectionType(r.order.Uint32(fields[4:]))
	if r.class == Class32 {
		s.Flags = SectionFlags(r.order.Uint32(fields[8:]))
		s.Addr = uint64(r.order.Uint32(fields[12:]))
		s.Off = uint64(r.order.Uint32(fields[16:]))
		s.Size = uint64(r.order.Uint32(fields[20:]))
		s.Link = r.order.Uint32(fields[24:])
		s.Info = r.order.Uint32(fields[28:])
		s.Align = uint64(r.order.Uint32(fields[32:]))
		s.EntSize = uint64(r.order.Uint32(fields[36:]))
		return s, nil
	}
	s.Flags = SectionFlags(r.order.Uint64(fields[8:]))
	s.Addr = r.order.Uint64(fields[16:])
	s.Off = r.order.Uint64(fields[24:])
	s.Size = r.order.Uint64(fields[32:])
	s.Link = r.order.Uint32(fields[40:])
	s.Info = r.order.Uint32(fields[44:])
	s.Align = r.order.Uint64(fields[48:])
	s.EntSize = r.order.Uint64(fields[56:])
	return s, nil
}

// resolveSectionNames fills in Name for every parsed section from the
// section-header string table. Deferred until the whole table is decoded so
// a missing or malformed string table degrades to placeholders instead of
// blocking the parse.
func (f *File) resolveSectionNames() {
	if len(f.Sections) == 0 {
		return
	}
	strs, ok := f.sectionData(int(f.Header.ShStrNdx))
	if !ok || f.Sections[f.Header.ShStrNdx].Type != SectionTypeStrtab {
		f.diag(DiagMissingStringTable,
			"section name string table (section %d) is absent or unusable", f.Header.ShStrNdx)
		for i := range f.Sections {
			f.Sections[i].Name = placeholderName(f.Sections[i].NameOffset)
		}
		f.Sections[0].Name = ""
		return
	}
	for i := range f.Sections {
		s := &f.Sections[i]
		if i == 0 && s.NameOffset == 0 {
			continue
		}
		s.Name = f.resolveString(strs, uint64(s.NameOffset), fmt.Sprintf("section %d name", i))
	}
}

// sectionData returns the in-bounds bytes of a section. ok is false when
// the index is invalid or the section has no usable data; a section whose
// declared extent runs past the buffer yields the in-bounds prefix along
// with a diagnostic.
func (f *File) sectionData(index int) ([]byte, bool) {
	if index <= 0 || index >= len(f.Sections) {
		return nil, false
	}
	s := &f.Sections[index]
	if s.Type == SectionTypeNoBits {
		return nil, false
	}
	n := uint64(len(f.r.raw))
	if s.Off > n {
		f.diag(DiagTruncatedTable, "section %d: offset 0x%x past end of file", index, s.Off)
		return nil, false
	}
	end := s.Off + s.Size
	if end < s.Off || end > n {
		f.diag(DiagTruncatedTable,
			"section %d: declared size 0x%x exceeds the file, using the in-bounds prefix", index, s.Size)
		end = n
	}
	return f.r.raw[s.Off:end], true
}

// SectionContent returns the raw bytes of the section at index, checked
// against the buffer bounds.
func (f *File) SectionContent(index int) ([]byte, error) {
	if index < 0 || index >= len(f.Sections) {
		return nil, fmt.Errorf("elfobj: invalid section index %d", index)
	}
	s := &f.Sections[index]
	if s.Type == SectionTypeNoBits {
		return nil, nil
	}
	return f.r.bytes(s.Off, s.Size)
}
