package elfobj

import (
	"fmt"
	"strconv"
)

// SectionRef is a symbol's section index field. Values in the reserved
// range are markers, not table positions.
type SectionRef uint16

const (
	SectionRefUndef     SectionRef = 0
	sectionRefLoReserve SectionRef = 0xff00
	SectionRefAbs       SectionRef = 0xfff1
	SectionRefCommon    SectionRef = 0xfff2
)

// Special reports whether the reference is a marker rather than an
// ordinary section index.
func (s SectionRef) Special() bool {
	return s == SectionRefUndef || s >= sectionRefLoReserve
}

func (s SectionRef) String() string {
	switch {
	case s == SectionRefUndef:
		return "UND"
	case s == SectionRefAbs:
		return "ABS"
	case s == SectionRefCommon:
		return "COM"
	case s >= sectionRefLoReserve:
		return fmt.Sprintf("RSV[0x%x]", uint16(s))
	}
	return strconv.Itoa(int(s))
}

// Symbol is one decoded symbol table entry.
type Symbol struct {
	Name       string
	NameOffset uint32
	Value      uint64
	Size       uint64
	Binding    SymBinding
	Type       SymType
	Visibility SymVisibility
	Section    SectionRef
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s %s %s symbol %q: value 0x%x, size %d, section %s",
		s.Binding, s.Type, s.Visibility, s.Name, s.Value, s.Size, s.Section)
}

// SymbolTable holds the symbols of one SYMTAB or DYNSYM section. Relocation
// entries refer to symbols by position in Symbols.
type SymbolTable struct {
	SectionIndex int
	Name         string
	Strtab       int // linked string table section index, -1 when unusable
	Symbols      []Symbol
}

func symMinEntSize(c Class) uint64 {
	if c == Class32 {
		return 16
	}
	return 24
}

func isSymbolTable(t SectionType) bool {
	return t == SectionTypeSymtab || t == SectionTypeDynsym
}

func (f *File) parseSymbolTables(r reader) {
	for i := range f.Sections {
		if !isSymbolTable(f.Sections[i].Type) {
			continue
		}
		f.Symtabs = append(f.Symtabs, f.parseSymbolTable(r, i))
	}
}

func (f *File) parseSymbolTable(r reader, index int) SymbolTable {
	sec := &f.Sections[index]
	t := SymbolTable{SectionIndex: index, Name: sec.Name, Strtab: -1}

	minSize := symMinEntSize(r.class)
	stride := sec.EntSize
	if stride < minSize {
		f.diag(DiagMalformedSectionTable,
			"symbol table %q: entry size %d below the required %d", sec.Name, sec.EntSize, minSize)
		return t
	}

	// The link field must name the paired string table. When it doesn't,
	// names degrade to placeholders but the symbol records stay useful.
	var strs []byte
	link := int(sec.Link)
	if link > 0 && link < len(f.Sections) && f.Sections[link].Type == SectionTypeStrtab {
		if data, ok := f.sectionData(link); ok {
			strs = data
			t.Strtab = link
		}
	}
	if t.Strtab < 0 {
		f.diag(DiagMissingStringTable,
			"symbol table %q: link %d is not a usable string table", sec.Name, sec.Link)
	}

	data, ok := f.sectionData(index)
	if !ok {
		return t
	}
	count := uint64(len(data)) / stride
	t.Symbols = make([]Symbol, 0, count)
	for n := uint64(0); n < count; n++ {
		entry := data[n*stride : n*stride+minSize]
		var s Symbol
		var info, other uint8
		var shndx uint16
		s.NameOffset = r.order.Uint32(entry[0:])
		if r.class == Class32 {
			s.Value = uint64(r.order.Uint32(entry[4:]))
			s.Size = uint64(r.order.Uint32(entry[8:]))
			info = entry[12]
			other = entry[13]
			shndx = r.order.Uint16(entry[14:])
		} else {
			info = entry[4]
			other = entry[5]
			shndx = r.order.Uint16(entry[6:])
			s.Value = r.order.Uint64(entry[8:])
			s.Size = r.order.Uint64(entry[16:])
		}
		// Standard packing: binding in the high nibble, type in the low.
		s.Binding = SymBinding(info >> 4)
		s.Type = SymType(info & 0xf)
		s.Visibility = SymVisibility(other & 0x3)
		s.Section = SectionRef(shndx)

		if !s.Section.Special() && int(shndx) >= len(f.Sections) {
			f.diag(DiagDanglingSectionReference,
				"symbol table %q: symbol %d refers to section %d of %d",
				sec.Name, n, shndx, len(f.Sections))
		}

		switch {
		case s.NameOffset == 0:
			s.Name = ""
		case strs == nil:
			s.Name = placeholderName(s.NameOffset)
		default:
			s.Name = f.resolveString(strs, uint64(s.NameOffset),
				fmt.Sprintf("symbol table %q entry %d", sec.Name, n))
		}
		t.Symbols = append(t.Symbols, s)
	}
	return t
}
