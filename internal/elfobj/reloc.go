package elfobj

import "fmt"

// Relocation is one decoded REL or RELA entry. Addend is zero for the REL
// variant; RELA of the owning table says which was stored.
type Relocation struct {
	Off      uint64
	SymIndex uint32
	Type     uint32
	TypeName string // empty when the machine has no name table
	Addend   int64
}

func (r Relocation) String() string {
	name := r.TypeName
	if name == "" {
		name = fmt.Sprintf("type %d", r.Type)
	}
	return fmt.Sprintf("%s at 0x%x, symbol %d, addend %d", name, r.Off, r.SymIndex, r.Addend)
}

// RelocationTable holds the entries of one REL or RELA section together
// with its two linkages: the symbol table the entries index into (sh_link)
// and the section they patch (sh_info).
type RelocationTable struct {
	SectionIndex int
	Name         string
	RELA         bool
	Symtab       int // symbol-table section index, -1 when unusable
	Target       int // patched section index, -1 when out of range
	Entries      []Relocation
}

// relocSplit describes how r_info packs the symbol index and type code.
// The low typeBits carry the type; the rest is the symbol index.
type relocSplit struct{ typeBits uint }

// Per-machine split widths. Anything absent falls back to the class
// convention (8 type bits for 32-bit files, 32 for 64-bit).
var relocSplits = map[Machine]relocSplit{
	Machine386:     {typeBits: 8},
	MachineARM:     {typeBits: 8},
	MachineX86_64:  {typeBits: 32},
	MachineAArch64: {typeBits: 32},
	MachineRISCV:   {typeBits: 32},
}

func infoSplit(m Machine, c Class) relocSplit {
	if s, ok := relocSplits[m]; ok {
		return s
	}
	if c == Class32 {
		return relocSplit{typeBits: 8}
	}
	return relocSplit{typeBits: 32}
}

func (s relocSplit) split(info uint64) (sym uint32, typ uint32) {
	return uint32(info >> s.typeBits), uint32(info & (1<<s.typeBits - 1))
}

func relMinEntSize(c Class, rela bool) uint64 {
	n := uint64(8)
	if c == Class64 {
		n = 16
	}
	if rela {
		n += uint64(c.wordBytes())
	}
	return n
}

func (c Class) wordBytes() int {
	if c == Class32 {
		return 4
	}
	return 8
}

func isRelocationTable(t SectionType) bool {
	return t == SectionTypeRel || t == SectionTypeRela
}

func (f *File) parseRelocationTables(r reader) {
	for i := range f.Sections {
		if !isRelocationTable(f.Sections[i].Type) {
			continue
		}
		f.Relocs = append(f.Relocs, f.parseRelocationTable(r, i))
	}
}

func (f *File) parseRelocationTable(r reader, index int) RelocationTable {
	sec := &f.Sections[index]
	t := RelocationTable{
		SectionIndex: index,
		Name:         sec.Name,
		RELA:         sec.Type == SectionTypeRela,
		Symtab:       -1,
		Target:       -1,
	}

	symCount := -1
	link := int(sec.Link)
	for si := range f.Symtabs {
		if f.Symtabs[si].SectionIndex == link {
			t.Symtab = link
			symCount = len(f.Symtabs[si].Symbols)
			break
		}
	}
	if t.Symtab < 0 {
		f.diag(DiagDanglingSectionReference,
			"relocation table %q: link %d is not a symbol table", sec.Name, sec.Link)
	}
	if target := int(sec.Info); target > 0 && target < len(f.Sections) {
		t.Target = target
	}

	minSize := relMinEntSize(r.class, t.RELA)
	stride := sec.EntSize
	if stride < minSize {
		f.diag(DiagMalformedSectionTable,
			"relocation table %q: entry size %d below the required %d", sec.Name, sec.EntSize, minSize)
		return t
	}
	data, ok := f.sectionData(index)
	if !ok {
		return t
	}

	split := infoSplit(f.Header.Machine, r.class)
	ws := uint64(r.class.wordBytes())
	count := uint64(len(data)) / stride
	t.Entries = make([]Relocation, 0, count)
	for n := uint64(0); n < count; n++ {
		entry := data[n*stride:]
		var rel Relocation
		var info uint64
		if r.class == Class32 {
			rel.Off = uint64(r.order.Uint32(entry[0:]))
			info = uint64(r.order.Uint32(entry[4:]))
		} else {
			rel.Off = r.order.Uint64(entry[0:])
			info = r.order.Uint64(entry[8:])
		}
		rel.SymIndex, rel.Type = split.split(info)
		rel.TypeName = relocTypeName(f.Header.Machine, rel.Type)
		if t.RELA {
			// The addend is the one documented signed field.
			if r.class == Class32 {
				rel.Addend = int64(int32(r.order.Uint32(entry[2*ws:])))
			} else {
				rel.Addend = int64(r.order.Uint64(entry[2*ws:]))
			}
		}
		if symCount >= 0 && rel.SymIndex != 0 && int(rel.SymIndex) >= symCount {
			f.diag(DiagDanglingSectionReference,
				"relocation table %q: entry %d refers to symbol %d of %d",
				sec.Name, n, rel.SymIndex, symCount)
		}
		t.Entries = append(t.Entries, rel)
	}
	return t
}

// RelocationSymbol resolves a relocation's symbol index against the table's
// linked symbol table.
func (f *File) RelocationSymbol(t *RelocationTable, rel Relocation) (Symbol, bool) {
	if t == nil || t.Symtab < 0 {
		return Symbol{}, false
	}
	for i := range f.Symtabs {
		st := &f.Symtabs[i]
		if st.SectionIndex != t.Symtab {
			continue
		}
		if int(rel.SymIndex) >= len(st.Symbols) {
			return Symbol{}, false
		}
		return st.Symbols[rel.SymIndex], true
	}
	return Symbol{}, false
}
