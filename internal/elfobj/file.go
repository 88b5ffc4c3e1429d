// Package elfobj decodes ELF object files into a navigable, validated
// in-memory model. The caller hands Parse an immutable byte buffer; the
// result is the model plus an ordered list of recoverable diagnostics.
// Only a buffer that cannot be identified as ELF at all fails outright.
package elfobj

import (
	"encoding/binary"
	"fmt"
)

// maxHeaderTableBytes caps the combined declared size of the program and
// section header tables. Adversarial counts are rejected before any
// allocation happens.
const maxHeaderTableBytes = 64 << 20

// File is the parsed model. It owns every sub-structure exclusively; all
// cross-references between tables are index-based and resolved on demand.
type File struct {
	Header         Header
	Segments       []ProgramHeader
	Sections       []SectionHeader
	Symtabs        []SymbolTable
	Relocs         []RelocationTable
	Dynamic        []DynamicEntry
	DynamicSection int
	Diags          []Diag

	r reader
}

// Parse decodes an ELF object from raw. Recoverable conditions accumulate
// on File.Diags; the returned error is one of the fatal sentinels. Parse is
// a pure function of the buffer and safe to run concurrently over shared
// read-only input.
func Parse(raw []byte) (*File, error) {
	h, r, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}
	declared := uint64(h.PhNum)*uint64(h.PhEntSize) + uint64(h.ShNum)*uint64(h.ShEntSize)
	if declared > maxHeaderTableBytes {
		return nil, fmt.Errorf("%w: %d header table bytes declared", ErrDeclaredSizeTooLarge, declared)
	}

	f := &File{Header: h, r: r, DynamicSection: -1}
	f.parseSegments(r)
	f.parseSections(r)
	f.resolveSectionNames()
	f.parseSymbolTables(r)
	f.parseRelocationTables(r)
	f.parseDynamic(r)
	return f, nil
}

func (f *File) diag(kind DiagKind, format string, args ...any) {
	f.Diags = append(f.Diags, Diag{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// ByteOrder returns the byte order every multi-byte field was read with.
func (f *File) ByteOrder() binary.ByteOrder { return f.r.order }

// Class returns the file class resolved from the identity bytes.
func (f *File) Class() Class { return f.Header.Class }

// Section returns the section header at index, when in range.
func (f *File) Section(index int) (*SectionHeader, bool) {
	if index < 0 || index >= len(f.Sections) {
		return nil, false
	}
	return &f.Sections[index], true
}

// SectionByName returns the first section with the given resolved name.
func (f *File) SectionByName(name string) (*SectionHeader, int, bool) {
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i], i, true
		}
	}
	return nil, 0, false
}

// SymbolTableFor returns the parsed symbol table backed by the section at
// index, when that section was a symbol table.
func (f *File) SymbolTableFor(index int) (*SymbolTable, bool) {
	for i := range f.Symtabs {
		if f.Symtabs[i].SectionIndex == index {
			return &f.Symtabs[i], true
		}
	}
	return nil, false
}

// LookupSymbol searches every parsed symbol table for an exact name match.
func (f *File) LookupSymbol(name string) (Symbol, bool) {
	for i := range f.Symtabs {
		for _, s := range f.Symtabs[i].Symbols {
			if s.Name == name {
				return s, true
			}
		}
	}
	return Symbol{}, false
}

// LoadSegments returns the PT_LOAD subset of the program headers, in load
// order.
func (f *File) LoadSegments() []ProgramHeader {
	var out []ProgramHeader
	for _, p := range f.Segments {
		if p.Type == SegmentTypeLoad {
			out = append(out, p)
		}
	}
	return out
}

// VAToFileOffset maps a virtual address to a file offset using the PT_LOAD
// segments.
func (f *File) VAToFileOffset(va uint64) (uint64, bool) {
	for _, p := range f.Segments {
		if p.Type != SegmentTypeLoad {
			continue
		}
		if va >= p.Vaddr && va < p.Vaddr+p.MemSz {
			off := va - p.Vaddr + p.Off
			if off >= uint64(len(f.r.raw)) {
				return 0, false
			}
			return off, true
		}
	}
	return 0, false
}

// StringTableStrings returns the strings of a SHT_STRTAB section at index.
func (f *File) StringTableStrings(index int) ([]string, error) {
	s, ok := f.Section(index)
	if !ok {
		return nil, fmt.Errorf("elfobj: invalid section index %d", index)
	}
	if s.Type != SectionTypeStrtab {
		return nil, fmt.Errorf("elfobj: section %d (%s) is not a string table", index, s.Name)
	}
	data, err := f.SectionContent(index)
	if err != nil {
		return nil, err
	}
	return stringTableStrings(data), nil
}
