package elfobj

import (
	"encoding/binary"
	"testing"
)

// Hand-assembled ELF images for the parser tests. Everything is built from
// explicit field values so parsed results can be compared exactly.

func appendVals(t *testing.T, buf []byte, order binary.ByteOrder, vals ...any) []byte {
	t.Helper()
	for _, v := range vals {
		var err error
		buf, err = binary.Append(buf, order, v)
		if err != nil {
			t.Fatalf("append %T: %v", v, err)
		}
	}
	return buf
}

type testHeader struct {
	class     Class
	order     binary.ByteOrder
	data      byte
	typ       FileType
	machine   Machine
	entry     uint64
	phoff     uint64
	shoff     uint64
	phentsize uint16
	phnum     uint16
	shentsize uint16
	shnum     uint16
	shstrndx  uint16
}

func (h testHeader) bytes(t *testing.T) []byte {
	t.Helper()
	ident := make([]byte, identSize)
	copy(ident, elfMagic[:])
	ident[4] = byte(h.class)
	ident[5] = h.data
	ident[6] = 1
	buf := append([]byte(nil), ident...)
	buf = appendVals(t, buf, h.order, uint16(h.typ), uint16(h.machine), uint32(1))
	if h.class == Class32 {
		buf = appendVals(t, buf, h.order, uint32(h.entry), uint32(h.phoff), uint32(h.shoff))
	} else {
		buf = appendVals(t, buf, h.order, h.entry, h.phoff, h.shoff)
	}
	ehsize := uint16(64)
	if h.class == Class32 {
		ehsize = 52
	}
	return appendVals(t, buf, h.order, uint32(0), ehsize,
		h.phentsize, h.phnum, h.shentsize, h.shnum, h.shstrndx)
}

func shdr64(t *testing.T, order binary.ByteOrder, name uint32, typ SectionType,
	flags, addr, off, size uint64, link, info uint32, align, entsize uint64) []byte {
	t.Helper()
	return appendVals(t, nil, order, name, uint32(typ), flags, addr, off, size,
		link, info, align, entsize)
}

func sym64(t *testing.T, name uint32, info, other byte, shndx uint16, value, size uint64) []byte {
	t.Helper()
	buf := appendVals(t, nil, binary.LittleEndian, name)
	buf = append(buf, info, other)
	return appendVals(t, buf, binary.LittleEndian, shndx, value, size)
}

func rela64(t *testing.T, off, info uint64, addend int64) []byte {
	t.Helper()
	return appendVals(t, nil, binary.LittleEndian, off, info, addend)
}

func dyn64(t *testing.T, tag DynTag, value uint64) []byte {
	t.Helper()
	return appendVals(t, nil, binary.LittleEndian, uint64(tag), value)
}

type fixtureSection struct {
	name    string
	typ     SectionType
	flags   uint64
	addr    uint64
	link    uint32
	info    uint32
	entsize uint64
	data    []byte
}

// buildELF64 assembles a little-endian ELF64 image: file header, section
// payloads in order, .shstrtab, then the section header table. Section
// indices are 1-based in the order given (index 0 is the null entry, the
// last index is .shstrtab).
func buildELF64(t *testing.T, machine Machine, secs []fixtureSection) []byte {
	t.Helper()
	le := binary.LittleEndian

	shstr := []byte{0}
	nameOffs := make([]uint32, len(secs))
	for i, s := range secs {
		nameOffs[i] = uint32(len(shstr))
		shstr = append(shstr, s.name...)
		shstr = append(shstr, 0)
	}
	shstrName := uint32(len(shstr))
	shstr = append(shstr, ".shstrtab"...)
	shstr = append(shstr, 0)

	var payload []byte
	offs := make([]uint64, len(secs))
	for i, s := range secs {
		offs[i] = 64 + uint64(len(payload))
		payload = append(payload, s.data...)
	}
	shstrOff := 64 + uint64(len(payload))
	payload = append(payload, shstr...)
	shoff := 64 + uint64(len(payload))

	nsec := len(secs) + 2
	buf := testHeader{
		class: Class64, order: le, data: byte(LittleEndian),
		typ: FileTypeRelocatable, machine: machine,
		shoff: shoff, shentsize: 64, shnum: uint16(nsec), shstrndx: uint16(nsec - 1),
	}.bytes(t)
	buf = append(buf, payload...)

	buf = append(buf, make([]byte, 64)...) // null entry
	for i, s := range secs {
		buf = append(buf, shdr64(t, le, nameOffs[i], s.typ, s.flags, s.addr,
			offs[i], uint64(len(s.data)), s.link, s.info, 1, s.entsize)...)
	}
	buf = append(buf, shdr64(t, le, shstrName, SectionTypeStrtab, 0, 0,
		shstrOff, uint64(len(shstr)), 0, 0, 1, 0)...)
	return buf
}

// strtab builds a string table from names and returns it along with the
// offset of each name.
func strtab(names ...string) ([]byte, []uint32) {
	table := []byte{0}
	offs := make([]uint32, len(names))
	for i, n := range names {
		offs[i] = uint32(len(table))
		table = append(table, n...)
		table = append(table, 0)
	}
	return table, offs
}

// fullFixture is a complete object with symbols, relocations and a dynamic
// section, used by the cross-reference and idempotence tests.
//
// Section indices: 1 .text, 2 .strtab, 3 .symtab, 4 .rela.text, 5 .dynstr,
// 6 .dynamic, 7 .shstrtab.
func fullFixture(t *testing.T) []byte {
	t.Helper()
	names, nameOffs := strtab("main", "external")
	syms := sym64(t, 0, 0, 0, 0, 0, 0)
	syms = append(syms, sym64(t, nameOffs[0], byte(SymBindGlobal)<<4|byte(SymTypeFunc), 0, 1, 0x1000, 32)...)
	syms = append(syms, sym64(t, nameOffs[1], byte(SymBindGlobal)<<4|byte(SymTypeNoType), 0, uint16(SectionRefUndef), 0, 0)...)

	relas := rela64(t, 0x1004, 2<<32|2, -4) // external, R_X86_64_PC32
	relas = append(relas, rela64(t, 0x1010, 1<<32|1, 8)...)

	dynstr := []byte("\x00libc.so.6\x00")
	dyn := dyn64(t, DynTagNeeded, 1)
	dyn = append(dyn, dyn64(t, DynTagSOName, 1)...)
	dyn = append(dyn, dyn64(t, DynTagNull, 0)...)

	return buildELF64(t, MachineX86_64, []fixtureSection{
		{name: ".text", typ: SectionTypeProgBits, flags: 0x6, addr: 0x1000,
			data: make([]byte, 64)},
		{name: ".strtab", typ: SectionTypeStrtab, data: names},
		{name: ".symtab", typ: SectionTypeSymtab, link: 2, info: 1, entsize: 24, data: syms},
		{name: ".rela.text", typ: SectionTypeRela, link: 3, info: 1, entsize: 24, data: relas},
		{name: ".dynstr", typ: SectionTypeStrtab, data: dynstr},
		{name: ".dynamic", typ: SectionTypeDynamic, link: 5, entsize: 16, data: dyn},
	})
}
