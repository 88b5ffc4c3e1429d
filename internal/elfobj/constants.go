package elfobj

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Class is the ELF file class from the identity bytes: 32- or 64-bit.
type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Encoding is the data encoding (byte order) from the identity bytes.
type Encoding uint8

const (
	LittleEndian Encoding = 1
	BigEndian    Encoding = 2
)

func (e Encoding) String() string {
	switch e {
	case LittleEndian:
		return "2's complement, little endian"
	case BigEndian:
		return "2's complement, big endian"
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

func (e Encoding) byteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// OSABI identifies the operating system ABI from the identity bytes.
type OSABI uint8

var osABINames = map[OSABI]string{
	0:   "UNIX - System V",
	1:   "HP-UX",
	2:   "NetBSD",
	3:   "Linux",
	6:   "Solaris",
	7:   "AIX",
	8:   "IRIX",
	9:   "FreeBSD",
	10:  "Tru64",
	12:  "OpenBSD",
	64:  "ARM EABI",
	97:  "ARM",
	255: "Standalone",
}

func (o OSABI) String() string {
	if s, ok := osABINames[o]; ok {
		return s
	}
	return fmt.Sprintf("os/abi(%d)", uint8(o))
}

// FileType is the object file type from the file header.
type FileType uint16

const (
	FileTypeNone        FileType = 0
	FileTypeRelocatable FileType = 1
	FileTypeExecutable  FileType = 2
	FileTypeShared      FileType = 3
	FileTypeCore        FileType = 4
)

func (t FileType) String() string {
	switch t {
	case FileTypeNone:
		return "NONE (No file type)"
	case FileTypeRelocatable:
		return "REL (Relocatable file)"
	case FileTypeExecutable:
		return "EXEC (Executable file)"
	case FileTypeShared:
		return "DYN (Shared object file)"
	case FileTypeCore:
		return "CORE (Core file)"
	}
	if t >= 0xfe00 && t <= 0xfeff {
		return fmt.Sprintf("OS-specific (0x%x)", uint16(t))
	}
	if t >= 0xff00 {
		return fmt.Sprintf("Processor-specific (0x%x)", uint16(t))
	}
	return fmt.Sprintf("type(0x%x)", uint16(t))
}

// Machine is the target architecture from the file header.
type Machine uint16

const (
	MachineNone    Machine = 0
	MachineSPARC   Machine = 2
	Machine386     Machine = 3
	MachineMIPS    Machine = 8
	MachinePPC     Machine = 20
	MachinePPC64   Machine = 21
	MachineS390    Machine = 22
	MachineARM     Machine = 40
	MachineSPARCV9 Machine = 43
	MachineIA64    Machine = 50
	MachineX86_64  Machine = 62
	MachineAArch64 Machine = 183
	MachineRISCV   Machine = 243
	MachineBPF     Machine = 247
	MachineLoong   Machine = 258
)

var machineNames = map[Machine]string{
	MachineNone:    "None",
	MachineSPARC:   "SPARC",
	Machine386:     "Intel 80386",
	MachineMIPS:    "MIPS R3000",
	MachinePPC:     "PowerPC",
	MachinePPC64:   "PowerPC64",
	MachineS390:    "IBM S/390",
	MachineARM:     "ARM",
	MachineSPARCV9: "SPARC v9",
	MachineIA64:    "Intel IA-64",
	MachineX86_64:  "Advanced Micro Devices X86-64",
	MachineAArch64: "AArch64",
	MachineRISCV:   "RISC-V",
	MachineBPF:     "Linux BPF",
	MachineLoong:   "LoongArch",
}

func (m Machine) String() string {
	if s, ok := machineNames[m]; ok {
		return s
	}
	return fmt.Sprintf("machine(%d)", uint16(m))
}

// SectionType is the sh_type field of a section header.
type SectionType uint32

const (
	SectionTypeNull        SectionType = 0
	SectionTypeProgBits    SectionType = 1
	SectionTypeSymtab      SectionType = 2
	SectionTypeStrtab      SectionType = 3
	SectionTypeRela        SectionType = 4
	SectionTypeHash        SectionType = 5
	SectionTypeDynamic     SectionType = 6
	SectionTypeNote        SectionType = 7
	SectionTypeNoBits      SectionType = 8
	SectionTypeRel         SectionType = 9
	SectionTypeShLib       SectionType = 10
	SectionTypeDynsym      SectionType = 11
	SectionTypeInitArray   SectionType = 14
	SectionTypeFiniArray   SectionType = 15
	SectionTypePreinitArr  SectionType = 16
	SectionTypeGroup       SectionType = 17
	SectionTypeSymtabShndx SectionType = 18
	SectionTypeGNUHash     SectionType = 0x6ffffff6
	SectionTypeGNUVerdef   SectionType = 0x6ffffffd
	SectionTypeGNUVerneed  SectionType = 0x6ffffffe
	SectionTypeGNUVersym   SectionType = 0x6fffffff
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeNull:        "NULL",
	SectionTypeProgBits:    "PROGBITS",
	SectionTypeSymtab:      "SYMTAB",
	SectionTypeStrtab:      "STRTAB",
	SectionTypeRela:        "RELA",
	SectionTypeHash:        "HASH",
	SectionTypeDynamic:     "DYNAMIC",
	SectionTypeNote:        "NOTE",
	SectionTypeNoBits:      "NOBITS",
	SectionTypeRel:         "REL",
	SectionTypeShLib:       "SHLIB",
	SectionTypeDynsym:      "DYNSYM",
	SectionTypeInitArray:   "INIT_ARRAY",
	SectionTypeFiniArray:   "FINI_ARRAY",
	SectionTypePreinitArr:  "PREINIT_ARRAY",
	SectionTypeGroup:       "GROUP",
	SectionTypeSymtabShndx: "SYMTAB_SHNDX",
	SectionTypeGNUHash:     "GNU_HASH",
	SectionTypeGNUVerdef:   "VERDEF",
	SectionTypeGNUVerneed:  "VERNEED",
	SectionTypeGNUVersym:   "VERSYM",
}

func (t SectionType) String() string {
	if s, ok := sectionTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("0x%x", uint32(t))
}

// SectionFlags is the sh_flags field of a section header.
type SectionFlags uint64

const (
	SectionFlagWrite     SectionFlags = 0x1
	SectionFlagAlloc     SectionFlags = 0x2
	SectionFlagExecInstr SectionFlags = 0x4
	SectionFlagMerge     SectionFlags = 0x10
	SectionFlagStrings   SectionFlags = 0x20
	SectionFlagInfoLink  SectionFlags = 0x40
	SectionFlagLinkOrder SectionFlags = 0x80
	SectionFlagGroup     SectionFlags = 0x200
	SectionFlagTLS       SectionFlags = 0x400
	SectionFlagCompress  SectionFlags = 0x800
)

// String renders the readelf-style flag letters (W A X M S I L G T C).
func (f SectionFlags) String() string {
	var b strings.Builder
	for _, fl := range []struct {
		bit SectionFlags
		ch  byte
	}{
		{SectionFlagWrite, 'W'},
		{SectionFlagAlloc, 'A'},
		{SectionFlagExecInstr, 'X'},
		{SectionFlagMerge, 'M'},
		{SectionFlagStrings, 'S'},
		{SectionFlagInfoLink, 'I'},
		{SectionFlagLinkOrder, 'L'},
		{SectionFlagGroup, 'G'},
		{SectionFlagTLS, 'T'},
		{SectionFlagCompress, 'C'},
	} {
		if f&fl.bit != 0 {
			b.WriteByte(fl.ch)
		}
	}
	return b.String()
}

// SegmentType is the p_type field of a program header.
type SegmentType uint32

const (
	SegmentTypeNull        SegmentType = 0
	SegmentTypeLoad        SegmentType = 1
	SegmentTypeDynamic     SegmentType = 2
	SegmentTypeInterp      SegmentType = 3
	SegmentTypeNote        SegmentType = 4
	SegmentTypeShLib       SegmentType = 5
	SegmentTypePhdr        SegmentType = 6
	SegmentTypeTLS         SegmentType = 7
	SegmentTypeGNUEHFrame  SegmentType = 0x6474e550
	SegmentTypeGNUStack    SegmentType = 0x6474e551
	SegmentTypeGNURelRO    SegmentType = 0x6474e552
	SegmentTypeGNUProperty SegmentType = 0x6474e553
)

var segmentTypeNames = map[SegmentType]string{
	SegmentTypeNull:        "NULL",
	SegmentTypeLoad:        "LOAD",
	SegmentTypeDynamic:     "DYNAMIC",
	SegmentTypeInterp:      "INTERP",
	SegmentTypeNote:        "NOTE",
	SegmentTypeShLib:       "SHLIB",
	SegmentTypePhdr:        "PHDR",
	SegmentTypeTLS:         "TLS",
	SegmentTypeGNUEHFrame:  "GNU_EH_FRAME",
	SegmentTypeGNUStack:    "GNU_STACK",
	SegmentTypeGNURelRO:    "GNU_RELRO",
	SegmentTypeGNUProperty: "GNU_PROPERTY",
}

func (t SegmentType) String() string {
	if s, ok := segmentTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("0x%x", uint32(t))
}

// SegmentFlags is the p_flags field of a program header.
type SegmentFlags uint32

const (
	SegmentFlagX SegmentFlags = 0x1
	SegmentFlagW SegmentFlags = 0x2
	SegmentFlagR SegmentFlags = 0x4
)

func (f SegmentFlags) String() string {
	b := []byte{' ', ' ', ' '}
	if f&SegmentFlagR != 0 {
		b[0] = 'R'
	}
	if f&SegmentFlagW != 0 {
		b[1] = 'W'
	}
	if f&SegmentFlagX != 0 {
		b[2] = 'E'
	}
	return string(b)
}

// SymBinding is the high nibble of a symbol's info byte.
type SymBinding uint8

const (
	SymBindLocal     SymBinding = 0
	SymBindGlobal    SymBinding = 1
	SymBindWeak      SymBinding = 2
	SymBindGNUUnique SymBinding = 10
)

func (b SymBinding) String() string {
	switch b {
	case SymBindLocal:
		return "LOCAL"
	case SymBindGlobal:
		return "GLOBAL"
	case SymBindWeak:
		return "WEAK"
	case SymBindGNUUnique:
		return "UNIQUE"
	}
	return fmt.Sprintf("binding(%d)", uint8(b))
}

// SymType is the low nibble of a symbol's info byte.
type SymType uint8

const (
	SymTypeNoType   SymType = 0
	SymTypeObject   SymType = 1
	SymTypeFunc     SymType = 2
	SymTypeSection  SymType = 3
	SymTypeFile     SymType = 4
	SymTypeCommon   SymType = 5
	SymTypeTLS      SymType = 6
	SymTypeGNUIFunc SymType = 10
)

func (t SymType) String() string {
	switch t {
	case SymTypeNoType:
		return "NOTYPE"
	case SymTypeObject:
		return "OBJECT"
	case SymTypeFunc:
		return "FUNC"
	case SymTypeSection:
		return "SECTION"
	case SymTypeFile:
		return "FILE"
	case SymTypeCommon:
		return "COMMON"
	case SymTypeTLS:
		return "TLS"
	case SymTypeGNUIFunc:
		return "IFUNC"
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// SymVisibility is the low two bits of a symbol's other byte.
type SymVisibility uint8

const (
	SymVisDefault   SymVisibility = 0
	SymVisInternal  SymVisibility = 1
	SymVisHidden    SymVisibility = 2
	SymVisProtected SymVisibility = 3
)

func (v SymVisibility) String() string {
	switch v {
	case SymVisDefault:
		return "DEFAULT"
	case SymVisInternal:
		return "INTERNAL"
	case SymVisHidden:
		return "HIDDEN"
	case SymVisProtected:
		return "PROTECTED"
	}
	return fmt.Sprintf("visibility(%d)", uint8(v))
}

// DynTag is the d_tag field of a dynamic entry.
type DynTag int64

const (
	DynTagNull         DynTag = 0
	DynTagNeeded       DynTag = 1
	DynTagPLTRelSz     DynTag = 2
	DynTagPLTGOT       DynTag = 3
	DynTagHash         DynTag = 4
	DynTagStrtab       DynTag = 5
	DynTagSymtab       DynTag = 6
	DynTagRela         DynTag = 7
	DynTagRelaSz       DynTag = 8
	DynTagRelaEnt      DynTag = 9
	DynTagStrSz        DynTag = 10
	DynTagSymEnt       DynTag = 11
	DynTagInit         DynTag = 12
	DynTagFini         DynTag = 13
	DynTagSOName       DynTag = 14
	DynTagRPath        DynTag = 15
	DynTagSymbolic     DynTag = 16
	DynTagRel          DynTag = 17
	DynTagRelSz        DynTag = 18
	DynTagRelEnt       DynTag = 19
	DynTagPLTRel       DynTag = 20
	DynTagDebug        DynTag = 21
	DynTagTextRel      DynTag = 22
	DynTagJmpRel       DynTag = 23
	DynTagBindNow      DynTag = 24
	DynTagInitArray    DynTag = 25
	DynTagFiniArray    DynTag = 26
	DynTagInitArraySz  DynTag = 27
	DynTagFiniArraySz  DynTag = 28
	DynTagRunPath      DynTag = 29
	DynTagFlags        DynTag = 30
	DynTagGNUHash      DynTag = 0x6ffffef5
	DynTagVerSym       DynTag = 0x6ffffff0
	DynTagRelaCount    DynTag = 0x6ffffff9
	DynTagRelCount     DynTag = 0x6ffffffa
	DynTagFlags1       DynTag = 0x6ffffffb
	DynTagVerDef       DynTag = 0x6ffffffc
	DynTagVerDefNum    DynTag = 0x6ffffffd
	DynTagVerNeed      DynTag = 0x6ffffffe
	DynTagVerNeedNum   DynTag = 0x6fffffff
)

var dynTagNames = map[DynTag]string{
	DynTagNull:        "NULL",
	DynTagNeeded:      "NEEDED",
	DynTagPLTRelSz:    "PLTRELSZ",
	DynTagPLTGOT:      "PLTGOT",
	DynTagHash:        "HASH",
	DynTagStrtab:      "STRTAB",
	DynTagSymtab:      "SYMTAB",
	DynTagRela:        "RELA",
	DynTagRelaSz:      "RELASZ",
	DynTagRelaEnt:     "RELAENT",
	DynTagStrSz:       "STRSZ",
	DynTagSymEnt:      "SYMENT",
	DynTagInit:        "INIT",
	DynTagFini:        "FINI",
	DynTagSOName:      "SONAME",
	DynTagRPath:       "RPATH",
	DynTagSymbolic:    "SYMBOLIC",
	DynTagRel:         "REL",
	DynTagRelSz:       "RELSZ",
	DynTagRelEnt:      "RELENT",
	DynTagPLTRel:      "PLTREL",
	DynTagDebug:       "DEBUG",
	DynTagTextRel:     "TEXTREL",
	DynTagJmpRel:      "JMPREL",
	DynTagBindNow:     "BIND_NOW",
	DynTagInitArray:   "INIT_ARRAY",
	DynTagFiniArray:   "FINI_ARRAY",
	DynTagInitArraySz: "INIT_ARRAYSZ",
	DynTagFiniArraySz: "FINI_ARRAYSZ",
	DynTagRunPath:     "RUNPATH",
	DynTagFlags:       "FLAGS",
	DynTagGNUHash:     "GNU_HASH",
	DynTagVerSym:      "VERSYM",
	DynTagRelaCount:   "RELACOUNT",
	DynTagRelCount:    "RELCOUNT",
	DynTagFlags1:      "FLAGS_1",
	DynTagVerDef:      "VERDEF",
	DynTagVerDefNum:   "VERDEFNUM",
	DynTagVerNeed:     "VERNEED",
	DynTagVerNeedNum:  "VERNEEDNUM",
}

func (t DynTag) String() string {
	if s, ok := dynTagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("0x%x", uint64(t))
}

// stringTag reports whether the dynamic tag's value is an offset into the
// dynamic string table.
func stringTag(t DynTag) bool {
	switch t {
	case DynTagNeeded, DynTagSOName, DynTagRPath, DynTagRunPath:
		return true
	}
	return false
}
