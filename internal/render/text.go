// Package render writes readelf-style text reports from a parsed ELF model.
package render

import (
	"fmt"
	"io"

	"elfscope/internal/elfobj"
)

// Header prints the file header block.
func Header(w io.Writer, f *elfobj.File) {
	h := f.Header
	fmt.Fprintln(w, "ELF Header:")
	fmt.Fprintf(w, "  Class:                             %s\n", h.Class)
	fmt.Fprintf(w, "  Data:                              %s\n", h.Data)
	fmt.Fprintf(w, "  Version:                           %d\n", h.Ident.Version)
	fmt.Fprintf(w, "  OS/ABI:                            %s\n", h.OSABI)
	fmt.Fprintf(w, "  ABI Version:                       %d\n", h.ABIVersion)
	fmt.Fprintf(w, "  Type:                              %s\n", h.Type)
	fmt.Fprintf(w, "  Machine:                           %s\n", h.Machine)
	fmt.Fprintf(w, "  Entry point address:               0x%x\n", h.Entry)
	fmt.Fprintf(w, "  Start of program headers:          %d (bytes into file)\n", h.PhOff)
	fmt.Fprintf(w, "  Start of section headers:          %d (bytes into file)\n", h.ShOff)
	fmt.Fprintf(w, "  Flags:                             0x%x\n", h.Flags)
	fmt.Fprintf(w, "  Size of this header:               %d (bytes)\n", h.EhSize)
	fmt.Fprintf(w, "  Size of program headers:           %d (bytes)\n", h.PhEntSize)
	fmt.Fprintf(w, "  Number of program headers:         %d\n", h.PhNum)
	fmt.Fprintf(w, "  Size of section headers:           %d (bytes)\n", h.ShEntSize)
	fmt.Fprintf(w, "  Number of section headers:         %d\n", h.ShNum)
	fmt.Fprintf(w, "  Section header string table index: %d\n", h.ShStrNdx)
}

// Segments prints the program header table.
func Segments(w io.Writer, f *elfobj.File) {
	if len(f.Segments) == 0 {
		fmt.Fprintln(w, "There are no program headers in this file.")
		return
	}
	fmt.Fprintf(w, "Program Headers (%d entries):\n", len(f.Segments))
	fmt.Fprintln(w, "  Type           Offset             VirtAddr           PhysAddr")
	fmt.Fprintln(w, "                 FileSiz            MemSiz              Flags  Align")
	for _, p := range f.Segments {
		fmt.Fprintf(w, "  %-14s 0x%016x 0x%016x 0x%016x\n",
			p.Type, p.Off, p.Vaddr, p.Paddr)
		fmt.Fprintf(w, "                 0x%016x 0x%016x  %s    0x%x\n",
			p.FileSz, p.MemSz, p.Flags, p.Align)
	}
}

// Sections prints the section header table.
func Sections(w io.Writer, f *elfobj.File) {
	if len(f.Sections) == 0 {
		fmt.Fprintln(w, "There are no sections in this file.")
		return
	}
	fmt.Fprintf(w, "Section Headers (%d entries, starting at offset 0x%x):\n",
		len(f.Sections), f.Header.ShOff)
	fmt.Fprintln(w, "  [Nr] Name                 Type            Address          Offset")
	fmt.Fprintln(w, "       Size                 EntSize         Flags  Link  Info  Align")
	for i, s := range f.Sections {
		fmt.Fprintf(w, "  [%2d] %-20s %-15s %016x %08x\n",
			i, s.Name, s.Type, s.Addr, s.Off)
		fmt.Fprintf(w, "       %016x     %016x %-6s %-5d %-5d %d\n",
			s.Size, s.EntSize, s.Flags, s.Link, s.Info, s.Align)
	}
	fmt.Fprintln(w, "Key to Flags:")
	fmt.Fprintln(w, "  W (write), A (alloc), X (execute), M (merge), S (strings), I (info),")
	fmt.Fprintln(w, "  L (link order), G (group), T (TLS), C (compressed)")
}

// Symbols prints every parsed symbol table.
func Symbols(w io.Writer, f *elfobj.File) {
	if len(f.Symtabs) == 0 {
		fmt.Fprintln(w, "No symbol tables in this file.")
		return
	}
	for _, st := range f.Symtabs {
		fmt.Fprintf(w, "Symbol table '%s' contains %d entries:\n", st.Name, len(st.Symbols))
		fmt.Fprintln(w, "   Num:    Value          Size Type    Bind   Vis      Ndx Name")
		for i, s := range st.Symbols {
			fmt.Fprintf(w, "  %4d: %016x %5d %-7s %-6s %-8s %3s %s\n",
				i, s.Value, s.Size, s.Type, s.Binding, s.Visibility, s.Section, s.Name)
		}
	}
}

// Relocations prints every relocation table.
func Relocations(w io.Writer, f *elfobj.File) {
	if len(f.Relocs) == 0 {
		fmt.Fprintln(w, "There are no relocations in this file.")
		return
	}
	for i := range f.Relocs {
		rt := &f.Relocs[i]
		fmt.Fprintf(w, "Relocation section '%s' contains %d entries:\n", rt.Name, len(rt.Entries))
		fmt.Fprintln(w, "  Offset           Type                 Sym.Value        Sym.Name + Addend")
		for _, rel := range rt.Entries {
			typeName := rel.TypeName
			if typeName == "" {
				typeName = fmt.Sprintf("type %d", rel.Type)
			}
			name := ""
			var value uint64
			if sym, ok := f.RelocationSymbol(rt, rel); ok {
				name = sym.Name
				value = sym.Value
			}
			fmt.Fprintf(w, "  %016x %-20s %016x %s", rel.Off, typeName, value, name)
			if rt.RELA {
				fmt.Fprintf(w, " + %d", rel.Addend)
			}
			fmt.Fprintln(w)
		}
	}
}

// Dynamic prints the dynamic section.
func Dynamic(w io.Writer, f *elfobj.File) {
	if len(f.Dynamic) == 0 {
		fmt.Fprintln(w, "There is no dynamic section in this file.")
		return
	}
	fmt.Fprintf(w, "Dynamic section contains %d entries:\n", len(f.Dynamic))
	fmt.Fprintln(w, "  Tag                Type         Name/Value")
	for _, d := range f.Dynamic {
		fmt.Fprintf(w, "  0x%016x %-12s %s\n", uint64(d.Tag), d.Tag, dynValue(d))
	}
}

func dynValue(d elfobj.DynamicEntry) string {
	if d.Str != "" {
		switch d.Tag {
		case elfobj.DynTagNeeded:
			return fmt.Sprintf("Shared library: [%s]", d.Str)
		case elfobj.DynTagSOName:
			return fmt.Sprintf("Library soname: [%s]", d.Str)
		case elfobj.DynTagRPath, elfobj.DynTagRunPath:
			return fmt.Sprintf("Library search path: [%s]", d.Str)
		}
		return d.Str
	}
	return fmt.Sprintf("0x%x", d.Value)
}

// Strings prints the contents of every string table section.
func Strings(w io.Writer, f *elfobj.File) {
	printed := false
	for i, s := range f.Sections {
		if s.Type != elfobj.SectionTypeStrtab {
			continue
		}
		strs, err := f.StringTableStrings(i)
		if err != nil {
			continue
		}
		printed = true
		fmt.Fprintf(w, "String table '%s' (%d strings):\n", s.Name, len(strs))
		for _, str := range strs {
			fmt.Fprintf(w, "  %s\n", str)
		}
	}
	if !printed {
		fmt.Fprintln(w, "No string tables in this file.")
	}
}

// Diagnostics prints the accumulated parse diagnostics, one per line.
func Diagnostics(w io.Writer, f *elfobj.File) {
	for _, d := range f.Diags {
		fmt.Fprintf(w, "warning: %s: %s\n", d.Kind, d.Detail)
	}
}

// All prints every report in file order.
func All(w io.Writer, f *elfobj.File) {
	Header(w, f)
	fmt.Fprintln(w)
	Segments(w, f)
	fmt.Fprintln(w)
	Sections(w, f)
	fmt.Fprintln(w)
	Symbols(w, f)
	fmt.Fprintln(w)
	Relocations(w, f)
	fmt.Fprintln(w)
	Dynamic(w, f)
}
