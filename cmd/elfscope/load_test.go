package main

import (
	"testing"

	"elfscope/internal/elfobj"
)

func testModel() *elfobj.File {
	return &elfobj.File{
		Header: elfobj.Header{
			Ident:   elfobj.Ident{Class: elfobj.Class64, Data: elfobj.LittleEndian},
			Machine: elfobj.MachineAArch64,
		},
		Sections: []elfobj.SectionHeader{
			{},
			{Name: ".text", Type: elfobj.SectionTypeProgBits},
			{Name: ".strtab", Type: elfobj.SectionTypeStrtab},
			{Name: ".symtab", Type: elfobj.SectionTypeSymtab, Link: 2},
			{Name: ".rela.text", Type: elfobj.SectionTypeRela, Link: 3},
		},
		Symtabs: []elfobj.SymbolTable{
			{SectionIndex: 3, Name: ".symtab", Symbols: []elfobj.Symbol{
				{},
				{Name: "main", Value: 0x1000, Size: 32, Type: elfobj.SymTypeFunc, Section: 1},
				{Name: "helper", Value: 0x1020, Size: 16, Type: elfobj.SymTypeFunc, Section: 1},
				{Name: "data_obj", Value: 0x2000, Type: elfobj.SymTypeObject, Section: 1},
				{Name: "external", Type: elfobj.SymTypeFunc, Section: elfobj.SectionRefUndef},
			}},
		},
		Relocs: []elfobj.RelocationTable{
			{SectionIndex: 4, Name: ".rela.text", Symtab: 3, Target: 1},
		},
		DynamicSection: -1,
	}
}

func TestArchFor(t *testing.T) {
	if a, ok := archFor(elfobj.MachineAArch64); !ok || a.String() != "aarch64" {
		t.Errorf("archFor(AArch64) = %v/%v", a, ok)
	}
	if a, ok := archFor(elfobj.MachineX86_64); !ok || a.String() != "x86-64" {
		t.Errorf("archFor(X86_64) = %v/%v", a, ok)
	}
	if _, ok := archFor(elfobj.MachineS390); ok {
		t.Error("archFor(S390) found a decoder")
	}
}

func TestSymbolLookup(t *testing.T) {
	lookup := symbolLookup(testModel())
	if name, ok := lookup(0x1000); !ok || name != "main" {
		t.Errorf("lookup(0x1000) = %q/%v", name, ok)
	}
	// Undefined symbols carry no address and must not shadow real ones.
	if name, ok := lookup(0); ok {
		t.Errorf("lookup(0) = %q, want no match", name)
	}
}

func TestFuncEntries(t *testing.T) {
	entries := funcEntries(testModel())
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want main and helper only", len(entries))
	}
	for _, e := range entries {
		if e.Name != "main" && e.Name != "helper" {
			t.Errorf("unexpected entry %+v", e)
		}
	}
}

func TestSectionGraph(t *testing.T) {
	g := sectionGraph(testModel())
	want := map[[2]string]bool{
		{".symtab", ".strtab"}:    false,
		{".rela.text", ".symtab"}: false,
		{".rela.text", ".text"}:   false,
	}
	for _, e := range g.Edges {
		key := [2]string{e.Caller, e.Callee}
		if _, ok := want[key]; !ok {
			t.Errorf("unexpected edge %v", key)
			continue
		}
		want[key] = true
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("missing edge %v", key)
		}
	}
}
