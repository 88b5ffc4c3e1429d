// Package output writes elfscope analysis results to files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"elfscope/internal/disasm"
	"elfscope/internal/elfobj"
)

// Model is the JSON shape of a parsed file written by WriteModelJSON.
// Enumerated fields carry their display names so the dump is readable
// without the constant tables.
type Model struct {
	Class       string         `json:"class"`
	Data        string         `json:"data"`
	Type        string         `json:"type"`
	Machine     string         `json:"machine"`
	Entry       uint64         `json:"entry"`
	Segments    []SegmentEntry `json:"segments,omitempty"`
	Sections    []SectionEntry `json:"sections,omitempty"`
	Needed      []string       `json:"needed,omitempty"`
	Diagnostics []string       `json:"diagnostics,omitempty"`
}

// SegmentEntry is one program header in the JSON dump.
type SegmentEntry struct {
	Type   string `json:"type"`
	Flags  string `json:"flags"`
	Off    uint64 `json:"offset"`
	Vaddr  uint64 `json:"vaddr"`
	FileSz uint64 `json:"filesz"`
	MemSz  uint64 `json:"memsz"`
}

// SectionEntry is one section header in the JSON dump.
type SectionEntry struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Flags string `json:"flags,omitempty"`
	Addr  uint64 `json:"addr"`
	Off   uint64 `json:"offset"`
	Size  uint64 `json:"size"`
}

// BuildModel flattens a parsed file into the JSON dump shape.
func BuildModel(f *elfobj.File) *Model {
	m := &Model{
		Class:   f.Header.Class.String(),
		Data:    f.Header.Data.String(),
		Type:    f.Header.Type.String(),
		Machine: f.Header.Machine.String(),
		Entry:   f.Header.Entry,
		Needed:  f.NeededLibraries(),
	}
	for _, p := range f.Segments {
		m.Segments = append(m.Segments, SegmentEntry{
			Type: p.Type.String(), Flags: p.Flags.String(),
			Off: p.Off, Vaddr: p.Vaddr, FileSz: p.FileSz, MemSz: p.MemSz,
		})
	}
	for _, s := range f.Sections {
		m.Sections = append(m.Sections, SectionEntry{
			Name: s.Name, Type: s.Type.String(), Flags: s.Flags.String(),
			Addr: s.Addr, Off: s.Off, Size: s.Size,
		})
	}
	for _, d := range f.Diags {
		m.Diagnostics = append(m.Diagnostics, fmt.Sprintf("%s: %s", d.Kind, d.Detail))
	}
	return m
}

// WriteModelJSON writes the flattened model to model.json.
func WriteModelJSON(dir string, f *elfobj.File) error {
	return writeJSON(filepath.Join(dir, "model.json"), BuildModel(f))
}

// SymbolEntry represents a named address in symbols.json.
type SymbolEntry struct {
	Address uint64 `json:"address"`
	Name    string `json:"name"`
	Size    uint64 `json:"size,omitempty"`
	Type    string `json:"type,omitempty"`
	Binding string `json:"binding,omitempty"`
}

// WriteSymbolsJSON flattens every parsed symbol table to symbols.json.
// The null entry at index 0 of each table is skipped.
func WriteSymbolsJSON(dir string, f *elfobj.File) error {
	var entries []SymbolEntry
	for _, st := range f.Symtabs {
		for i, s := range st.Symbols {
			if i == 0 {
				continue
			}
			entries = append(entries, SymbolEntry{
				Address: s.Value,
				Name:    s.Name,
				Size:    s.Size,
				Type:    s.Type.String(),
				Binding: s.Binding.String(),
			})
		}
	}
	return writeJSON(filepath.Join(dir, "symbols.json"), entries)
}

// WriteASM writes disassembled instructions to asm/<name>.txt. name may
// contain path separators for directory grouping.
func WriteASM(dir string, name string, insts []disasm.Inst, lookup disasm.SymbolLookup) error {
	path := filepath.Join(dir, "asm", name+".txt")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir asm: %w", err)
	}
	return os.WriteFile(path, []byte(disasm.Format(insts, lookup)), 0644)
}

// WriteSectionBin writes a section's raw bytes to sections/<name>.bin.
func WriteSectionBin(dir string, name string, data []byte) error {
	path := filepath.Join(dir, "sections", name+".bin")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir sections: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}
