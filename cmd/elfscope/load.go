package main

import (
	"fmt"
	"os"

	"elfscope/internal/callgraph"
	"elfscope/internal/disasm"
	"elfscope/internal/elfobj"
	"elfscope/internal/render"
)

// loadFile reads and parses an ELF object, reporting recoverable
// diagnostics on stderr.
func loadFile(path string) (*elfobj.File, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	f, err := elfobj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	render.Diagnostics(os.Stderr, f)
	return f, nil
}

// archFor maps the file header's machine to a decoder, when one exists.
func archFor(m elfobj.Machine) (disasm.Arch, bool) {
	switch m {
	case elfobj.MachineAArch64:
		return disasm.ArchAArch64, true
	case elfobj.MachineX86_64:
		return disasm.ArchX86_64, true
	}
	return 0, false
}

// symbolLookup indexes every named symbol by value across all tables.
func symbolLookup(f *elfobj.File) disasm.SymbolLookup {
	byAddr := make(map[uint64]string)
	for _, st := range f.Symtabs {
		for _, s := range st.Symbols {
			if s.Name == "" || s.Section == elfobj.SectionRefUndef {
				continue
			}
			if _, taken := byAddr[s.Value]; !taken {
				byAddr[s.Value] = s.Name
			}
		}
	}
	return disasm.TableLookup(byAddr)
}

// funcEntries collects defined FUNC symbols as call graph entry points.
func funcEntries(f *elfobj.File) []callgraph.Entry {
	var entries []callgraph.Entry
	seen := make(map[uint64]bool)
	for _, st := range f.Symtabs {
		for _, s := range st.Symbols {
			if s.Type != elfobj.SymTypeFunc || s.Name == "" || s.Section == elfobj.SectionRefUndef {
				continue
			}
			if seen[s.Value] {
				continue
			}
			seen[s.Value] = true
			entries = append(entries, callgraph.Entry{Name: s.Name, Addr: s.Value, Size: s.Size})
		}
	}
	return entries
}
