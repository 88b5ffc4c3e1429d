package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"

	"elfscope/internal/callgraph"
	"elfscope/internal/disasm"
	"elfscope/internal/elfobj"
)

func cmdGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	path := fs.String("file", "", "path to the ELF object")
	out := fs.String("out", "", "output directory")
	section := fs.String("section", ".text", "executable section to decode")
	maxSteps := fs.Int("max-steps", 0, "instruction decode cap")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("--out is required")
	}
	f, err := loadFile(*path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		return fmt.Errorf("mkdir out: %w", err)
	}

	// Section cross-reference graph from sh_link relationships.
	sg := sectionGraph(f)
	sgPath := filepath.Join(*out, "sections.dot")
	if err := os.WriteFile(sgPath, []byte(render.DOT(sg, "sections")), 0644); err != nil {
		return fmt.Errorf("write sections.dot: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d nodes, %d edges)\n", sgPath, len(sg.Nodes), len(sg.Edges))

	// Call graph over defined FUNC symbols, when the machine has a decoder.
	arch, ok := archFor(f.Header.Machine)
	if !ok {
		fmt.Fprintf(os.Stderr, "no decoder for machine %s, skipping call graph\n", f.Header.Machine)
		return nil
	}
	sec, index, ok := f.SectionByName(*section)
	if !ok || sec.Type != elfobj.SectionTypeProgBits {
		fmt.Fprintf(os.Stderr, "no %s code section, skipping call graph\n", *section)
		return nil
	}
	data, err := f.SectionContent(index)
	if err != nil {
		return err
	}
	insts, err := disasm.Disassemble(arch, data, disasm.Options{
		BaseAddr: sec.Addr,
		MaxSteps: *maxSteps,
	})
	if err != nil {
		return err
	}

	funcs := callgraph.Split(insts, funcEntries(f), symbolLookup(f))
	cg := callgraph.BuildCallGraph(funcs)
	cgPath := filepath.Join(*out, "callgraph.dot")
	if err := os.WriteFile(cgPath, []byte(render.DOT(cg, "callgraph")), 0644); err != nil {
		return fmt.Errorf("write callgraph.dot: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d functions, %d edges)\n", cgPath, len(funcs), len(cg.Edges))
	return nil
}

// sectionGraph maps sh_link and relocation targets to named edges.
func sectionGraph(f *elfobj.File) *lattice.Graph {
	var names []string
	for _, s := range f.Sections {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	var links []callgraph.SectionLink
	addLink := func(from, to int) {
		fs, okF := f.Section(from)
		ts, okT := f.Section(to)
		if okF && okT && fs.Name != "" && ts.Name != "" {
			links = append(links, callgraph.SectionLink{From: fs.Name, To: ts.Name})
		}
	}
	for i, s := range f.Sections {
		if s.Link != 0 {
			addLink(i, int(s.Link))
		}
	}
	for i := range f.Relocs {
		rt := &f.Relocs[i]
		if rt.Target > 0 {
			addLink(rt.SectionIndex, rt.Target)
		}
	}
	return callgraph.BuildSectionGraph(names, links)
}
