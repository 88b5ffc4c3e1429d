package main

import (
	"flag"
	"fmt"
	"os"

	"elfscope/internal/disasm"
	"elfscope/internal/elfobj"
	"elfscope/internal/output"
)

func cmdDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	path := fs.String("file", "", "path to the ELF object")
	out := fs.String("out", "", "output directory")
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

	if err := output.WriteModelJSON(*out, f); err != nil {
		return err
	}
	if err := output.WriteSymbolsJSON(*out, f); err != nil {
		return err
	}

	lookup := symbolLookup(f)
	arch, hasArch := archFor(f.Header.Machine)
	dumped, decoded := 0, 0
	for i, s := range f.Sections {
		if s.Type != elfobj.SectionTypeProgBits || s.Size == 0 || s.Name == "" {
			continue
		}
		data, err := f.SectionContent(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "section %s: %v\n", s.Name, err)
			continue
		}
		if err := output.WriteSectionBin(*out, s.Name, data); err != nil {
			return err
		}
		dumped++

		if hasArch && s.Flags&elfobj.SectionFlagExecInstr != 0 {
			insts, err := disasm.Disassemble(arch, data, disasm.Options{
				BaseAddr: s.Addr,
				MaxSteps: *maxSteps,
			})
			if err != nil {
				return err
			}
			if err := output.WriteASM(*out, s.Name, insts, lookup); err != nil {
				return err
			}
			decoded++
		}
	}
	fmt.Fprintf(os.Stderr, "dumped %d sections, disassembled %d\n", dumped, decoded)
	return nil
}
