package main

import (
	"flag"
	"fmt"
	"os"

	"elfscope/internal/disasm"
	"elfscope/internal/elfobj"
)

func cmdDisasm(args []string) error {
	fs := flag.NewFlagSet("disasm", flag.ExitOnError)
	path := fs.String("file", "", "path to the ELF object")
	section := fs.String("section", ".text", "executable section to decode")
	maxSteps := fs.Int("max-steps", 0, "instruction decode cap")
	out := fs.String("out", "", "write output to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := loadFile(*path)
	if err != nil {
		return err
	}

	arch, ok := archFor(f.Header.Machine)
	if !ok {
		return fmt.Errorf("no decoder for machine %s", f.Header.Machine)
	}
	sec, index, ok := f.SectionByName(*section)
	if !ok {
		return fmt.Errorf("no section named %s", *section)
	}
	if sec.Type != elfobj.SectionTypeProgBits {
		return fmt.Errorf("section %s is %s, not PROGBITS", sec.Name, sec.Type)
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
	fmt.Fprintf(os.Stderr, "%s: %d instructions from %s (%d bytes)\n",
		arch, len(insts), sec.Name, len(data))

	text := disasm.Format(insts, symbolLookup(f))
	if *out != "" {
		return os.WriteFile(*out, []byte(text), 0644)
	}
	_, err = os.Stdout.WriteString(text)
	return err
}
