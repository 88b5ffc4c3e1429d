package main

import (
	"flag"
	"os"

	"elfscope/internal/elfobj"
	"elfscope/internal/render"
)

// The report commands share one shape: parse the file, write one table to
// stdout.
func runReport(name string, args []string, report func(*elfobj.File)) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	path := fs.String("file", "", "path to the ELF object")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := loadFile(*path)
	if err != nil {
		return err
	}
	report(f)
	return nil
}

func cmdHeader(args []string) error {
	return runReport("header", args, func(f *elfobj.File) { render.Header(os.Stdout, f) })
}

func cmdSegments(args []string) error {
	return runReport("segments", args, func(f *elfobj.File) { render.Segments(os.Stdout, f) })
}

func cmdSections(args []string) error {
	return runReport("sections", args, func(f *elfobj.File) { render.Sections(os.Stdout, f) })
}

func cmdSymbols(args []string) error {
	return runReport("symbols", args, func(f *elfobj.File) { render.Symbols(os.Stdout, f) })
}

func cmdRelocs(args []string) error {
	return runReport("relocs", args, func(f *elfobj.File) { render.Relocations(os.Stdout, f) })
}

func cmdDynamic(args []string) error {
	return runReport("dynamic", args, func(f *elfobj.File) { render.Dynamic(os.Stdout, f) })
}

func cmdAll(args []string) error {
	return runReport("all", args, func(f *elfobj.File) { render.All(os.Stdout, f) })
}
