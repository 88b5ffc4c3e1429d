package main

import (
	"flag"
	"fmt"
	"os"

	"elfscope/internal/render"
)

func cmdStrings(args []string) error {
	fs := flag.NewFlagSet("strings", flag.ExitOnError)
	path := fs.String("file", "", "path to the ELF object")
	section := fs.String("section", "", "string table section to print (default: all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := loadFile(*path)
	if err != nil {
		return err
	}

	if *section == "" {
		render.Strings(os.Stdout, f)
		return nil
	}

	sec, index, ok := f.SectionByName(*section)
	if !ok {
		return fmt.Errorf("no section named %s", *section)
	}
	strs, err := f.StringTableStrings(index)
	if err != nil {
		return err
	}
	fmt.Printf("String table '%s' (%d strings):\n", sec.Name, len(strs))
	for _, s := range strs {
		fmt.Printf("  %s\n", s)
	}
	return nil
}
