package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "header":
		err = cmdHeader(os.Args[2:])
	case "segments":
		err = cmdSegments(os.Args[2:])
	case "sections":
		err = cmdSections(os.Args[2:])
	case "symbols":
		err = cmdSymbols(os.Args[2:])
	case "relocs":
		err = cmdRelocs(os.Args[2:])
	case "dynamic":
		err = cmdDynamic(os.Args[2:])
	case "strings":
		err = cmdStrings(os.Args[2:])
	case "disasm":
		err = cmdDisasm(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "dump":
		err = cmdDump(os.Args[2:])
	case "all":
		err = cmdAll(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `elfscope — ELF object inspector

Usage:
  elfscope header   --file <path>               Print the file header
  elfscope segments --file <path>               Print the program header table
  elfscope sections --file <path>               Print the section header table
  elfscope symbols  --file <path>               Print every symbol table
  elfscope relocs   --file <path>               Print every relocation table
  elfscope dynamic  --file <path>               Print the dynamic section
  elfscope strings  --file <path> [--section s] Print string table contents
  elfscope disasm   --file <path> [--section s] Disassemble an executable section
  elfscope graph    --file <path> --out <dir>   Write call graph and section graph DOT
  elfscope dump     --file <path> --out <dir>   Dump model, symbols and sections to files
  elfscope all      --file <path>               Print every report

Flags:
  --file <path>      Path to the ELF object
  --out <dir>        Output directory
  --section <name>   Section to operate on
  --max-steps <n>    Instruction decode cap
`)
}
