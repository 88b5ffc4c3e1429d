// Package disasm decodes machine code from ELF executable sections into a
// uniform instruction stream. AArch64 and x86-64 are supported.
package disasm

import (
	"fmt"
	"strings"
)

// Arch selects the instruction set decoder.
type Arch int

const (
	ArchAArch64 Arch = iota
	ArchX86_64
)

func (a Arch) String() string {
	switch a {
	case ArchAArch64:
		return "aarch64"
	case ArchX86_64:
		return "x86-64"
	}
	return fmt.Sprintf("arch(%d)", int(a))
}

// CallKind classifies an instruction's call behavior.
type CallKind int

const (
	CallNone CallKind = iota
	CallDirect
	CallIndirect
)

// Inst is one decoded instruction. Undecodable bytes come back as a data
// pseudo-instruction so the stream always covers the input region.
type Inst struct {
	Addr     uint64
	Raw      []byte
	Size     int
	Mnemonic string
	Operands string
	Text     string

	Call   CallKind
	Target uint64 // call destination, valid for CallDirect
}

// SymbolLookup resolves an address to a symbolic name. Returns ("", false)
// if unknown.
type SymbolLookup func(addr uint64) (name string, ok bool)

// Options controls disassembly.
type Options struct {
	BaseAddr uint64       // VA of the first byte in Data
	MaxSteps int          // maximum instructions to decode; 0 = 10M
	Symbols  SymbolLookup // optional symbol resolver
}

const defaultMaxSteps = 10_000_000

func (o Options) effectiveMax() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return defaultMaxSteps
}

// Disassemble decodes instructions from a byte region until MaxSteps or end
// of data.
func Disassemble(arch Arch, data []byte, opts Options) ([]Inst, error) {
	switch arch {
	case ArchAArch64:
		return disassembleARM64(data, opts), nil
	case ArchX86_64:
		return disassembleX86(data, opts), nil
	}
	return nil, fmt.Errorf("disasm: unsupported architecture %v", arch)
}

// Format renders instructions as stable text output, one line each:
// <addr>  <hex bytes>  <disasm>  ; <symbol>
func Format(insts []Inst, lookup SymbolLookup) string {
	var b strings.Builder
	for _, inst := range insts {
		fmt.Fprintf(&b, "0x%08x  ", inst.Addr)
		for _, c := range inst.Raw {
			fmt.Fprintf(&b, "%02x ", c)
		}
		// Pad so the mnemonic column lines up across x86 lengths.
		for i := len(inst.Raw); i < 8; i++ {
			b.WriteString("   ")
		}
		b.WriteByte(' ')
		b.WriteString(inst.Text)
		if lookup != nil {
			if name, ok := lookup(inst.Addr); ok {
				fmt.Fprintf(&b, "  ; <%s>", name)
			} else if inst.Call == CallDirect {
				if name, ok := lookup(inst.Target); ok {
					fmt.Fprintf(&b, "  ; -> %s", name)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TableLookup returns a SymbolLookup over a fixed address-to-name map.
func TableLookup(entryPoints map[uint64]string) SymbolLookup {
	return func(addr uint64) (string, bool) {
		name, ok := entryPoints[addr]
		return name, ok
	}
}

// splitText separates a disassembly line into mnemonic and operands.
func splitText(text string) (mnemonic, operands string) {
	parts := strings.SplitN(text, " ", 2)
	mnemonic = parts[0]
	if len(parts) > 1 {
		operands = strings.TrimSpace(parts[1])
	}
	return
}
