package disasm

import (
	"golang.org/x/arch/x86/x86asm"
)

// disassembleX86 decodes 64-bit mode x86 with variable-length stepping.
// Undecodable bytes advance one byte at a time as (bad) so the stream
// resynchronizes.
func disassembleX86(data []byte, opts Options) []Inst {
	maxSteps := opts.effectiveMax()

	var result []Inst
	off := 0
	for off < len(data) && len(result) < maxSteps {
		addr := opts.BaseAddr + uint64(off)
		inst, err := x86asm.Decode(data[off:], 64)
		if err != nil || inst.Len == 0 {
			result = append(result, Inst{
				Addr:     addr,
				Raw:      data[off : off+1],
				Size:     1,
				Mnemonic: "(bad)",
				Text:     "(bad)",
			})
			off++
			continue
		}

		out := Inst{
			Addr: addr,
			Raw:  data[off : off+inst.Len],
			Size: inst.Len,
			Text: x86asm.GNUSyntax(inst, addr, nil),
		}
		out.Mnemonic, out.Operands = splitText(out.Text)

		if inst.Op == x86asm.CALL {
			if rel, ok := inst.Args[0].(x86asm.Rel); ok {
				out.Call = CallDirect
				out.Target = addr + uint64(inst.Len) + uint64(int64(rel))
			} else {
				out.Call = CallIndirect
			}
		}
		result = append(result, out)
		off += inst.Len
	}
	return result
}
