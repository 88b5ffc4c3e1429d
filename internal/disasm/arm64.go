package disasm

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/arch/arm64/arm64asm"
)

// disassembleARM64 walks fixed 4-byte instruction slots. Words the decoder
// rejects are emitted as .word data so addresses stay continuous.
func disassembleARM64(data []byte, opts Options) []Inst {
	maxSteps := opts.effectiveMax()
	n := len(data) / 4
	if n > maxSteps {
		n = maxSteps
	}

	result := make([]Inst, 0, n)
	for i := 0; i < n; i++ {
		off := i * 4
		raw := binary.LittleEndian.Uint32(data[off : off+4])
		addr := opts.BaseAddr + uint64(off)

		out := Inst{
			Addr: addr,
			Raw:  data[off : off+4],
			Size: 4,
		}
		inst, err := arm64asm.Decode(data[off : off+4])
		if err != nil {
			out.Text = fmt.Sprintf(".word 0x%08x", raw)
		} else {
			out.Text = inst.String()
		}
		out.Mnemonic, out.Operands = splitText(out.Text)

		if target, ok := isBL(raw, addr); ok {
			out.Call = CallDirect
			out.Target = target
		} else if isBLR(raw) {
			out.Call = CallIndirect
		}
		result = append(result, out)
	}
	return result
}

// isBL detects BL (branch with link): 100101 imm26. The target is the
// sign-extended imm26 times 4, relative to the PC.
func isBL(raw uint32, pc uint64) (target uint64, ok bool) {
	if raw&0xFC000000 != 0x94000000 {
		return 0, false
	}
	imm26 := int32(raw & 0x03FFFFFF)
	if imm26&(1<<25) != 0 {
		imm26 |= ^int32(0x03FFFFFF)
	}
	return uint64(int64(pc) + int64(imm26)*4), true
}

// isBLR detects BLR Xn (branch with link to register).
func isBLR(raw uint32) bool {
	return raw&0xFFFFFC1F == 0xD63F0000
}
