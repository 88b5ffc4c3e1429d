package disasm

import (
	"strings"
	"testing"
)

// Little-endian ARM64 words: BL .+8, BLR X3, NOP, RET.
func arm64Words() []byte {
	return []byte{
		0x02, 0x00, 0x00, 0x94, // BL +8
		0x60, 0x00, 0x3f, 0xd6, // BLR X3
		0x1f, 0x20, 0x03, 0xd5, // NOP
		0xc0, 0x03, 0x5f, 0xd6, // RET
	}
}

func TestDisassembleARM64(t *testing.T) {
	insts, err := Disassemble(ArchAArch64, arm64Words(), Options{BaseAddr: 0x1000})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(insts) != 4 {
		t.Fatalf("got %d instructions, want 4", len(insts))
	}
	for i, inst := range insts {
		if inst.Size != 4 || inst.Addr != 0x1000+uint64(i)*4 {
			t.Errorf("inst %d = addr 0x%x size %d", i, inst.Addr, inst.Size)
		}
	}
	bl := insts[0]
	if bl.Call != CallDirect || bl.Target != 0x1008 {
		t.Errorf("BL = call %d target 0x%x, want direct call to 0x1008", bl.Call, bl.Target)
	}
	if insts[1].Call != CallIndirect {
		t.Errorf("BLR = call %d, want indirect", insts[1].Call)
	}
	if insts[2].Call != CallNone || insts[3].Call != CallNone {
		t.Error("NOP/RET misclassified as calls")
	}
}

func TestDisassembleARM64Undecodable(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff}
	insts, err := Disassemble(ArchAArch64, data, Options{})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(insts) != 1 || insts[0].Text != ".word 0xffffffff" {
		t.Errorf("insts = %+v, want one .word entry", insts)
	}
}

func TestDisassembleARM64TruncatedTail(t *testing.T) {
	data := append(arm64Words(), 0xc0, 0x03) // half a word at the end
	insts, err := Disassemble(ArchAArch64, data, Options{})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(insts) != 4 {
		t.Errorf("got %d instructions, want the 4 whole words", len(insts))
	}
}

func TestDisassembleX86(t *testing.T) {
	code := []byte{
		0xe8, 0x05, 0x00, 0x00, 0x00, // call +5
		0xff, 0xd0, // call *%rax
		0xc3, // ret
	}
	insts, err := Disassemble(ArchX86_64, code, Options{BaseAddr: 0x1000})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(insts) != 3 {
		t.Fatalf("got %d instructions, want 3", len(insts))
	}
	call := insts[0]
	if call.Size != 5 || call.Call != CallDirect || call.Target != 0x100a {
		t.Errorf("call = size %d kind %d target 0x%x, want 5-byte direct call to 0x100a",
			call.Size, call.Call, call.Target)
	}
	if insts[1].Call != CallIndirect || insts[1].Size != 2 {
		t.Errorf("call *%%rax = kind %d size %d, want indirect", insts[1].Call, insts[1].Size)
	}
	if insts[2].Mnemonic != "ret" {
		t.Errorf("mnemonic = %q, want ret", insts[2].Mnemonic)
	}
}

func TestDisassembleX86BadByte(t *testing.T) {
	// 0x06 has no encoding in 64-bit mode; decoding resynchronizes on the
	// following ret.
	code := []byte{0x06, 0xc3}
	insts, err := Disassemble(ArchX86_64, code, Options{})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(insts) != 2 {
		t.Fatalf("got %d instructions, want 2", len(insts))
	}
	if insts[0].Mnemonic != "(bad)" || insts[0].Size != 1 {
		t.Errorf("inst 0 = %+v, want a 1-byte (bad) entry", insts[0])
	}
	if insts[1].Mnemonic != "ret" {
		t.Errorf("inst 1 = %+v, want ret", insts[1])
	}
}

func TestMaxSteps(t *testing.T) {
	insts, err := Disassemble(ArchAArch64, arm64Words(), Options{MaxSteps: 2})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if len(insts) != 2 {
		t.Errorf("got %d instructions, want the MaxSteps cap of 2", len(insts))
	}
}

func TestFormat(t *testing.T) {
	insts, err := Disassemble(ArchAArch64, arm64Words(), Options{BaseAddr: 0x1000})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	lookup := TableLookup(map[uint64]string{0x1000: "main", 0x1008: "helper"})
	out := Format(insts, lookup)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "0x00001000") || !strings.Contains(lines[0], "; <main>") {
		t.Errorf("line 0 = %q, want the entry label comment", lines[0])
	}
	if !strings.Contains(lines[2], "; <helper>") {
		t.Errorf("line 2 = %q, want the helper label comment", lines[2])
	}
}

func TestExtractCallEdges(t *testing.T) {
	insts, err := Disassemble(ArchAArch64, arm64Words(), Options{BaseAddr: 0x1000})
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	edges := ExtractCallEdges(insts, TableLookup(map[uint64]string{0x1008: "helper"}))
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	if edges[0].Kind != "call" || edges[0].TargetPC != 0x1008 || edges[0].TargetName != "helper" {
		t.Errorf("edge 0 = %+v", edges[0])
	}
	if edges[1].Kind != "indirect" || edges[1].FromPC != 0x1004 {
		t.Errorf("edge 1 = %+v", edges[1])
	}
}
