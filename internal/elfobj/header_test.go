package elfobj

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseHeader64(t *testing.T) {
	raw := testHeader{
		class: Class64, order: binary.LittleEndian, data: byte(LittleEndian),
		typ: FileTypeExecutable, machine: MachineX86_64, entry: 0x401000,
	}.bytes(t)
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	h := f.Header
	if h.Class != Class64 || h.Data != LittleEndian {
		t.Errorf("identity = %v/%v, want ELF64 little endian", h.Class, h.Data)
	}
	if h.Type != FileTypeExecutable {
		t.Errorf("type = %v, want executable", h.Type)
	}
	if h.Machine != MachineX86_64 {
		t.Errorf("machine = %v, want x86-64", h.Machine)
	}
	if h.Entry != 0x401000 {
		t.Errorf("entry = 0x%x, want 0x401000", h.Entry)
	}
	if len(f.Sections) != 0 || len(f.Segments) != 0 {
		t.Errorf("got %d sections, %d segments, want none", len(f.Sections), len(f.Segments))
	}
	if len(f.Diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", f.Diags)
	}
}

func TestParseHeader32BigEndian(t *testing.T) {
	raw := testHeader{
		class: Class32, order: binary.BigEndian, data: byte(BigEndian),
		typ: FileTypeShared, machine: MachinePPC, entry: 0x10000,
	}.bytes(t)
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Header.Class != Class32 || f.Header.Data != BigEndian {
		t.Errorf("identity = %v/%v, want ELF32 big endian", f.Header.Class, f.Header.Data)
	}
	if f.Header.Entry != 0x10000 {
		t.Errorf("entry = 0x%x, want 0x10000", f.Header.Entry)
	}
	if f.ByteOrder() != binary.BigEndian {
		t.Errorf("byte order = %v, want big endian", f.ByteOrder())
	}
}

func TestParseShortBuffers(t *testing.T) {
	// Anything under 16 bytes can never identify as ELF.
	for n := 0; n < identSize; n++ {
		raw := make([]byte, n)
		copy(raw, elfMagic[:])
		if _, err := Parse(raw); !errors.Is(err, ErrBadMagic) {
			t.Errorf("Parse(%d bytes) = %v, want ErrBadMagic", n, err)
		}
	}
}

func TestParseBadMagic(t *testing.T) {
	raw := make([]byte, 64)
	copy(raw, "\x7fBAD")
	if _, err := Parse(raw); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("Parse = %v, want ErrBadMagic", err)
	}
}

func TestParseUnsupportedClass(t *testing.T) {
	raw := testHeader{class: Class64, order: binary.LittleEndian, data: byte(LittleEndian)}.bytes(t)
	raw[4] = 3
	if _, err := Parse(raw); !errors.Is(err, ErrUnsupportedClass) {
		t.Fatalf("Parse = %v, want ErrUnsupportedClass", err)
	}
}

func TestParseUnsupportedEncoding(t *testing.T) {
	raw := testHeader{class: Class64, order: binary.LittleEndian, data: byte(LittleEndian)}.bytes(t)
	raw[5] = 0
	if _, err := Parse(raw); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("Parse = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	raw := testHeader{
		class: Class64, order: binary.LittleEndian, data: byte(LittleEndian),
	}.bytes(t)
	for n := identSize; n < len(raw); n += 7 {
		if _, err := Parse(raw[:n]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Parse(%d bytes) = %v, want ErrOutOfBounds", n, err)
		}
	}
}

func TestParseDeclaredSizeTooLarge(t *testing.T) {
	raw := testHeader{
		class: Class64, order: binary.LittleEndian, data: byte(LittleEndian),
		shoff: 64, shentsize: 0xffff, shnum: 0xffff,
	}.bytes(t)
	if _, err := Parse(raw); !errors.Is(err, ErrDeclaredSizeTooLarge) {
		t.Fatalf("Parse = %v, want ErrDeclaredSizeTooLarge", err)
	}
}
