package elfobj

// Per-machine relocation type names. Deliberately a closed set: machines
// without a table keep the raw numeric code and no label.

var relocNamesX86_64 = map[uint32]string{
	0:  "R_X86_64_NONE",
	1:  "R_X86_64_64",
	2:  "R_X86_64_PC32",
	3:  "R_X86_64_GOT32",
	4:  "R_X86_64_PLT32",
	5:  "R_X86_64_COPY",
	6:  "R_X86_64_GLOB_DAT",
	7:  "R_X86_64_JMP_SLOT",
	8:  "R_X86_64_RELATIVE",
	9:  "R_X86_64_GOTPCREL",
	10: "R_X86_64_32",
	11: "R_X86_64_32S",
	12: "R_X86_64_16",
	13: "R_X86_64_PC16",
	14: "R_X86_64_8",
	15: "R_X86_64_PC8",
	16: "R_X86_64_DTPMOD64",
	17: "R_X86_64_DTPOFF64",
	18: "R_X86_64_TPOFF64",
	19: "R_X86_64_TLSGD",
	20: "R_X86_64_TLSLD",
	21: "R_X86_64_DTPOFF32",
	22: "R_X86_64_GOTTPOFF",
	23: "R_X86_64_TPOFF32",
	24: "R_X86_64_PC64",
	25: "R_X86_64_GOTOFF64",
	26: "R_X86_64_GOTPC32",
	32: "R_X86_64_SIZE32",
	33: "R_X86_64_SIZE64",
	37: "R_X86_64_IRELATIVE",
	41: "R_X86_64_GOTPCRELX",
	42: "R_X86_64_REX_GOTPCRELX",
}

var relocNames386 = map[uint32]string{
	0:  "R_386_NONE",
	1:  "R_386_32",
	2:  "R_386_PC32",
	3:  "R_386_GOT32",
	4:  "R_386_PLT32",
	5:  "R_386_COPY",
	6:  "R_386_GLOB_DAT",
	7:  "R_386_JMP_SLOT",
	8:  "R_386_RELATIVE",
	9:  "R_386_GOTOFF",
	10: "R_386_GOTPC",
	14: "R_386_TLS_TPOFF",
	15: "R_386_TLS_IE",
	16: "R_386_TLS_GOTIE",
	17: "R_386_TLS_LE",
	18: "R_386_TLS_GD",
	19: "R_386_TLS_LDM",
	35: "R_386_TLS_DTPMOD32",
	36: "R_386_TLS_DTPOFF32",
	37: "R_386_TLS_TPOFF32",
	42: "R_386_IRELATIVE",
}

var relocNamesARM = map[uint32]string{
	0:  "R_ARM_NONE",
	1:  "R_ARM_PC24",
	2:  "R_ARM_ABS32",
	3:  "R_ARM_REL32",
	10: "R_ARM_THM_CALL",
	20: "R_ARM_COPY",
	21: "R_ARM_GLOB_DAT",
	22: "R_ARM_JUMP_SLOT",
	23: "R_ARM_RELATIVE",
	24: "R_ARM_GOTOFF32",
	25: "R_ARM_BASE_PREL",
	26: "R_ARM_GOT_BREL",
	27: "R_ARM_PLT32",
	28: "R_ARM_CALL",
	29: "R_ARM_JUMP24",
	38: "R_ARM_TARGET1",
	40: "R_ARM_V4BX",
}

var relocNamesAArch64 = map[uint32]string{
	0:    "R_AARCH64_NONE",
	257:  "R_AARCH64_ABS64",
	258:  "R_AARCH64_ABS32",
	259:  "R_AARCH64_ABS16",
	260:  "R_AARCH64_PREL64",
	261:  "R_AARCH64_PREL32",
	262:  "R_AARCH64_PREL16",
	274:  "R_AARCH64_ADR_PREL_PG_HI21",
	275:  "R_AARCH64_ADD_ABS_LO12_NC",
	282:  "R_AARCH64_JUMP26",
	283:  "R_AARCH64_CALL26",
	311:  "R_AARCH64_ADR_GOT_PAGE",
	312:  "R_AARCH64_LD64_GOT_LO12_NC",
	1024: "R_AARCH64_COPY",
	1025: "R_AARCH64_GLOB_DAT",
	1026: "R_AARCH64_JUMP_SLOT",
	1027: "R_AARCH64_RELATIVE",
	1028: "R_AARCH64_TLS_DTPMOD64",
	1029: "R_AARCH64_TLS_DTPREL64",
	1030: "R_AARCH64_TLS_TPREL64",
	1031: "R_AARCH64_TLSDESC",
	1032: "R_AARCH64_IRELATIVE",
}

var relocNamesRISCV = map[uint32]string{
	0:  "R_RISCV_NONE",
	1:  "R_RISCV_32",
	2:  "R_RISCV_64",
	3:  "R_RISCV_RELATIVE",
	4:  "R_RISCV_COPY",
	5:  "R_RISCV_JUMP_SLOT",
	6:  "R_RISCV_TLS_DTPMOD32",
	7:  "R_RISCV_TLS_DTPMOD64",
	8:  "R_RISCV_TLS_DTPREL32",
	9:  "R_RISCV_TLS_DTPREL64",
	10: "R_RISCV_TLS_TPREL32",
	11: "R_RISCV_TLS_TPREL64",
	16: "R_RISCV_BRANCH",
	17: "R_RISCV_JAL",
	18: "R_RISCV_CALL",
	19: "R_RISCV_CALL_PLT",
	20: "R_RISCV_GOT_HI20",
	23: "R_RISCV_PCREL_HI20",
	24: "R_RISCV_PCREL_LO12_I",
	25: "R_RISCV_PCREL_LO12_S",
	26: "R_RISCV_HI20",
	27: "R_RISCV_LO12_I",
	28: "R_RISCV_LO12_S",
}

var relocNames = map[Machine]map[uint32]string{
	MachineX86_64:  relocNamesX86_64,
	Machine386:     relocNames386,
	MachineARM:     relocNamesARM,
	MachineAArch64: relocNamesAArch64,
	MachineRISCV:   relocNamesRISCV,
}

// relocTypeName returns the human label for a relocation type code, or ""
// when the machine is outside the supported set or the code is unknown.
func relocTypeName(m Machine, code uint32) string {
	if table, ok := relocNames[m]; ok {
		return table[code]
	}
	return ""
}
