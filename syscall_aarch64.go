package main

import "fmt"

// ARM64 exit sequence. ARM64 uses fixed 32-bit little-endian instructions;
// the Linux syscall ABI wants the number in w8 and the first argument in w0
// before the svc instruction.

// ARM64 register numbers for the 32-bit views used by the exit sequence.
var arm64WRegs = map[string]uint32{
	"w0": 0, "w1": 1, "w2": 2, "w8": 8,
}

// MovImmediateARM64 emits MOVZ Wd, #imm16 (LSL #0).
// opcode: 0x52800000 | imm16 << 5 | Rd
func (fb *FixtureBuilder) MovImmediateARM64(w Writer, dest string, imm uint16) error {
	rd, ok := arm64WRegs[dest]
	if !ok {
		return fmt.Errorf("unsupported aarch64 register: %s", dest)
	}
	instr := uint32(0x52800000) | uint32(imm)<<5 | rd
	w.Write4(instr)
	return nil
}

// SupervisorCallARM64 emits SVC #0 (0xd4000001).
func (fb *FixtureBuilder) SupervisorCallARM64(w Writer) {
	w.Write4(0xd4000001)
}

func (fb *FixtureBuilder) SysExitARM64(status int) error {
	w := fb.TextWriter()
	if err := fb.MovImmediateARM64(w, "w8", uint16(fb.Lookup("SYS_EXIT"))); err != nil {
		return err
	}
	// MOVZ carries a 16-bit immediate; wider statuses lose their high bits
	// here, which is harmless because the kernel only reads the low 8 anyway.
	if err := fb.MovImmediateARM64(w, "w0", uint16(status)); err != nil {
		return err
	}
	fb.SupervisorCallARM64(w)
	return nil
}
