package main

import "fmt"

// x86_64 exit sequence, matching the register discipline of the Linux
// syscall ABI: number in rax, first argument in rdi, then the syscall
// instruction. The kernel clobbers rcx and r11; irrelevant here since
// control never comes back.

// MovImmediateX86_64 emits MOV r64, imm32 (REX.W + C7 /0). The immediate is
// sign-extended to 64 bits by the CPU, so negative statuses land in rdi
// unchanged.
func (fb *FixtureBuilder) MovImmediateX86_64(w Writer, dest string, val uint32) error {
	w.Write(0x48) // REX.W prefix for 64-bit operation
	w.Write(0xc7) // MOV r/m64, imm32 opcode

	switch dest {
	case "rax":
		w.Write(0xc0)
	case "rdi":
		w.Write(0xc7)
	default:
		return fmt.Errorf("unsupported x86_64 register: %s", dest)
	}
	w.Write4(val)
	return nil
}

// SyscallX86_64 emits the syscall instruction (0f 05).
func (fb *FixtureBuilder) SyscallX86_64(w Writer) {
	w.Write(0x0f)
	w.Write(0x05)
}

func (fb *FixtureBuilder) SysExitX86_64(status int) error {
	w := fb.TextWriter()
	if err := fb.MovImmediateX86_64(w, "rax", fb.Lookup("SYS_EXIT")); err != nil {
		return err
	}
	if err := fb.MovImmediateX86_64(w, "rdi", uint32(int32(status))); err != nil {
		return err
	}
	fb.SyscallX86_64(w)
	return nil
}
