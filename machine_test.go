package main

import "testing"

func TestStringToMachine(t *testing.T) {
	cases := []struct {
		input string
		want  Machine
	}{
		{"x86_64", MachineX86_64},
		{"amd64", MachineX86_64},
		{"X86_64", MachineX86_64},
		{"aarch64", MachineARM64},
		{"arm64", MachineARM64},
	}
	for _, c := range cases {
		got, err := StringToMachine(c.input)
		if err != nil {
			t.Fatalf("StringToMachine(%q) failed: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("StringToMachine(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestStringToMachineUnsupported(t *testing.T) {
	// The architecture set is closed: anything else must be rejected so no
	// fixture is ever built with approximated encodings.
	for _, input := range []string{"riscv64", "i386", "armv7", "wasm", ""} {
		if _, err := StringToMachine(input); err == nil {
			t.Errorf("StringToMachine(%q) succeeded, want error", input)
		}
	}
}

func TestSyscallNumbers(t *testing.T) {
	if n := getSyscallNumbers(MachineX86_64)["SYS_EXIT"]; n != 60 {
		t.Errorf("x86_64 SYS_EXIT = %d, want 60", n)
	}
	if n := getSyscallNumbers(MachineARM64)["SYS_EXIT"]; n != 93 {
		t.Errorf("aarch64 SYS_EXIT = %d, want 93", n)
	}
}

func TestELFMachineType(t *testing.T) {
	if m := GetELFMachineType(MachineX86_64); m != 0x3e {
		t.Errorf("x86_64 machine type = 0x%x, want 0x3e", m)
	}
	if m := GetELFMachineType(MachineARM64); m != 0xb7 {
		t.Errorf("aarch64 machine type = 0x%x, want 0xb7", m)
	}
}
