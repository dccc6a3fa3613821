package main

import (
	"bytes"
	"fmt"
	"os"
)

// FixtureBuilder assembles a single exit fixture: the exit syscall sequence
// for one machine, wrapped in a minimal static ELF executable.
type FixtureBuilder struct {
	machine   Machine
	elf, text bytes.Buffer
}

func New(machineStr string) (*FixtureBuilder, error) {
	machine, err := StringToMachine(machineStr)
	if err != nil {
		return nil, err
	}
	return &FixtureBuilder{machine: machine}, nil
}

func (fb *FixtureBuilder) ELFWriter() Writer {
	return &BufferWrapper{&fb.elf}
}

func (fb *FixtureBuilder) TextWriter() Writer {
	return &BufferWrapper{&fb.text}
}

// Lookup returns an architecture-specific syscall number by name.
func (fb *FixtureBuilder) Lookup(what string) uint32 {
	if v, ok := getSyscallNumbers(fb.machine)[what]; ok {
		return v
	}
	return 0
}

// SysExit emits the exit system call sequence for the selected architecture
// into the text section. The status is placed in the architecture's first
// argument register exactly as given; truncation to the low 8 bits is the
// kernel's job, not ours.
func (fb *FixtureBuilder) SysExit(status int) error {
	switch fb.machine {
	case MachineX86_64:
		return fb.SysExitX86_64(status)
	case MachineARM64:
		return fb.SysExitARM64(status)
	default:
		return fmt.Errorf("no exit sequence for machine %d", fb.machine)
	}
}

// Bytes returns the complete executable image: ELF header, program header,
// then the text section.
func (fb *FixtureBuilder) Bytes() []byte {
	var result bytes.Buffer
	result.Write(fb.elf.Bytes())
	result.Write(fb.text.Bytes())
	return result.Bytes()
}

// BuildFixture produces the complete fixture binary for the given
// architecture and exit status.
func BuildFixture(machineStr string, status int) ([]byte, error) {
	fb, err := New(machineStr)
	if err != nil {
		return nil, err
	}
	if err := fb.SysExit(status); err != nil {
		return nil, err
	}
	if err := fb.WriteELF(); err != nil {
		return nil, err
	}
	return fb.Bytes(), nil
}

// WriteFixture builds a fixture and writes it as an executable file.
func WriteFixture(machineStr string, status int, outputPath string) error {
	image, err := BuildFixture(machineStr, status)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, image, 0o755); err != nil {
		return fmt.Errorf("failed to write executable: %v", err)
	}
	if verboseMode {
		fmt.Fprintf(os.Stderr, "-> Wrote %s ELF fixture: %s (%d bytes, exit status %d)\n",
			machineStr, outputPath, len(image), status)
	}
	return nil
}
