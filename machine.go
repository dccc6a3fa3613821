package main

import (
	"fmt"
	"strings"
)

// Machine architecture constants
type Machine int

const (
	MachineX86_64 Machine = iota
	MachineARM64
)

// MachineToString converts machine constant to string representation
func (m Machine) String() string {
	switch m {
	case MachineX86_64:
		return "x86_64"
	case MachineARM64:
		return "aarch64"
	default:
		return "unknown"
	}
}

// StringToMachine converts string representation to machine constant.
// Only the two fixture architectures are accepted; everything else is an
// error rather than a fallback, so an unsupported target can never produce
// a binary with approximated encodings.
func StringToMachine(machine string) (Machine, error) {
	switch strings.ToLower(machine) {
	case "x86_64", "amd64":
		return MachineX86_64, nil
	case "aarch64", "arm64":
		return MachineARM64, nil
	default:
		return -1, fmt.Errorf("unsupported architecture: %s", machine)
	}
}

// getSyscallNumbers returns architecture-specific syscall numbers
func getSyscallNumbers(machine Machine) map[string]uint32 {
	switch machine {
	case MachineX86_64:
		return map[string]uint32{
			"SYS_EXIT": 60,
		}
	case MachineARM64:
		return map[string]uint32{
			"SYS_EXIT": 93,
		}
	default:
		return map[string]uint32{}
	}
}

// GetELFMachineType returns the ELF machine type constant for a given architecture
func GetELFMachineType(machine Machine) uint16 {
	switch machine {
	case MachineX86_64:
		return 0x3e // AMD x86-64
	case MachineARM64:
		return 0xb7 // ARM64
	default:
		return 0
	}
}
