package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Self-check: build fixtures for the native architecture, run each one as a
// subprocess and compare the OS-reported exit status with the requested one.
// This is the same observation the external test harness makes, so a passing
// check means the encodings are right end to end, kernel truncation included.

// selfCheckStatuses covers the plain range, the 255 boundary and the two
// truncation cases (256 -> 0, 300 -> 44).
var selfCheckStatuses = []int{0, 1, 7, 42, 255, 256, 300}

// NativeMachine maps the running GOARCH onto a fixture architecture.
func NativeMachine() (Machine, error) {
	if runtime.GOOS != "linux" {
		return -1, fmt.Errorf("fixtures only run on Linux, not %s", runtime.GOOS)
	}
	return StringToMachine(runtime.GOARCH)
}

// RunFixture executes a fixture binary and returns the exit status the OS
// reports for it.
func RunFixture(path string) (int, error) {
	cmd := exec.Command(path)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("could not run fixture %s: %v", path, err)
}

// SelfCheck builds and runs the native fixtures and reports any status
// mismatch. It returns an error for the first failing status.
func SelfCheck() error {
	machine, err := NativeMachine()
	if err != nil {
		return err
	}
	tmpDir, err := os.MkdirTemp("", "exitfix")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	for _, status := range selfCheckStatuses {
		path := filepath.Join(tmpDir, fmt.Sprintf("exit%d", status))
		if err := WriteFixture(machine.String(), status, path); err != nil {
			return err
		}
		got, err := RunFixture(path)
		if err != nil {
			return err
		}
		want := status & 0xff // the kernel keeps the low 8 bits
		if got != want {
			return fmt.Errorf("fixture exit%d: observed status %d, want %d", status, got, want)
		}
		if verboseMode {
			fmt.Fprintf(os.Stderr, "-> exit(%d) observed as %d\n", status, got)
		}
	}
	return nil
}
