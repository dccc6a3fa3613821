package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
version: 1
output_dir: out
fixtures:
  - name: exit0
    arch: x86_64
    status: 0
  - name: exit42-arm
    arch: aarch64
    status: 42
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.OutputDir() != "out" {
		t.Errorf("OutputDir() = %q, want %q", m.OutputDir(), "out")
	}
	if len(m.Fixtures) != 2 {
		t.Fatalf("parsed %d fixtures, want 2", len(m.Fixtures))
	}
	if m.Fixtures[1].Arch != "aarch64" || m.Fixtures[1].Status != 42 {
		t.Errorf("fixture[1] = %+v, want aarch64/42", m.Fixtures[1])
	}
}

func TestLoadManifestDefaultOutputDir(t *testing.T) {
	path := writeManifest(t, `
fixtures:
  - name: exit0
    arch: amd64
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.OutputDir() != DefaultOutputDir {
		t.Errorf("OutputDir() = %q, want default %q", m.OutputDir(), DefaultOutputDir)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty fixture list", "version: 1\n"},
		{"missing name", "fixtures:\n  - arch: x86_64\n"},
		{"unknown arch", "fixtures:\n  - name: a\n    arch: riscv64\n"},
		{"duplicate name", "fixtures:\n  - name: a\n    arch: x86_64\n  - name: a\n    arch: arm64\n"},
		{"not yaml", ":\t::: nope"},
	}
	for _, c := range cases {
		path := writeManifest(t, c.content)
		if _, err := LoadManifest(path); err == nil {
			t.Errorf("%s: LoadManifest succeeded, want error", c.name)
		}
	}
}

func TestBuildManifest(t *testing.T) {
	path := writeManifest(t, `
output_dir: built
fixtures:
  - name: exit0
    arch: x86_64
    status: 0
  - name: exit7
    arch: aarch64
    status: 7
`)
	if err := BuildManifest(path); err != nil {
		t.Fatalf("BuildManifest failed: %v", err)
	}
	outDir := filepath.Join(filepath.Dir(path), "built")
	for _, name := range []string{"exit0", "exit7"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("fixture %s not written: %v", name, err)
		}
		if info.Mode()&0o111 == 0 {
			t.Errorf("fixture %s is not executable (mode %v)", name, info.Mode())
		}
	}
}
