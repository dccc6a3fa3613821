package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// A manifest describes a whole fixture matrix at once, so a test harness can
// declare the binaries it wants instead of invoking the builder per fixture.

// DefaultOutputDir is used when the manifest does not name one.
const DefaultOutputDir = "fixtures"

// Manifest is the parsed fixture-matrix file.
type Manifest struct {
	Version   int       `yaml:"version"`
	RawOutput string    `yaml:"output_dir"` // relative paths resolve against the manifest location
	Fixtures  []Fixture `yaml:"fixtures"`
}

// Fixture is one requested binary: an architecture and the exit status its
// entry point reports.
type Fixture struct {
	Name   string `yaml:"name"`
	Arch   string `yaml:"arch"`
	Status int    `yaml:"status"`
}

// OutputDir returns the configured output directory or the default.
func (m *Manifest) OutputDir() string {
	if m.RawOutput != "" {
		return m.RawOutput
	}
	return DefaultOutputDir
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %v", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("could not parse manifest %s: %v", path, err)
	}
	if len(m.Fixtures) == 0 {
		return nil, fmt.Errorf("manifest %s lists no fixtures", path)
	}
	seen := make(map[string]bool)
	for i, f := range m.Fixtures {
		if f.Name == "" {
			return nil, fmt.Errorf("manifest %s: fixture %d has no name", path, i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("manifest %s: duplicate fixture name %q", path, f.Name)
		}
		seen[f.Name] = true
		if _, err := StringToMachine(f.Arch); err != nil {
			return nil, fmt.Errorf("manifest %s: fixture %q: %v", path, f.Name, err)
		}
	}
	return &m, nil
}

// BuildManifest builds every fixture a manifest lists into its output
// directory, creating the directory if needed.
func BuildManifest(manifestPath string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	outDir := m.OutputDir()
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(filepath.Dir(manifestPath), outDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory: %v", err)
	}
	for _, f := range m.Fixtures {
		outputPath := filepath.Join(outDir, f.Name)
		if err := WriteFixture(f.Arch, f.Status, outputPath); err != nil {
			return fmt.Errorf("fixture %q: %v", f.Name, err)
		}
	}
	return nil
}
