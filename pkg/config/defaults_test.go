package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoaderMissingFile tests that an absent defaults file yields an
// empty map, not an error.
func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader("fastgen")
	l.Path = filepath.Join(t.TempDir(), "defaults.yaml")

	values, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Load() = %v, want empty map", values)
	}
}

// TestLoaderReadsDefaults tests loading saved answers.
func TestLoaderReadsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	content := "db: postgresql\nredis: true\nci: none\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write defaults file: %v", err)
	}

	l := NewLoader("fastgen")
	l.Path = path

	values, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if values["db"] != "postgresql" {
		t.Errorf("values[db] = %v, want postgresql", values["db"])
	}
	if values["redis"] != true {
		t.Errorf("values[redis] = %v, want true", values["redis"])
	}
	if values["ci"] != "none" {
		t.Errorf("values[ci] = %v, want none", values["ci"])
	}
}

// TestLoaderInvalidYAML tests the malformed-file diagnostic.
func TestLoaderInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	if err := os.WriteFile(path, []byte("db: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write defaults file: %v", err)
	}

	l := NewLoader("fastgen")
	l.Path = path

	if _, err := l.Load(); err == nil {
		t.Error("Load() did not fail on malformed yaml")
	}
}

// TestNewLoaderDefaultPath tests the XDG-compliant default location.
func TestNewLoaderDefaultPath(t *testing.T) {
	l := NewLoader("fastgen")
	if filepath.Base(l.Path) != "defaults.yaml" {
		t.Errorf("Path = %q, want a defaults.yaml location", l.Path)
	}
	if filepath.Base(filepath.Dir(l.Path)) != "fastgen" {
		t.Errorf("Path = %q, want an app-scoped directory", l.Path)
	}
}
