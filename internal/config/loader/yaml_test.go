package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/twine.yaml", `
text:
  encoding: ascii
  charset: latin1
  maxCapacity: 64
logging:
  format: json
`)

	loader := NewYAMLLoaderWithFS(memfs, "/twine.yaml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, _ := GetByPath(config, "text.encoding"); v != "ascii" {
		t.Errorf("text.encoding = %v, want ascii", v)
	}
	if v, _ := GetByPath(config, "text.charset"); v != "latin1" {
		t.Errorf("text.charset = %v, want latin1", v)
	}
	if v, _ := GetByPath(config, "text.maxCapacity"); v != 64 {
		t.Errorf("text.maxCapacity = %v (%T), want 64", v, v)
	}
	if v, _ := GetByPath(config, "logging.format"); v != "json" {
		t.Errorf("logging.format = %v, want json", v)
	}
}

func TestYAMLLoader_LoadNonExistent(t *testing.T) {
	loader := NewYAMLLoaderWithFS(NewMemFS(), "/nonexistent.yaml")
	config, err := loader.Load()
	if err != nil || config != nil {
		t.Errorf("expected nil, nil for non-existent file, got %v, %v", config, err)
	}
}

func TestYAMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "text:\n  encoding: utf-8\n bad: [\n")

	loader := NewYAMLLoaderWithFS(memfs, "/bad.yaml")
	_, err := loader.Load()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T (%v)", err, err)
	}
	if perr.Path != "/bad.yaml" {
		t.Errorf("Path = %q, want /bad.yaml", perr.Path)
	}
	if perr.Line == 0 {
		t.Errorf("expected a line number in %q", perr.Message)
	}
}

func TestYAMLLoader_LoadFromReader(t *testing.T) {
	loader := NewYAMLLoader("")
	config, err := loader.LoadFromReader(strings.NewReader("growth: double\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["growth"] != "double" {
		t.Errorf("growth = %v, want double", config["growth"])
	}
}
