package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/shadow/pkg/host"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Shadow != host.DefaultAttributes() {
		t.Errorf("expected default attributes, got %+v", cfg.Shadow)
	}
	if cfg.Canvas.Width != DefaultWidth || cfg.Canvas.Height != DefaultHeight {
		t.Errorf("expected default canvas, got %+v", cfg.Canvas)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `
shadow:
  radius: 8
  show_top: false
  top_end_radius: 0
canvas:
  width: 320
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := host.DefaultAttributes()
	want.Radius = 8
	want.ShowTop = false
	want.TopEndRadius = 0
	if cfg.Shadow != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Shadow)
	}
	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != DefaultHeight || cfg.Canvas.Fill != DefaultFill {
		t.Errorf("unexpected canvas %+v", cfg.Canvas)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "shadow: [unterminated")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoad_WrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "shadow:\n  radius: wide\n")
	if _, err := Load(path); err == nil {
		t.Error("expected a type error")
	}
}

func TestResolve_ExplicitPathMustExist(t *testing.T) {
	dir := t.TempDir()
	if _, err := Resolve(dir, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config")
	}
}

func TestResolve_ModuleOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module github.com/acme/cards/v2\n\ngo 1.25\n")

	r, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.ModulePath != "github.com/acme/cards/v2" {
		t.Errorf("unexpected module path %q", r.ModulePath)
	}
	if r.Output != "cards-shadow.png" {
		t.Errorf("expected cards-shadow.png, got %q", r.Output)
	}
}

func TestResolve_OutputFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "canvas:\n  output: ring.png\n")

	r, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Output != "ring.png" {
		t.Errorf("expected ring.png, got %q", r.Output)
	}
	if r.ModulePath != "" {
		t.Errorf("expected no module path, got %q", r.ModulePath)
	}
}

func TestResolve_BadGoMod(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "go 1.25\n")
	if _, err := Resolve(dir, ""); err == nil {
		t.Error("expected an error for a go.mod without a module line")
	}
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		modulePath string
		dir        string
		want       string
	}{
		{"github.com/acme/cards", "/src/x", "cards-shadow.png"},
		{"github.com/acme/cards/v3", "/src/x", "cards-shadow.png"},
		{"example", "/src/x", "example-shadow.png"},
		{"", "/src/widgets", "widgets-shadow.png"},
		{"", "/", "shadow.png"},
	}
	for _, tt := range tests {
		if got := DefaultOutput(tt.modulePath, tt.dir); got != tt.want {
			t.Errorf("DefaultOutput(%q, %q) = %q, want %q", tt.modulePath, tt.dir, got, tt.want)
		}
	}
}
