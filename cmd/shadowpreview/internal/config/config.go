// Package config loads the optional shadow.yaml used by shadowpreview.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/shadow/pkg/host"
)

// FileName is the configuration file looked up in the project root.
const FileName = "shadow.yaml"

// Default canvas settings used when neither the file nor flags set them.
const (
	DefaultWidth  = 200
	DefaultHeight = 100
	DefaultFill   = "#FFFFFFFF"
)

// Config represents shadow.yaml.
type Config struct {
	Shadow host.Attributes `yaml:"shadow"`
	Canvas CanvasConfig    `yaml:"canvas"`
}

// CanvasConfig describes what the shadow is drawn around.
type CanvasConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Fill       string `yaml:"fill,omitempty"`
	Background string `yaml:"background,omitempty"`
	Output     string `yaml:"output,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Config     *Config
	Output     string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Shadow: host.DefaultAttributes(),
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Fill:   DefaultFill,
		},
	}
}

// Load reads the configuration at path on top of Default. Keys missing
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadOptional reads shadow.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Resolve loads the configuration and fills in derived defaults. An empty
// path means shadow.yaml in dir, which may be absent; an explicit path must
// exist. dir does not need to be a Go module.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = LoadOptional(dir)
	} else {
		cfg, err = Load(path)
	}
	if err != nil {
		return nil, err
	}

	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	output := strings.TrimSpace(cfg.Canvas.Output)
	if output == "" {
		output = DefaultOutput(modPath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modPath,
		Config:     cfg,
		Output:     output,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// DefaultOutput names the PNG after the last element of the module path,
// ignoring a major version suffix, or after dir outside a module.
func DefaultOutput(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "shadow.png"
	}
	return base + "-shadow.png"
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
