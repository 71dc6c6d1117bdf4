package config

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file looked up in the config dir.
const FileName = "ceflab.yaml"

// EnvConfigDir overrides the directory searched for FileName.
const EnvConfigDir = "CEFLAB_CONFIG"

// Config represents the optional ceflab.yaml configuration.
type Config struct {
	App  AppConfig  `yaml:"app"`
	Page PageConfig `yaml:"page"`
	Log  LogConfig  `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// PageConfig contains defaults for generated pages and URIs.
type PageConfig struct {
	DefaultMIME string `yaml:"default_mime,omitempty"`
}

// LogConfig controls the error log.
type LogConfig struct {
	Verbosity int `yaml:"verbosity,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	DefaultMIME  string
	LogVerbosity int
}

// LoadOptional reads ceflab.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads ceflab.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath := readModulePath(dir)

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	defaultMIME := strings.TrimSpace(cfg.Page.DefaultMIME)
	if defaultMIME != "" {
		if _, _, err := mime.ParseMediaType(defaultMIME); err != nil {
			return nil, fmt.Errorf("page.default_mime %q is not a valid media type: %w", defaultMIME, err)
		}
	}

	if cfg.Log.Verbosity < 0 {
		return nil, fmt.Errorf("log.verbosity must not be negative (got %d)", cfg.Log.Verbosity)
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		DefaultMIME:  defaultMIME,
		LogVerbosity: cfg.Log.Verbosity,
	}, nil
}

// readModulePath returns the module path declared in dir/go.mod, or "" when
// there is none.
func readModulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "ceflab"
	}
	return base
}
