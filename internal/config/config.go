// Package config loads tada's settings from an optional YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the full set of settings. Zero fields in a file keep their
// defaults.
type Config struct {
	Store StoreConfig `yaml:"store" toml:"store"`
	UI    UIConfig    `yaml:"ui" toml:"ui"`
	Log   LogConfig   `yaml:"log" toml:"log"`
}

type StoreConfig struct {
	Backend string `yaml:"backend" toml:"backend" validate:"oneof=json sqlite"`
	Path    string `yaml:"path" toml:"path" validate:"required"`
	Key     string `yaml:"key" toml:"key" validate:"required"`
}

type UIConfig struct {
	// Theme is the theme the UI opens with. It is never written back.
	Theme     string `yaml:"theme" toml:"theme" validate:"oneof=light dark"`
	AltScreen bool   `yaml:"alt_screen" toml:"alt_screen"`
}

type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File          string `yaml:"file" toml:"file"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Store: StoreConfig{Backend: BackendJSON, Path: "todos.json", Key: "todos"},
		UI:    UIConfig{Theme: "light", AltScreen: true},
		Log:   LogConfig{Level: "info", HumanReadable: true},
	}
}

// Load reads path on top of Default. An empty path yields the defaults.
// The result is not validated; call Validate after applying overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return cfg, fmt.Errorf("unsupported config file extension %q", ext)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize gives a sqlite backend left on the JSON default path its own
// file name.
func (c *Config) Normalize() {
	if c.Store.Backend == BackendSQLite && c.Store.Path == Default().Store.Path {
		c.Store.Path = "todos.db"
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks every field and reports the first few problems in one
// error.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
