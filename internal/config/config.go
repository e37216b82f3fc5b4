// Package config loads the user's generation defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zprofile/internal/identity"
	"github.com/zarlcorp/zprofile/internal/locale"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside Dir.
const FileName = "config.yaml"

// Config holds the defaults applied before command-line flags.
type Config struct {
	Country   string `yaml:"country"`
	Gender    string `yaml:"gender"`
	Age       string `yaml:"age"`
	Avatar    string `yaml:"avatar"`
	ExportDir string `yaml:"export_dir,omitempty"`
}

// Default returns the built-in defaults: a French adult of either gender.
func Default() Config {
	return Config{
		Country: string(locale.FR),
		Gender:  string(locale.Unspecified),
		Age:     identity.AgeAdult.Name(),
		Avatar:  string(identity.AvatarDefault),
	}
}

// Dir returns the config directory for zprofile.
func Dir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d + "/zprofile"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zprofile"
	}
	return home + "/.config/zprofile"
}

// Load reads FileName from fsys. A missing file yields Default; fields
// absent from the file keep their default values.
func Load(fsys zfilesystem.ReadWriteFileFS) (Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(FileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.Request(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to FileName in fsys.
func Save(fsys zfilesystem.ReadWriteFileFS, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fsys.WriteFile(FileName, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Request parses the configured values into a generation request.
func (c Config) Request() (identity.Request, error) {
	country, err := locale.Parse(c.Country)
	if err != nil {
		return identity.Request{}, err
	}
	gender, err := locale.ParseGender(c.Gender)
	if err != nil {
		return identity.Request{}, err
	}
	age, err := identity.ParseAgeRange(c.Age)
	if err != nil {
		return identity.Request{}, err
	}
	avatar, err := identity.ParseAvatarStyle(c.Avatar)
	if err != nil {
		return identity.Request{}, err
	}

	return identity.Request{
		Country:     country,
		Gender:      gender,
		AgeRange:    age,
		AvatarStyle: avatar,
	}, nil
}

// FromRequest records req as the new defaults, keeping ExportDir.
func (c Config) FromRequest(req identity.Request) Config {
	c.Country = string(req.Country)
	c.Gender = string(req.Gender)
	c.Age = req.AgeRange.Name()
	c.Avatar = string(req.AvatarStyle)
	return c
}
