package config

import (
	"strings"

	"github.com/arthur-debert/wixsync/pkg/errors"
)

// Config is the effective configuration of one run
type Config struct {
	Manifest  Manifest  `koanf:"manifest" toml:"manifest" yaml:"manifest" json:"manifest"`
	Install   Install   `koanf:"install" toml:"install" yaml:"install" json:"install"`
	Component Component `koanf:"component" toml:"component" yaml:"component" json:"component"`
	Scan      Scan      `koanf:"scan" toml:"scan" yaml:"scan" json:"scan"`

	// Files lists the configuration files that were merged, in load order
	Files []string `koanf:"-" toml:"-" yaml:"-" json:"-"`
}

// Manifest holds settings about the document being rewritten
type Manifest struct {
	// Anchor is the Id of the Directory the install path hangs from
	Anchor string `koanf:"anchor" toml:"anchor" yaml:"anchor" json:"anchor"`
	// Feature selects the Feature to rewrite; empty picks the first one
	Feature string `koanf:"feature" toml:"feature" yaml:"feature" json:"feature"`
	// Indent is the number of spaces per level when saving
	Indent int `koanf:"indent" toml:"indent" yaml:"indent" json:"indent"`
}

// Install holds settings for the install path argument
type Install struct {
	Separator string `koanf:"separator" toml:"separator" yaml:"separator" json:"separator"`
}

// Component holds settings applied to new components
type Component struct {
	DiskID string `koanf:"disk_id" toml:"disk_id" yaml:"disk_id" json:"disk_id"`
	Suffix string `koanf:"suffix" toml:"suffix" yaml:"suffix" json:"suffix"`
}

// Scan holds settings for the source tree walk
type Scan struct {
	Exclude []string `koanf:"exclude" toml:"exclude" yaml:"exclude" json:"exclude"`
}

// Default returns the built-in configuration. It matches embedded/defaults.toml.
func Default() *Config {
	return &Config{
		Manifest: Manifest{
			Anchor: "ProgramFilesFolder",
			Indent: 2,
		},
		Install: Install{
			Separator: `\`,
		},
		Component: Component{
			DiskID: "1",
			Suffix: "Component",
		},
		Scan: Scan{
			Exclude: []string{},
		},
	}
}

// Validate rejects values no run can work with
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Manifest.Anchor) == "":
		return invalid("manifest.anchor", "anchor id cannot be empty")
	case c.Manifest.Indent < 0:
		return invalid("manifest.indent", "indent cannot be negative")
	case c.Install.Separator == "":
		return invalid("install.separator", "separator cannot be empty")
	case strings.TrimSpace(c.Component.DiskID) == "":
		return invalid("component.disk_id", "disk id cannot be empty")
	case strings.TrimSpace(c.Component.Suffix) == "":
		return invalid("component.suffix", "component suffix cannot be empty")
	}
	return nil
}

func invalid(key, message string) error {
	return errors.New(errors.ErrConfigParse, message).WithDetail("key", key)
}
