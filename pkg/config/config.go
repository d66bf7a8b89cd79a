// Package config loads optional render defaults from a YAML or TOML file
// and applies them to a table. File values are a baseline; CLI flags are
// expected to override them by mutating the table afterwards.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tabloid/pkg/align"
	"github.com/arthur-debert/tabloid/pkg/color"
	"github.com/arthur-debert/tabloid/pkg/errors"
	"github.com/arthur-debert/tabloid/pkg/logging"
	"github.com/arthur-debert/tabloid/pkg/table"
)

// Config mirrors the table's presentation settings in file form. Absent
// fields leave the table's defaults untouched.
type Config struct {
	// Styles maps presentation roles (title, description, header, value)
	// to color names.
	Styles    map[string]string `yaml:"styles" toml:"styles"`
	Colspan   *int              `yaml:"colspan" toml:"colspan"`
	Layout    string            `yaml:"layout" toml:"layout"`
	Alignment string            `yaml:"alignment" toml:"alignment"`
	NoColor   bool              `yaml:"no_color" toml:"no_color"`
}

// Load reads a config file, choosing the decoder by extension
// (.yaml/.yml or .toml).
func Load(path string) (*Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(payload, cfg)
	case ".toml":
		err = toml.Unmarshal(payload, cfg)
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}
	return cfg, nil
}

// Discover looks for tabloid/config.yaml (then .toml) in the XDG config
// directories. A missing file is not an error; both return values are nil.
func Discover() (*Config, error) {
	log := logging.GetLogger("config")
	for _, name := range []string{"tabloid/config.yaml", "tabloid/config.yml", "tabloid/config.toml"} {
		path, err := xdg.SearchConfigFile(name)
		if err != nil {
			continue
		}
		log.Debug().Str("path", path).Msg("config file found")
		return Load(path)
	}
	return nil, nil
}

// Apply maps the config onto a table through its public setters. Unknown
// color names, roles, layouts, and alignments are configuration errors.
func (c *Config) Apply(t *table.Table) error {
	if c == nil {
		return nil
	}

	if len(c.Styles) > 0 {
		styles := t.Styles()
		for role, name := range c.Styles {
			col, ok := color.Lookup(name)
			if !ok {
				return errors.Newf(errors.ErrConfigParse, "unknown color %q for style role %q", name, role)
			}
			switch role {
			case "title":
				styles.Title = col
			case "description":
				styles.Description = col
			case "header":
				styles.Header = col
			case "value":
				styles.Value = col
			default:
				return errors.Newf(errors.ErrConfigParse, "unknown style role: %s", role)
			}
		}
		t.SetStyles(styles)
	}

	if c.Colspan != nil {
		t.SetColspan(*c.Colspan)
	}

	if c.Layout != "" {
		if err := t.SetLayout(table.Layout(c.Layout)); err != nil {
			return err
		}
	}

	if c.Alignment != "" {
		a := align.Alignment(c.Alignment)
		if !align.Valid(a) {
			return errors.Newf(errors.ErrConfigParse, "unknown alignment: %s", c.Alignment)
		}
		t.SetDefaultAlignment(a)
	}

	if c.NoColor {
		t.DisableColors()
	}
	return nil
}
