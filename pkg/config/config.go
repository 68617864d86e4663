// Package config loads provider configuration: served authorities, application package and content overrides
// with an optional sql content store.
package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-pkgz/fileutils"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/filecraft/contentprovider/pkg/content"
	"github.com/filecraft/contentprovider/pkg/contract"
)

// Config defines provider configuration
type Config struct {
	Authorities []string `yaml:"authorities" toml:"authorities"` // authorities served, both FileCraft ones if empty
	Package     string   `yaml:"package" toml:"package"`         // application package of resource paths
	Content     Content  `yaml:"content" toml:"content"`
}

// Content defines content overrides and the sql store
type Content struct {
	Conn      string            `yaml:"conn" toml:"conn"`           // connection string of sql store, optional
	Strings   map[string]string `yaml:"strings" toml:"strings"`     // strings overriding embedded defaults
	Resources map[string]string `yaml:"resources" toml:"resources"` // resource paths overriding defaults
}

// Overrides defines values set from cli, applied on top of the file
type Overrides struct {
	Authorities []string
	Package     string
	Conn        string
}

// New loads config from the file and applies overrides. Missing file is not an error, defaults are used.
func New(fname string, overrides *Overrides) (*Config, error) {
	log.Printf("[DEBUG] request to load config %q", fname)
	res := &Config{}

	if fname != "" && fileutils.IsFile(fname) {
		data, err := os.ReadFile(fname) // nolint
		if err != nil {
			return nil, fmt.Errorf("can't read config %s: %w", fname, err)
		}
		if err = unmarshalConfigFile(fname, data, res); err != nil {
			return nil, fmt.Errorf("can't unmarshal config: %w", err)
		}
		log.Printf("[INFO] config loaded from %s", fname)
	} else {
		log.Printf("[DEBUG] no config file %q found, using defaults", fname)
	}

	if overrides != nil {
		if len(overrides.Authorities) > 0 {
			res.Authorities = overrides.Authorities
		}
		if overrides.Package != "" {
			res.Package = overrides.Package
		}
		if overrides.Conn != "" {
			res.Content.Conn = overrides.Conn
		}
	}

	if len(res.Authorities) == 0 {
		res.Authorities = []string{contract.AuthorityA, contract.AuthorityB}
	}
	if res.Package == "" {
		res.Package = content.DefaultPackage
	}

	if err := res.checkConfig(); err != nil {
		return nil, fmt.Errorf("config %s is invalid: %w", fname, err)
	}
	log.Printf("[DEBUG] config: authorities %v, package %s, sql store %v", res.Authorities, res.Package, res.Content.Conn != "")
	return res, nil
}

// Bundle returns content overrides of the config
func (c *Config) Bundle() content.Bundle {
	return content.Bundle{Strings: c.Content.Strings, Resources: c.Content.Resources}
}

// unmarshalConfigFile guesses format by extension, files without extension are yaml
func unmarshalConfigFile(fname string, data []byte, res *Config) error {
	switch {
	case strings.HasSuffix(fname, ".yml") || strings.HasSuffix(fname, ".yaml") || !strings.Contains(fname, "."):
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true) // strict mode, fail on unknown fields
		if err := dec.Decode(res); err != nil {
			return fmt.Errorf("can't unmarshal yaml config %s: %w", fname, err)
		}
	case strings.HasSuffix(fname, ".toml"):
		if err := toml.Unmarshal(data, res); err != nil {
			return fmt.Errorf("can't unmarshal toml config %s: %w", fname, err)
		}
	default:
		return fmt.Errorf("unknown config format %s", fname)
	}
	return nil
}

// checkConfig validates the config:
// - authorities are not empty, unique and have no path or spaces
// - package has no path or spaces
// - override keys are not empty
func (c *Config) checkConfig() error {
	errs := new(multierror.Error)

	seen := make(map[string]bool, len(c.Authorities))
	for _, a := range c.Authorities {
		if a == "" {
			errs = multierror.Append(errs, fmt.Errorf("empty authority"))
			continue
		}
		if strings.ContainsAny(a, "/ \t") {
			errs = multierror.Append(errs, fmt.Errorf("invalid authority %q", a))
		}
		if seen[a] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate authority %q", a))
		}
		seen[a] = true
	}

	if strings.ContainsAny(c.Package, "/ \t") {
		errs = multierror.Append(errs, fmt.Errorf("invalid package %q", c.Package))
	}

	for k := range c.Content.Strings {
		if k == "" {
			errs = multierror.Append(errs, fmt.Errorf("string override with empty key"))
		}
	}
	for k := range c.Content.Resources {
		if k == "" {
			errs = multierror.Append(errs, fmt.Errorf("resource override with empty key"))
		}
	}

	return errs.ErrorOrNil()
}
