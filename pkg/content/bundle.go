package content

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-pkgz/fileutils"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadBundle reads strings and resources from yaml or toml file, format is guessed by extension
func LoadBundle(fname string) (Bundle, error) {
	if !fileutils.IsFile(fname) {
		return Bundle{}, fmt.Errorf("content file %s not found", fname)
	}
	data, err := os.ReadFile(fname) // nolint
	if err != nil {
		return Bundle{}, fmt.Errorf("can't read content file %s: %w", fname, err)
	}

	var res Bundle
	switch {
	case strings.HasSuffix(fname, ".yml") || strings.HasSuffix(fname, ".yaml"):
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true) // strict mode, fail on unknown fields
		if err = dec.Decode(&res); err != nil {
			return Bundle{}, fmt.Errorf("can't unmarshal yaml content file %s: %w", fname, err)
		}
	case strings.HasSuffix(fname, ".toml"):
		if err = toml.Unmarshal(data, &res); err != nil {
			return Bundle{}, fmt.Errorf("can't unmarshal toml content file %s: %w", fname, err)
		}
	default:
		return Bundle{}, fmt.Errorf("unknown content file format %s", fname)
	}
	return res, nil
}
