// Package content provides resolvers turning content keys into resource paths and localized strings.
// Resolvers are called by the cursor only when a row is materialized.
package content

import (
	_ "embed" // embedded default strings
	"errors"
	"fmt"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . Resolver

// Resolver maps content keys to resource paths and strings
type Resolver interface {
	Path(key string) (string, error)
	String(key string) (string, error)
}

// ErrNotFound returned when resolver has no value for the key
var ErrNotFound = errors.New("content not found")

// DefaultPackage is the application package used to build resource paths
const DefaultPackage = "com.filecraft.helloworld"

// ResourcePath returns the default resource path for the key in the package.
func ResourcePath(pkg, key string) string {
	return "android.resource://" + pkg + "/" + strings.TrimPrefix(key, "/")
}

//go:embed defaults.yml
var defaultsData []byte

// Bundle is a set of strings and resource paths, the format of defaults and import files
type Bundle struct {
	Strings   map[string]string `yaml:"strings" toml:"strings"`
	Resources map[string]string `yaml:"resources" toml:"resources"`
}

// Memory is a resolver keeping strings and resource overrides in memory.
// Resources without override resolve to android.resource path of the package.
type Memory struct {
	pkg       string
	strings   map[string]string
	resources map[string]string
}

// NewMemory makes a memory resolver for the package with the given bundle
func NewMemory(pkg string, b Bundle) *Memory {
	if pkg == "" {
		pkg = DefaultPackage
	}
	res := &Memory{pkg: pkg, strings: map[string]string{}, resources: map[string]string{}}
	for k, v := range b.Strings {
		res.strings[k] = v
	}
	for k, v := range b.Resources {
		res.resources[k] = v
	}
	return res
}

// Defaults makes a memory resolver with the embedded default strings, overridden by the given bundle
func Defaults(pkg string, overrides Bundle) (*Memory, error) {
	var b Bundle
	if err := yaml.Unmarshal(defaultsData, &b); err != nil {
		return nil, fmt.Errorf("can't unmarshal default strings: %w", err)
	}
	res := NewMemory(pkg, b)
	for k, v := range overrides.Strings {
		res.strings[k] = v
	}
	for k, v := range overrides.Resources {
		res.resources[k] = v
	}
	log.Printf("[DEBUG] content defaults loaded, strings: %d, resources: %d", len(res.strings), len(res.resources))
	return res, nil
}

// Path returns overridden resource path or the default android.resource path
func (m *Memory) Path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty resource key: %w", ErrNotFound)
	}
	if v, ok := m.resources[key]; ok {
		return v, nil
	}
	return ResourcePath(m.pkg, key), nil
}

// String returns string for the key
func (m *Memory) String(key string) (string, error) {
	if v, ok := m.strings[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("string %q: %w", key, ErrNotFound)
}

// Chain is a resolver trying each resolver in order, the first one having the key wins
type Chain []Resolver

// Path returns path from the first resolver knowing the key
func (c Chain) Path(key string) (string, error) {
	return c.lookup(key, func(r Resolver, k string) (string, error) { return r.Path(k) })
}

// String returns string from the first resolver knowing the key
func (c Chain) String(key string) (string, error) {
	return c.lookup(key, func(r Resolver, k string) (string, error) { return r.String(k) })
}

func (c Chain) lookup(key string, fn func(r Resolver, k string) (string, error)) (string, error) {
	for _, r := range c {
		v, err := fn(r, key)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
}
