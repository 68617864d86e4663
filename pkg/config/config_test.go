package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecraft/contentprovider/pkg/content"
	"github.com/filecraft/contentprovider/pkg/contract"
)

func TestNew(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		c, err := New("testdata/config.yml", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{contract.AuthorityA}, c.Authorities)
		assert.Equal(t, "com.example.tutorial", c.Package)
		assert.Equal(t, "content.db", c.Content.Conn)
		assert.Equal(t, content.Bundle{
			Strings:   map[string]string{"contentprovider_tutorial_title": "Tutorial"},
			Resources: map[string]string{"raw/android_svg": "file:///sdcard/android.svg"},
		}, c.Bundle())
	})

	t.Run("toml", func(t *testing.T) {
		c, err := New("testdata/config.toml", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"com.example.one", "com.example.two"}, c.Authorities)
		assert.Equal(t, content.DefaultPackage, c.Package, "default package")
		assert.Equal(t, map[string]string{"contentprovider_examples_title": "Samples"}, c.Content.Strings)
		assert.Empty(t, c.Content.Conn)
	})

	t.Run("missing file", func(t *testing.T) {
		c, err := New("testdata/no-such-file.yml", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{contract.AuthorityA, contract.AuthorityB}, c.Authorities)
		assert.Equal(t, content.DefaultPackage, c.Package)
	})

	t.Run("no file name", func(t *testing.T) {
		c, err := New("", &Overrides{Conn: "postgres://localhost/content"})
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/content", c.Content.Conn)
	})

	t.Run("overrides", func(t *testing.T) {
		c, err := New("testdata/config.yml", &Overrides{Authorities: []string{"com.example.cli"},
			Package: "com.example.cli", Conn: "cli.db"})
		require.NoError(t, err)
		assert.Equal(t, []string{"com.example.cli"}, c.Authorities)
		assert.Equal(t, "com.example.cli", c.Package)
		assert.Equal(t, "cli.db", c.Content.Conn)
		assert.Equal(t, "Tutorial", c.Content.Strings["contentprovider_tutorial_title"], "file values kept")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := New("testdata/unknown-field.yml", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't unmarshal yaml config")
	})

	t.Run("unknown format", func(t *testing.T) {
		fname := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(fname, []byte("{}"), 0o600))
		_, err := New(fname, nil)
		assert.ErrorContains(t, err, "unknown config format")
	})
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("testdata/bad-authorities.yml", nil)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), "empty authority")
	assert.Contains(t, err.Error(), `duplicate authority "com.example.one"`)
	assert.Contains(t, err.Error(), `invalid authority "bad/authority"`)
	assert.Contains(t, err.Error(), `invalid package "bad package"`)

	_, err = New("", &Overrides{Authorities: []string{"a b"}})
	assert.ErrorContains(t, err, `invalid authority "a b"`)
}
