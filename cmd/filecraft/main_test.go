package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/filecraft/contentprovider/pkg/contract"
	"github.com/filecraft/contentprovider/pkg/router"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	_, err := p.ParseArgs(append([]string{"--config=testdata/no-such-config.yml"}, args...))
	require.NoError(t, err)
	buf := bytes.Buffer{}
	err = run(context.Background(), p, opts, &buf)
	return buf.String(), err
}

const listURI = "content://" + contract.AuthorityA + "/list"

func Test_runQuery(t *testing.T) {
	out, err := runArgs(t, "query", listURI)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header and two rows")
	assert.Contains(t, lines[0], "list_name")
	assert.Contains(t, lines[1], "ContentProvider Tutorial")
	assert.Contains(t, lines[2], "SAMPLES")

	out, err = runArgs(t, "query", "--column=text", "--column=_id", "content://"+contract.AuthorityB+"/gallery/4")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "<null>")

	out, err = runArgs(t, "query", "--arg=JAPANESE_BASICS", "content://"+contract.AuthorityA+"/quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "Japanese Basics")

	_, err = runArgs(t, "query", "content://com.example.unknown/list")
	assert.ErrorIs(t, err, router.ErrUnknownAuthority)

	out, err = runArgs(t, "--authority=com.example.custom", "query", "content://com.example.custom/view/4")
	require.NoError(t, err)
	assert.Contains(t, out, "https://github.com/")

	out, err = runArgs(t, "--package=com.example.app", "query", "--column=content_path", "content://"+contract.AuthorityA+"/list/1")
	require.NoError(t, err)
	assert.Contains(t, out, "android.resource://com.example.app/drawable/ic_launcher")
}

func Test_printCursorColoredHeader(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	out, err := runArgs(t, "query", "--column=_id", "--column=content_path", "--column=action_id",
		"content://"+contract.AuthorityA+"/grid/1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10, "header and nine grid items")
	assert.True(t, strings.HasPrefix(lines[0], "\x1b["), "header colored")

	header := regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(lines[0], "")
	starts := func(line string) []int {
		var res []int
		for i := range line {
			if line[i] != ' ' && (i == 0 || line[i-1] == ' ') {
				res = append(res, i)
			}
		}
		return res
	}
	for _, row := range lines[1:] {
		assert.Equal(t, starts(header), starts(row), "header aligned with %q", row)
	}
}

func Test_runType(t *testing.T) {
	out, err := runArgs(t, "type", "content://"+contract.AuthorityA+"/grid/1/2")
	require.NoError(t, err)
	assert.Equal(t, "vnd.android.cursor.item/vnd.com.filecraft.grid\n", out)

	_, err = runArgs(t, "type", "content://"+contract.AuthorityA+"/grids")
	assert.ErrorIs(t, err, router.ErrUnmatchedRoute)
}

func Test_runDump(t *testing.T) {
	out, err := runArgs(t, "dump", "--concurrent=3")
	require.NoError(t, err)

	var tables []dumpTable
	require.NoError(t, yaml.Unmarshal([]byte(out), &tables))
	require.Len(t, tables, 35)
	assert.Equal(t, listURI, tables[0].URI)
	assert.Equal(t, "list", tables[0].Table)
	require.Len(t, tables[0].Rows, 2)

	out, err = runArgs(t, "dump", "--root=content://"+contract.AuthorityA+"/quiz", "--action-id=JAPANESE_VOCAB_SAMPLE")
	require.NoError(t, err)
	tables = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &tables))
	assert.Len(t, tables, 5, "quiz, questions and 3 answer sets")
}

func Test_runContent(t *testing.T) {
	conn := filepath.Join(t.TempDir(), "content.db")

	_, err := runArgs(t, "--conn="+conn, "content", "set", "contentprovider_tutorial_title", "From DB")
	require.NoError(t, err)

	out, err := runArgs(t, "--conn="+conn, "content", "get", "contentprovider_tutorial_title")
	require.NoError(t, err)
	assert.Equal(t, "From DB\n", out)

	out, err = runArgs(t, "--conn="+conn, "query", listURI)
	require.NoError(t, err)
	assert.Contains(t, out, "From DB", "sql store wins over defaults")
	assert.Contains(t, out, "Examples", "defaults used for the rest")

	bundle := filepath.Join(t.TempDir(), "bundle.yml")
	require.NoError(t, os.WriteFile(bundle, []byte("resources:\n  raw/android_svg: file:///sdcard/a.svg\n"), 0o600))
	out, err = runArgs(t, "--conn="+conn, "content", "import", bundle)
	require.NoError(t, err)
	assert.Equal(t, "imported 1 values\n", out)

	out, err = runArgs(t, "--conn="+conn, "content", "list", "--kind=resource")
	require.NoError(t, err)
	assert.Equal(t, "raw/android_svg\n", out)

	_, err = runArgs(t, "--conn="+conn, "content", "del", "contentprovider_tutorial_title")
	require.NoError(t, err)
	_, err = runArgs(t, "--conn="+conn, "content", "get", "contentprovider_tutorial_title")
	assert.Error(t, err)

	_, err = runArgs(t, "--conn="+conn, "content", "set", "empty", "")
	assert.ErrorContains(t, err, "can't set empty value")

	_, err = runArgs(t, "content", "list")
	assert.ErrorContains(t, err, "content store connection is not set")
}

func Test_formatErrorString(t *testing.T) {
	in := "can't read: 2 errors occurred:\n\t* first\n\t* second\n\n"
	assert.Equal(t, "can't read: 2 errors occurred:\n   * first\n   * second", formatErrorString(in))
	assert.Equal(t, "single error", formatErrorString("single error"))
}
