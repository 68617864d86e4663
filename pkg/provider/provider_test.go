package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecraft/contentprovider/pkg/catalog"
	"github.com/filecraft/contentprovider/pkg/content"
	"github.com/filecraft/contentprovider/pkg/contract"
	"github.com/filecraft/contentprovider/pkg/cursor"
	"github.com/filecraft/contentprovider/pkg/router"
)

func newProvider(t *testing.T, authorities ...string) *Provider {
	t.Helper()
	res, err := content.Defaults("", content.Bundle{})
	require.NoError(t, err)
	return New(res, authorities...)
}

func TestProvider_Query(t *testing.T) {
	p := newProvider(t)

	for _, authority := range []string{contract.AuthorityA, contract.AuthorityB} {
		c, err := p.Query("content://"+authority+"/list", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Count())
		name, err := c.String(0, contract.ColumnListName)
		require.NoError(t, err)
		assert.Equal(t, "ContentProvider Tutorial", name)
	}

	c, err := p.Query("content://"+contract.AuthorityA+"/grid/1/3", []string{contract.ColumnText}, nil)
	require.NoError(t, err)
	assert.Equal(t, contract.GridItem, c.Table())
	assert.Equal(t, []string{contract.ColumnText}, c.Columns())
	txt, err := c.String(0, contract.ColumnText)
	require.NoError(t, err)
	assert.Equal(t, "Google Play", txt)

	c, err = p.Query("content://"+contract.AuthorityA+"/quiz_questions", nil, []string{catalog.QuizJapaneseVocab})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count())
}

func TestProvider_QueryErrors(t *testing.T) {
	p := newProvider(t)

	tbl := []struct {
		uri  string
		args []string
		err  error
	}{
		{uri: "content://com.example.other/list", err: router.ErrUnknownAuthority},
		{uri: "content:///list", err: router.ErrUnknownAuthority},
		{uri: "content://" + contract.AuthorityA + "/nope", err: router.ErrUnmatchedRoute},
		{uri: "content://" + contract.AuthorityA + "/grid/x", err: router.ErrUnmatchedRoute},
		{uri: "content://" + contract.AuthorityA + "/grid/17", err: cursor.ErrInvalidArgument},
		{uri: "content://" + contract.AuthorityA + "/quiz", err: cursor.ErrInvalidArgument},
		{uri: "content://" + contract.AuthorityA + "/quiz_answers", args: []string{"NOT_A_WORD"}, err: cursor.ErrInvalidArgument},
		{uri: "content://" + contract.AuthorityA + "/list/9", err: cursor.ErrOutOfRange},
	}
	for _, tt := range tbl {
		t.Run(tt.uri, func(t *testing.T) {
			_, err := p.Query(tt.uri, nil, tt.args)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := p.Query("content://"+contract.AuthorityA+"/list", []string{"is_correct_answer"}, nil)
	require.ErrorIs(t, err, cursor.ErrUnknownColumn)
	assert.Contains(t, err.Error(), "content://"+contract.AuthorityA+"/list")
}

func TestProvider_SingleAuthority(t *testing.T) {
	p := newProvider(t, "com.example.custom")
	_, err := p.Query("content://com.example.custom/list", nil, nil)
	require.NoError(t, err)
	_, err = p.Query("content://"+contract.AuthorityA+"/list", nil, nil)
	assert.ErrorIs(t, err, router.ErrUnknownAuthority)

	uri, err := p.URI(contract.View, 2)
	require.NoError(t, err)
	assert.Equal(t, "content://com.example.custom/view/2", uri)
}

func TestProvider_Type(t *testing.T) {
	p := newProvider(t)

	tbl := []struct {
		path string
		mime string
	}{
		{"list", "vnd.android.cursor.dir/vnd.com.filecraft.list"},
		{"list/0", "vnd.android.cursor.item/vnd.com.filecraft.list"},
		{"grid/1", "vnd.android.cursor.dir/vnd.com.filecraft.grid"},
		{"gallery/1/1", "vnd.android.cursor.item/vnd.com.filecraft.gallery"},
		{"view/0", "vnd.android.cursor.dir/vnd.com.filecraft.view"},
		{"quiz_answers/3", "vnd.android.cursor.item/vnd.com.filecraft.quiz.answers"},
	}
	for _, tt := range tbl {
		t.Run(tt.path, func(t *testing.T) {
			mime, err := p.Type("content://" + contract.AuthorityB + "/" + tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.mime, mime)
		})
	}

	_, err := p.Type("content://" + contract.AuthorityB + "/unknown")
	assert.ErrorIs(t, err, router.ErrUnmatchedRoute)
}

func TestProvider_ActionURI(t *testing.T) {
	p := newProvider(t)

	c, err := p.Query("content://"+contract.AuthorityA+"/grid/1", nil, nil)
	require.NoError(t, err)

	// walk from grid row to its child the way a client does
	at, err := c.Int(8, contract.ColumnActionType)
	require.NoError(t, err)
	aid, err := c.String(8, contract.ColumnActionID)
	require.NoError(t, err)
	uri, actionID, err := p.ActionURI(catalog.Action{Type: contract.ActionType(at), Key: aid})
	require.NoError(t, err)
	assert.Equal(t, "content://"+contract.AuthorityA+"/gallery/2", uri)
	assert.Empty(t, actionID)

	child, err := p.Query(uri, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, child.Count(), "png gallery")

	uri, actionID, err = p.ActionURI(catalog.Action{Type: contract.ActionQuiz, Key: catalog.QuizJapaneseVocab})
	require.NoError(t, err)
	assert.Equal(t, "content://"+contract.AuthorityA+"/quiz", uri)
	assert.Equal(t, catalog.QuizJapaneseVocab, actionID)
	quiz, err := p.Query(uri, nil, []string{actionID})
	require.NoError(t, err)
	title, err := quiz.String(0, contract.ColumnTitle)
	require.NoError(t, err)
	assert.Equal(t, "Japanese Vocabulary", title)

	_, _, err = p.ActionURI(catalog.Action{Type: contract.ActionView, Key: "NOPE"})
	assert.Error(t, err)
}
