// Package cursor implements the virtual table reader, a positional read-only view over one table of the
// catalog. Row count is known at open time, rows are materialized on the first access to their position
// and cached for the life of the cursor. Quiz questions and answers are drawn once per cursor.
//
// A cursor is not safe for concurrent use. Readers of the same table from different goroutines must open
// cursors of their own, nothing is shared between cursors except the immutable catalog.
package cursor

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/go-pkgz/stringutils"

	"github.com/filecraft/contentprovider/pkg/catalog"
	"github.com/filecraft/contentprovider/pkg/content"
	"github.com/filecraft/contentprovider/pkg/contract"
)

// errors returned by cursor
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrOutOfRange      = errors.New("position out of range")
	ErrColumnType      = errors.New("column type mismatch")
)

// Params defines the table a cursor is opened for
type Params struct {
	Table      contract.TableID
	IDs        []int    // ids extracted from the path, parent ids first and item position last
	Projection []string // requested columns, all columns of the table if empty
	ActionID   string   // quiz key for quiz and quiz questions, vocabulary key for quiz answers
	URI        string   // originating uri, used in error messages only
}

// Option sets optional cursor parameters
type Option func(c *Cursor)

// WithIntn sets random source used to draw quiz questions and answers. fn(n) returns a number in [0, n).
func WithIntn(fn func(n int) int) Option {
	return func(c *Cursor) { c.intn = fn }
}

// Cursor reads rows of one table
type Cursor struct {
	table    contract.TableID
	ids      []int
	actionID string
	uri      string
	columns  []string

	cat  *catalog.Catalog
	res  content.Resolver
	intn func(n int) int

	count  int
	offset int // collection position of row 0, non-zero for item tables only

	grid    catalog.Grid
	gallery catalog.Gallery
	view    catalog.ViewLink
	quiz    catalog.Quiz
	set     catalog.VocabSet
	vocab   catalog.Vocab // correct answer of quiz answers

	drawn []catalog.Vocab // questions or answers, drawn on first use
	rows  map[int]Row
}

// Open makes a cursor for the table. It checks ids and action id, binds the parent collection and counts rows.
// Content keys are not resolved here, this happens when a row is visited.
func Open(cat *catalog.Catalog, res content.Resolver, p Params, opts ...Option) (*Cursor, error) {
	if !p.Table.Valid() {
		return nil, fmt.Errorf("table %s: %w", p.Table, ErrInvalidArgument)
	}
	if len(p.IDs) != p.Table.Arity() {
		return nil, fmt.Errorf("table %s needs %d ids, got %d: %w", p.Table, p.Table.Arity(), len(p.IDs), ErrInvalidArgument)
	}
	for _, id := range p.IDs {
		if id < 0 {
			return nil, fmt.Errorf("negative id %d for table %s: %w", id, p.Table, ErrInvalidArgument)
		}
	}

	c := &Cursor{
		table:    p.Table,
		ids:      p.IDs,
		actionID: p.ActionID,
		uri:      p.URI,
		cat:      cat,
		res:      res,
		intn:     rand.IntN,
		rows:     map[int]Row{},
	}
	for _, opt := range opts {
		opt(c)
	}

	size, err := c.bind()
	if err != nil {
		return nil, err
	}
	c.count = size
	if p.Table.IsItem() {
		pos := p.IDs[len(p.IDs)-1]
		if pos >= size {
			return nil, fmt.Errorf("table %s has %d rows, requested %d: %w", p.Table, size, pos, ErrOutOfRange)
		}
		c.offset, c.count = pos, 1
	}

	c.columns = TableColumns(p.Table)
	if len(p.Projection) > 0 {
		c.columns = stringutils.DeDup(p.Projection)
		for _, col := range c.columns {
			if _, err := c.ColumnType(col); err != nil {
				return nil, err
			}
		}
	}

	log.Printf("[DEBUG] cursor opened for %s, ids %v, action %q, rows %d", p.Table, p.IDs, p.ActionID, c.count)
	return c, nil
}

// bind looks up the parent of the table and returns the size of its collection
func (c *Cursor) bind() (int, error) {
	var ok bool
	switch c.table.Collection() {
	case contract.List:
		return len(c.cat.List), nil
	case contract.Grid:
		if c.grid, ok = c.cat.Grid(c.ids[0]); !ok {
			return 0, fmt.Errorf("unknown grid %d: %w", c.ids[0], ErrInvalidArgument)
		}
		return len(c.grid.Items), nil
	case contract.Gallery:
		if c.gallery, ok = c.cat.Gallery(c.ids[0]); !ok {
			return 0, fmt.Errorf("unknown gallery %d: %w", c.ids[0], ErrInvalidArgument)
		}
		return len(c.gallery.Items), nil
	case contract.View:
		if c.view, ok = c.cat.View(c.ids[0]); !ok {
			return 0, fmt.Errorf("unknown view %d: %w", c.ids[0], ErrInvalidArgument)
		}
		return 1, nil
	case contract.Quiz, contract.QuizQuestions:
		if c.actionID == "" {
			return 0, fmt.Errorf("table %s needs quiz key as action id: %w", c.table, ErrInvalidArgument)
		}
		if c.quiz, ok = c.cat.Quiz(c.actionID); !ok {
			return 0, fmt.Errorf("unknown quiz %q: %w", c.actionID, ErrInvalidArgument)
		}
		if c.table == contract.Quiz {
			return 1, nil
		}
		if c.set, ok = c.cat.VocabSet(c.quiz.AnswerSet); !ok {
			return 0, fmt.Errorf("quiz %q has unknown vocabulary set %q: %w", c.quiz.Key, c.quiz.AnswerSet, ErrInvalidArgument)
		}
		return c.quiz.Questions, nil
	case contract.QuizAnswers:
		if c.actionID == "" {
			return 0, fmt.Errorf("table %s needs vocabulary key as action id: %w", c.table, ErrInvalidArgument)
		}
		if c.vocab, c.set, ok = c.cat.Vocab(c.actionID); !ok {
			return 0, fmt.Errorf("unknown vocabulary item %q: %w", c.actionID, ErrInvalidArgument)
		}
		return c.set.Answers, nil
	}
	return 0, fmt.Errorf("table %s not supported: %w", c.table, ErrInvalidArgument)
}

// Table returns table of the cursor
func (c *Cursor) Table() contract.TableID { return c.table }

// Count returns number of rows
func (c *Cursor) Count() int { return c.count }

// Columns returns projected column names
func (c *Cursor) Columns() []string {
	res := make([]string, len(c.columns))
	copy(res, c.columns)
	return res
}

// ColumnType returns declared type of the column
func (c *Cursor) ColumnType(col string) (contract.ColumnType, error) {
	typ, ok := columnType(c.table, col)
	if !ok {
		return 0, fmt.Errorf("column %q not in table %s, uri %q: %w", col, c.table, c.uri, ErrUnknownColumn)
	}
	return typ, nil
}

// RowAt returns the row at position, materializing it on the first call
func (c *Cursor) RowAt(pos int) (Row, error) {
	if pos < 0 || pos >= c.count {
		return nil, fmt.Errorf("position %d of %s, rows %d: %w", pos, c.table, c.count, ErrOutOfRange)
	}
	if r, ok := c.rows[pos]; ok {
		return r, nil
	}
	r, err := c.materialize(c.offset + pos)
	if err != nil {
		return nil, fmt.Errorf("can't materialize row %d of %s: %w", pos, c.table, err)
	}
	c.rows[pos] = r
	return r, nil
}

// String returns value of text column
func (c *Cursor) String(pos int, col string) (string, error) {
	v, err := c.value(pos, col, contract.TypeText)
	return v.text, err
}

// Int returns value of integer column
func (c *Cursor) Int(pos int, col string) (int, error) {
	v, err := c.value(pos, col, contract.TypeInteger)
	return v.num, err
}

// IsNull reports whether the column has no value at position, only text of image only gallery pages is null
func (c *Cursor) IsNull(pos int, col string) (bool, error) {
	v, err := c.value(pos, col, 0)
	return v.null, err
}

// Values returns projected values of the row, string for text, int for integers and nil for null
func (c *Cursor) Values(pos int) ([]any, error) {
	res := make([]any, 0, len(c.columns))
	for _, col := range c.columns {
		typ, err := c.ColumnType(col)
		if err != nil {
			return nil, err
		}
		v, err := c.value(pos, col, typ)
		if err != nil {
			return nil, err
		}
		switch {
		case v.null:
			res = append(res, nil)
		case typ == contract.TypeInteger:
			res = append(res, v.num)
		default:
			res = append(res, v.text)
		}
	}
	return res, nil
}

// value returns the cell checking its declared type against want, zero want skips the check
func (c *Cursor) value(pos int, col string, want contract.ColumnType) (value, error) {
	typ, err := c.ColumnType(col)
	if err != nil {
		return value{}, err
	}
	if want != 0 && typ != want {
		return value{}, fmt.Errorf("column %q of %s is %s, requested as %s: %w", col, c.table, typ, want, ErrColumnType)
	}
	if pos < 0 || pos >= c.count {
		return value{}, fmt.Errorf("position %d of %s, rows %d: %w", pos, c.table, c.count, ErrOutOfRange)
	}

	switch col {
	case contract.ColumnID:
		return value{text: strconv.Itoa(c.offset + pos)}, nil
	case contract.ColumnVersion:
		return value{num: 0}, nil
	}

	r, err := c.RowAt(pos)
	if err != nil {
		return value{}, err
	}
	v, ok := r.field(col)
	if !ok {
		return value{}, fmt.Errorf("column %q not in row of %s, uri %q: %w", col, c.table, c.uri, ErrUnknownColumn)
	}
	return v, nil
}

// materialize builds the row at collection position p, resolving its content keys
func (c *Cursor) materialize(p int) (Row, error) {
	switch c.table.Collection() {
	case contract.List:
		return c.listRow(c.cat.List[p])
	case contract.Grid:
		return c.gridRow(c.grid.Items[p])
	case contract.Gallery:
		return c.galleryRow(c.gallery.Items[p])
	case contract.View:
		return ViewRow{URI: c.view.URI, Type: c.view.Type}, nil
	case contract.Quiz:
		return c.quizRow()
	case contract.QuizQuestions:
		return c.questionRow(c.draw()[p])
	case contract.QuizAnswers:
		v := c.draw()[p]
		return AnswerRow{Answer: v.Text(true), Correct: v.Key == c.vocab.Key}, nil
	}
	return nil, fmt.Errorf("table %s not supported: %w", c.table, ErrInvalidArgument)
}

func (c *Cursor) listRow(e catalog.ListEntry) (Row, error) {
	var err error
	r := ListRow{ContentType: e.Icon.Type, ActionID: e.Grid}
	if r.ContentPath, err = c.path(e.Icon); err != nil {
		return nil, err
	}
	if r.Name, err = c.res.String(e.Name); err != nil {
		return nil, err
	}
	if r.Subtext, err = c.res.String(e.Subtext); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Cursor) gridRow(e catalog.GridEntry) (Row, error) {
	var err error
	r := GridRow{ContentType: e.Icon.Type, ActionType: e.Action.Type, ActionID: e.Action.Key}
	if r.ContentPath, err = c.path(e.Icon); err != nil {
		return nil, err
	}
	if r.Text, err = c.res.String(e.Text); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Cursor) galleryRow(e catalog.GalleryEntry) (Row, error) {
	var err error
	r := GalleryRow{ContentType: e.Image.Type, HasText: e.Text != ""}
	if r.ContentPath, err = c.path(e.Image); err != nil {
		return nil, err
	}
	if !r.HasText {
		return r, nil
	}
	if r.Text, err = c.res.String(e.Text); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Cursor) quizRow() (Row, error) {
	var err error
	r := QuizRow{ContentType: c.quiz.Icon.Type, ActionID: c.quiz.Key}
	if r.ContentPath, err = c.path(c.quiz.Icon); err != nil {
		return nil, err
	}
	if r.Title, err = c.res.String(c.quiz.Title); err != nil {
		return nil, err
	}
	if r.Description, err = c.res.String(c.quiz.Description); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Cursor) questionRow(v catalog.Vocab) (Row, error) {
	var err error
	r := QuestionRow{ContentType: c.quiz.Icon.Type, Question: v.Text(false), ActionID: v.Key}
	if r.ContentPath, err = c.path(c.quiz.Icon); err != nil {
		return nil, err
	}
	return r, nil
}

// path returns direct url of the resource or resolves its key
func (c *Cursor) path(r catalog.Resource) (string, error) {
	if r.URL != "" {
		return r.URL, nil
	}
	return c.res.Path(r.Key)
}

// draw returns quiz questions or answers, drawing them on the first call.
// Answers include the correct one and are shuffled.
func (c *Cursor) draw() []catalog.Vocab {
	if c.drawn != nil {
		return c.drawn
	}
	switch c.table.Collection() {
	case contract.QuizQuestions:
		c.drawn = c.sample(c.set.Items, c.quiz.Questions, nil)
	case contract.QuizAnswers:
		answers := c.sample(c.set.Items, c.set.Answers-1, map[string]bool{c.vocab.Key: true})
		answers = append(answers, c.vocab)
		for i := len(answers) - 1; i > 0; i-- {
			j := c.intn(i + 1)
			answers[i], answers[j] = answers[j], answers[i]
		}
		c.drawn = answers
	}
	log.Printf("[DEBUG] drawn %d items for %s, action %q", len(c.drawn), c.table, c.actionID)
	return c.drawn
}

// sample picks n random items of the pool without replacement. Items are compared by key, keys in
// exclude are never picked. The pool must have at least n keys outside of exclude.
func (c *Cursor) sample(pool []catalog.Vocab, n int, exclude map[string]bool) []catalog.Vocab {
	seen := make(map[string]bool, n+len(exclude))
	for k := range exclude {
		seen[k] = true
	}
	res := make([]catalog.Vocab, 0, n)
	for len(res) < n {
		v := pool[c.intn(len(pool))]
		if seen[v.Key] {
			continue
		}
		seen[v.Key] = true
		res = append(res, v)
	}
	return res
}
