package cursor

import (
	"github.com/filecraft/contentprovider/pkg/contract"
)

// Row is a materialized record of one of the tables. Concrete types are ListRow, GridRow, GalleryRow,
// ViewRow, QuizRow, QuestionRow and AnswerRow.
type Row interface {
	field(column string) (value, bool)
}

// value is a single cell, num is used by integer columns and text by text ones
type value struct {
	text string
	num  int
	null bool
}

func text(s string) (value, bool) { return value{text: s}, true }
func num(n int) (value, bool)     { return value{num: n}, true }

// ListRow is a row of the list table
type ListRow struct {
	ContentPath string
	ContentType contract.ContentType
	ActionID    string // key of the grid to open
	Name        string
	Subtext     string
}

func (r ListRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnContentPath:
		return text(r.ContentPath)
	case contract.ColumnContentType:
		return num(int(r.ContentType))
	case contract.ColumnActionType:
		return num(contract.ListActionGrid)
	case contract.ColumnActionID:
		return text(r.ActionID)
	case contract.ColumnListName:
		return text(r.Name)
	case contract.ColumnListSubtext:
		return text(r.Subtext)
	}
	return value{}, false
}

// GridRow is a row of a grid
type GridRow struct {
	ContentPath string
	ContentType contract.ContentType
	Text        string
	ActionType  contract.ActionType
	ActionID    string
}

func (r GridRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnContentPath:
		return text(r.ContentPath)
	case contract.ColumnContentType:
		return num(int(r.ContentType))
	case contract.ColumnText:
		return text(r.Text)
	case contract.ColumnActionType:
		return num(int(r.ActionType))
	case contract.ColumnActionID:
		return text(r.ActionID)
	}
	return value{}, false
}

// GalleryRow is a page of a gallery. Text is null for image only pages.
type GalleryRow struct {
	ContentPath string
	ContentType contract.ContentType
	Text        string
	HasText     bool
}

func (r GalleryRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnContentPath:
		return text(r.ContentPath)
	case contract.ColumnContentType:
		return num(int(r.ContentType))
	case contract.ColumnText:
		return value{text: r.Text, null: !r.HasText}, true
	}
	return value{}, false
}

// ViewRow is the single row of a view table
type ViewRow struct {
	URI  string
	Type int
}

func (r ViewRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnViewURI:
		return text(r.URI)
	case contract.ColumnActionType:
		return num(r.Type)
	}
	return value{}, false
}

// QuizRow is the single row of a quiz table
type QuizRow struct {
	ContentPath string
	ContentType contract.ContentType
	Title       string
	Description string
	ActionID    string // quiz key, passed to quiz questions
}

func (r QuizRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnContentPath:
		return text(r.ContentPath)
	case contract.ColumnContentType:
		return num(int(r.ContentType))
	case contract.ColumnTitle:
		return text(r.Title)
	case contract.ColumnDescription:
		return text(r.Description)
	case contract.ColumnActionID:
		return text(r.ActionID)
	}
	return value{}, false
}

// QuestionRow is a quiz question, ActionID is the vocabulary key used to get its answers
type QuestionRow struct {
	ContentPath string
	ContentType contract.ContentType
	Question    string
	ActionID    string
}

func (r QuestionRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnContentPath:
		return text(r.ContentPath)
	case contract.ColumnContentType:
		return num(int(r.ContentType))
	case contract.ColumnQuestion:
		return text(r.Question)
	case contract.ColumnQuestionSubtext:
		return text("")
	case contract.ColumnActionType:
		return num(contract.QuestionMultipleChoice)
	case contract.ColumnActionID:
		return text(r.ActionID)
	}
	return value{}, false
}

// AnswerRow is one of the answers offered for a question
type AnswerRow struct {
	Answer  string
	Correct bool
}

func (r AnswerRow) field(column string) (value, bool) {
	switch column {
	case contract.ColumnAnswer:
		return text(r.Answer)
	case contract.ColumnIsCorrectAnswer:
		if r.Correct {
			return num(1)
		}
		return num(0)
	}
	return value{}, false
}

// column is a declared column of a table
type column struct {
	name string
	typ  contract.ColumnType
}

// common columns, valid for every table
var commonColumns = []column{
	{contract.ColumnID, contract.TypeText},
	{contract.ColumnVersion, contract.TypeInteger},
}

// schema lists table specific columns per collection table, in the default projection order
var schema = map[contract.TableID][]column{
	contract.List: {
		{contract.ColumnContentPath, contract.TypeText},
		{contract.ColumnContentType, contract.TypeInteger},
		{contract.ColumnActionType, contract.TypeInteger},
		{contract.ColumnActionID, contract.TypeText},
		{contract.ColumnListName, contract.TypeText},
		{contract.ColumnListSubtext, contract.TypeText},
	},
	contract.Grid: {
		{contract.ColumnContentPath, contract.TypeText},
		{contract.ColumnContentType, contract.TypeInteger},
		{contract.ColumnText, contract.TypeText},
		{contract.ColumnActionType, contract.TypeInteger},
		{contract.ColumnActionID, contract.TypeText},
	},
	contract.Gallery: {
		{contract.ColumnContentPath, contract.TypeText},
		{contract.ColumnContentType, contract.TypeInteger},
		{contract.ColumnText, contract.TypeText},
	},
	contract.View: {
		{contract.ColumnViewURI, contract.TypeText},
		{contract.ColumnActionType, contract.TypeInteger},
	},
	contract.Quiz: {
		{contract.ColumnContentPath, contract.TypeText},
		{contract.ColumnContentType, contract.TypeInteger},
		{contract.ColumnTitle, contract.TypeText},
		{contract.ColumnDescription, contract.TypeText},
		{contract.ColumnActionID, contract.TypeText},
	},
	contract.QuizQuestions: {
		{contract.ColumnContentPath, contract.TypeText},
		{contract.ColumnContentType, contract.TypeInteger},
		{contract.ColumnQuestion, contract.TypeText},
		{contract.ColumnQuestionSubtext, contract.TypeText},
		{contract.ColumnActionType, contract.TypeInteger},
		{contract.ColumnActionID, contract.TypeText},
	},
	contract.QuizAnswers: {
		{contract.ColumnAnswer, contract.TypeText},
		{contract.ColumnIsCorrectAnswer, contract.TypeInteger},
	},
}

// TableColumns returns all column names of the table, common columns first
func TableColumns(table contract.TableID) []string {
	cols, ok := schema[table.Collection()]
	if !ok {
		return nil
	}
	res := make([]string, 0, len(commonColumns)+len(cols))
	for _, c := range commonColumns {
		res = append(res, c.name)
	}
	for _, c := range cols {
		res = append(res, c.name)
	}
	return res
}

func columnType(table contract.TableID, name string) (contract.ColumnType, bool) {
	for _, c := range commonColumns {
		if c.name == name {
			return c.typ, true
		}
	}
	for _, c := range schema[table.Collection()] {
		if c.name == name {
			return c.typ, true
		}
	}
	return 0, false
}
