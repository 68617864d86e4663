// Package contract defines names, codes and types shared by the router, the cursor and the provider.
// Column names, table names and type codes follow the FileCraft content provider contract.
package contract

import "fmt"

// Authorities served by the tutorial provider
const (
	AuthorityA = "com.filecraft.helloworld.custom.cursor.a"
	AuthorityB = "com.filecraft.helloworld.custom.cursor.b"
)

// ReadPermission is the permission a client must hold to query the provider
const ReadPermission = "com.filecraft.permission.READ"

// Scheme of content uris
const Scheme = "content"

// common columns, valid for every table
const (
	ColumnID          = "_id"          // Type = Text, row position
	ColumnVersion     = "version"      // Type = Integer, always 0
	ColumnContentPath = "content_path" // Type = Text, uri path of the content
	ColumnContentType = "content_type" // Type = Integer, ContentType code
	ColumnText        = "text"         // Type = Text
	ColumnActionType  = "action_type"  // Type = Integer, action type code
	ColumnActionID    = "action_id"    // Type = Text, foreign key of the action
)

// table specific columns
const (
	ColumnListName        = "list_name"
	ColumnListSubtext     = "list_subtext"
	ColumnViewURI         = "view_uri"
	ColumnTitle           = "title"
	ColumnDescription     = "description"
	ColumnQuestion        = "question"
	ColumnQuestionSubtext = "subtext"
	ColumnAnswer          = "answer"
	ColumnIsCorrectAnswer = "is_correct_answer" // Type = Integer, 1 or 0
)

// ColumnType is a declared type of column value
type ColumnType int

// column types
const (
	TypeText ColumnType = iota + 1
	TypeInteger
)

// String returns type name
func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// TableID is a dispatch key of a logical table. Every table has a collection and, for some, an item form.
type TableID int

// tables
const (
	List TableID = iota + 1
	ListItem
	Grid
	GridItem
	Gallery
	GalleryItem
	View
	Quiz
	QuizQuestions
	QuizQuestionsItem
	QuizAnswers
	QuizAnswersItem
)

// table names, used as the first path segment
const (
	TableList          = "list"
	TableGrid          = "grid"
	TableGallery       = "gallery"
	TableView          = "view"
	TableQuiz          = "quiz"
	TableQuizQuestions = "quiz_questions"
	TableQuizAnswers   = "quiz_answers"
)

type tableInfo struct {
	name       string
	item       bool
	arity      int // number of integer ids in the path
	collection TableID
	mime       string
}

var tables = map[TableID]tableInfo{
	List:              {name: TableList, collection: List, mime: "vnd.com.filecraft.list"},
	ListItem:          {name: TableList, item: true, arity: 1, collection: List, mime: "vnd.com.filecraft.list"},
	Grid:              {name: TableGrid, arity: 1, collection: Grid, mime: "vnd.com.filecraft.grid"},
	GridItem:          {name: TableGrid, item: true, arity: 2, collection: Grid, mime: "vnd.com.filecraft.grid"},
	Gallery:           {name: TableGallery, arity: 1, collection: Gallery, mime: "vnd.com.filecraft.gallery"},
	GalleryItem:       {name: TableGallery, item: true, arity: 2, collection: Gallery, mime: "vnd.com.filecraft.gallery"},
	View:              {name: TableView, arity: 1, collection: View, mime: "vnd.com.filecraft.view"},
	Quiz:              {name: TableQuiz, collection: Quiz, mime: "vnd.com.filecraft.quiz"},
	QuizQuestions:     {name: TableQuizQuestions, collection: QuizQuestions, mime: "vnd.com.filecraft.quiz.questions"},
	QuizQuestionsItem: {name: TableQuizQuestions, item: true, arity: 1, collection: QuizQuestions, mime: "vnd.com.filecraft.quiz.questions"},
	QuizAnswers:       {name: TableQuizAnswers, collection: QuizAnswers, mime: "vnd.com.filecraft.quiz.answers"},
	QuizAnswersItem:   {name: TableQuizAnswers, item: true, arity: 1, collection: QuizAnswers, mime: "vnd.com.filecraft.quiz.answers"},
}

// base mime types of cursors
const (
	cursorDirBaseType  = "vnd.android.cursor.dir"
	cursorItemBaseType = "vnd.android.cursor.item"
)

// Valid reports whether the table id is known
func (t TableID) Valid() bool {
	_, ok := tables[t]
	return ok
}

// Name returns table name, i.e. "grid" for both Grid and GridItem
func (t TableID) Name() string {
	return tables[t].name
}

// IsItem reports whether the table addresses a single row of its collection
func (t TableID) IsItem() bool {
	return tables[t].item
}

// Arity returns the number of integer ids addressing the table. For item tables the last id is the row
// position in the collection, the ones before it identify the parent.
func (t TableID) Arity() int {
	return tables[t].arity
}

// Collection returns the collection table of an item table, or the table itself
func (t TableID) Collection() TableID {
	if info, ok := tables[t]; ok {
		return info.collection
	}
	return t
}

// MimeType returns mime type of the table, dir type for collections and item type for items
func (t TableID) MimeType() string {
	info, ok := tables[t]
	if !ok {
		return ""
	}
	if info.item {
		return cursorItemBaseType + "/" + info.mime
	}
	return cursorDirBaseType + "/" + info.mime
}

// String returns table name with the item suffix if needed
func (t TableID) String() string {
	info, ok := tables[t]
	if !ok {
		return fmt.Sprintf("table(%d)", int(t))
	}
	if info.item {
		return info.name + "_item"
	}
	return info.name
}

// ContentType is a type code of the content under content_path column
type ContentType int

// content types
const (
	RasterImage ContentType = 1 // png or jpg image on device, including apk
	WebImage    ContentType = 2 // raster, svg or gif image found online
	SVG         ContentType = 3 // svg on device but not in apk, rendered in a web view
	SVGBasic    ContentType = 4 // svg basic 1.1, can be provided from apk, rendered as bitmap
	GIF         ContentType = 5 // gif on device but not in apk
)

// ActionType is a type code of the action performed when a list or grid item clicked
type ActionType int

// action types. List items only open grids, grid items can open any of them.
const (
	ActionGallery ActionType = 1
	ActionView    ActionType = 2
	ActionGrid    ActionType = 3
	ActionQuiz    ActionType = 4
)

// ListActionGrid is the code of the only list action, opening a grid
const ListActionGrid = 1

// String returns action name
func (a ActionType) String() string {
	switch a {
	case ActionGallery:
		return "gallery"
	case ActionView:
		return "view"
	case ActionGrid:
		return "grid"
	case ActionQuiz:
		return "quiz"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// other type codes
const (
	ViewTypeStandard       = 1 // VIEW intent with no special arguments
	QuestionMultipleChoice = 1
	AnswerTextOnly         = 1
	GalleryImageOnly       = 1
	GalleryImageAndSubtext = 2
)
