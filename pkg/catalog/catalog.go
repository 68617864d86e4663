// Package catalog holds the static content graph served by the provider: list entries, grids, galleries,
// view links, quizzes and vocabulary sets. The catalog is built once and never modified, readers only
// look things up. Text and resource fields hold content keys resolved later by a content resolver.
package catalog

import (
	"fmt"
	"log"

	"github.com/hashicorp/go-multierror"

	"github.com/filecraft/contentprovider/pkg/contract"
)

// Resource refers to a piece of content, either by content key or by direct url
type Resource struct {
	Key  string               // content key, resolved to a path by content resolver
	URL  string               // direct url, used as is if set
	Type contract.ContentType // content type code
}

// Action is a tagged reference to the child opened on click, Key is the opaque action id of the child
type Action struct {
	Type contract.ActionType
	Key  string
}

// ListEntry is a row of the list table, shown in the start drawer. Always opens a grid.
type ListEntry struct {
	Icon    Resource
	Name    string // string key
	Subtext string // string key
	Grid    string // key of the grid to open
}

// Grid is a set of grid entries opened from a list entry or another grid
type Grid struct {
	Key   string
	Items []GridEntry
}

// GridEntry is a row of the grid table
type GridEntry struct {
	Icon   Resource
	Text   string // string key
	Action Action
}

// Gallery is a set of images, each page is a different image
type Gallery struct {
	Key   string
	Items []GalleryEntry
}

// GalleryEntry is a row of the gallery table, Text is optional
type GalleryEntry struct {
	Image Resource
	Text  string // string key, empty for image only pages
}

// ViewLink is a uri opened with VIEW intent
type ViewLink struct {
	Key  string
	URI  string
	Type int
}

// Quiz describes a quiz and the vocabulary set its questions and answers are drawn from
type Quiz struct {
	Key         string
	Icon        Resource
	Title       string // string key
	Description string // string key
	AnswerSet   string // key of the vocabulary set
	Questions   int    // number of questions asked
}

// VocabSet is a pool of vocabulary items, Answers is the number of answers offered per question
type VocabSet struct {
	Key     string
	Answers int
	Items   []Vocab
}

// Vocab is a single vocabulary item. Key is stable and used to compare items, not the text.
type Vocab struct {
	Key      string
	English  string
	Japanese string
}

// Text returns vocabulary text in english or japanese
func (v Vocab) Text(japanese bool) string {
	if japanese {
		return v.Japanese
	}
	return v.English
}

// Catalog is an immutable registry of all static tables. Ordinals of grids, galleries and views
// are their numeric ids used in the content paths.
type Catalog struct {
	List      []ListEntry
	Grids     []Grid
	Galleries []Gallery
	Views     []ViewLink
	Quizzes   []Quiz
	VocabSets []VocabSet

	gridIdx    map[string]int
	galleryIdx map[string]int
	viewIdx    map[string]int
	quizIdx    map[string]int
	setIdx     map[string]int
	vocabIdx   map[string][2]int // vocab key -> set ordinal, item ordinal
}

// New makes a catalog from the given tables and validates it
func New(c Catalog) (*Catalog, error) {
	res := c
	res.gridIdx = make(map[string]int, len(c.Grids))
	for i, g := range c.Grids {
		res.gridIdx[g.Key] = i
	}
	res.galleryIdx = make(map[string]int, len(c.Galleries))
	for i, g := range c.Galleries {
		res.galleryIdx[g.Key] = i
	}
	res.viewIdx = make(map[string]int, len(c.Views))
	for i, v := range c.Views {
		res.viewIdx[v.Key] = i
	}
	res.quizIdx = make(map[string]int, len(c.Quizzes))
	for i, q := range c.Quizzes {
		res.quizIdx[q.Key] = i
	}
	res.setIdx = make(map[string]int, len(c.VocabSets))
	res.vocabIdx = make(map[string][2]int)
	for i, s := range c.VocabSets {
		res.setIdx[s.Key] = i
		for j, v := range s.Items {
			if _, ok := res.vocabIdx[v.Key]; !ok {
				res.vocabIdx[v.Key] = [2]int{i, j}
			}
		}
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	for _, u := range res.Unreachable() {
		log.Printf("[WARN] %s is not linked from the list or any grid", u)
	}
	return &res, nil
}

// Validate checks integrity of the catalog:
// - keys are unique per kind and not empty
// - every action and list entry points to an existing child
// - quiz question and answer counts fit into the vocabulary pool, otherwise sampling can't complete
func (c *Catalog) Validate() error {
	errs := new(multierror.Error)

	checkKeys := func(kind string, keys []string) {
		seen := make(map[string]bool, len(keys))
		for _, k := range keys {
			if k == "" {
				errs = multierror.Append(errs, fmt.Errorf("%s with empty key", kind))
				continue
			}
			if seen[k] {
				errs = multierror.Append(errs, fmt.Errorf("duplicate %s key %q", kind, k))
			}
			seen[k] = true
		}
	}

	keys := func(n int, key func(i int) string) []string {
		res := make([]string, 0, n)
		for i := 0; i < n; i++ {
			res = append(res, key(i))
		}
		return res
	}

	checkKeys("grid", keys(len(c.Grids), func(i int) string { return c.Grids[i].Key }))
	checkKeys("gallery", keys(len(c.Galleries), func(i int) string { return c.Galleries[i].Key }))
	checkKeys("view", keys(len(c.Views), func(i int) string { return c.Views[i].Key }))
	checkKeys("quiz", keys(len(c.Quizzes), func(i int) string { return c.Quizzes[i].Key }))
	checkKeys("vocabulary set", keys(len(c.VocabSets), func(i int) string { return c.VocabSets[i].Key }))
	for _, s := range c.VocabSets {
		checkKeys("vocabulary item in "+s.Key, keys(len(s.Items), func(i int) string { return s.Items[i].Key }))
	}

	for i, l := range c.List {
		if _, ok := c.gridIdx[l.Grid]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("list entry %d refers to unknown grid %q", i, l.Grid))
		}
	}

	for _, g := range c.Grids {
		for i, item := range g.Items {
			if !c.actionExists(item.Action) {
				errs = multierror.Append(errs, fmt.Errorf("grid %q entry %d refers to unknown %s %q",
					g.Key, i, item.Action.Type, item.Action.Key))
			}
		}
	}

	for _, q := range c.Quizzes {
		set, ok := c.VocabSet(q.AnswerSet)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("quiz %q refers to unknown vocabulary set %q", q.Key, q.AnswerSet))
			continue
		}
		if q.Questions <= 0 || q.Questions > len(set.Items) {
			errs = multierror.Append(errs, fmt.Errorf("quiz %q asks %d questions, vocabulary set %q has %d items",
				q.Key, q.Questions, set.Key, len(set.Items)))
		}
	}

	for _, s := range c.VocabSets {
		if s.Answers <= 0 || s.Answers > len(s.Items) {
			errs = multierror.Append(errs, fmt.Errorf("vocabulary set %q offers %d answers, has %d items",
				s.Key, s.Answers, len(s.Items)))
		}
	}

	return errs.ErrorOrNil()
}

// Unreachable returns grids, galleries, views and quizzes no list entry or grid action leads to,
// as "<kind> <key>" in catalog order. Unlinked items are still served by ordinal.
func (c *Catalog) Unreachable() []string {
	linked := map[Action]bool{}
	for _, l := range c.List {
		linked[Action{Type: contract.ActionGrid, Key: l.Grid}] = true
	}
	for _, g := range c.Grids {
		for _, item := range g.Items {
			linked[item.Action] = true
		}
	}

	var res []string
	check := func(t contract.ActionType, key string) {
		if !linked[Action{Type: t, Key: key}] {
			res = append(res, fmt.Sprintf("%s %s", t, key))
		}
	}
	for _, g := range c.Grids {
		check(contract.ActionGrid, g.Key)
	}
	for _, g := range c.Galleries {
		check(contract.ActionGallery, g.Key)
	}
	for _, v := range c.Views {
		check(contract.ActionView, v.Key)
	}
	for _, q := range c.Quizzes {
		check(contract.ActionQuiz, q.Key)
	}
	return res
}

func (c *Catalog) actionExists(a Action) bool {
	var ok bool
	switch a.Type {
	case contract.ActionGrid:
		_, ok = c.gridIdx[a.Key]
	case contract.ActionGallery:
		_, ok = c.galleryIdx[a.Key]
	case contract.ActionView:
		_, ok = c.viewIdx[a.Key]
	case contract.ActionQuiz:
		_, ok = c.quizIdx[a.Key]
	}
	return ok
}

// Grid returns grid by numeric id
func (c *Catalog) Grid(id int) (Grid, bool) {
	if id < 0 || id >= len(c.Grids) {
		return Grid{}, false
	}
	return c.Grids[id], true
}

// Gallery returns gallery by numeric id
func (c *Catalog) Gallery(id int) (Gallery, bool) {
	if id < 0 || id >= len(c.Galleries) {
		return Gallery{}, false
	}
	return c.Galleries[id], true
}

// View returns view link by numeric id
func (c *Catalog) View(id int) (ViewLink, bool) {
	if id < 0 || id >= len(c.Views) {
		return ViewLink{}, false
	}
	return c.Views[id], true
}

// Quiz returns quiz by key
func (c *Catalog) Quiz(key string) (Quiz, bool) {
	i, ok := c.quizIdx[key]
	if !ok {
		return Quiz{}, false
	}
	return c.Quizzes[i], true
}

// VocabSet returns vocabulary set by key
func (c *Catalog) VocabSet(key string) (VocabSet, bool) {
	i, ok := c.setIdx[key]
	if !ok {
		return VocabSet{}, false
	}
	return c.VocabSets[i], true
}

// Vocab returns vocabulary item by its key together with the set containing it
func (c *Catalog) Vocab(key string) (Vocab, VocabSet, bool) {
	pos, ok := c.vocabIdx[key]
	if !ok {
		return Vocab{}, VocabSet{}, false
	}
	set := c.VocabSets[pos[0]]
	return set.Items[pos[1]], set, true
}

// ID returns numeric id of the action's child. Quizzes have no numeric id and are addressed by key only.
func (c *Catalog) ID(a Action) (int, bool) {
	var idx map[string]int
	switch a.Type {
	case contract.ActionGrid:
		idx = c.gridIdx
	case contract.ActionGallery:
		idx = c.galleryIdx
	case contract.ActionView:
		idx = c.viewIdx
	default:
		return 0, false
	}
	i, ok := idx[a.Key]
	return i, ok
}
