// Package router classifies content paths into tables. A path template is a literal table name followed
// by zero, one or two integer wildcard segments, i.e. "grid/#/#". Templates of a router never overlap,
// so every path matches at most one template.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/filecraft/contentprovider/pkg/catalog"
	"github.com/filecraft/contentprovider/pkg/contract"
)

// Wildcard marks a segment matching any non-negative integer
const Wildcard = "#"

// maxWildcards is the number of integer segments a template can have
const maxWildcards = 2

// errors returned by router
var (
	ErrUnmatchedRoute   = errors.New("unmatched route")
	ErrUnknownAuthority = errors.New("unknown authority")
	ErrBadTemplate      = errors.New("bad template")
)

// Template associates a path pattern with a table
type Template struct {
	Pattern string
	Table   contract.TableID

	segments []string
}

// Route is a result of path matching, IDs are extracted from wildcard segments in path order
type Route struct {
	Table     contract.TableID
	IDs       []int
	Authority string // set by ResolveURI only
	Path      string
}

// Router matches paths against registered templates
type Router struct {
	templates []Template
	byTable   map[contract.TableID]Template
}

// Templates returns templates of the FileCraft contract
func Templates() []Template {
	return []Template{
		{Pattern: contract.TableList, Table: contract.List},
		{Pattern: contract.TableList + "/#", Table: contract.ListItem},
		{Pattern: contract.TableGrid + "/#", Table: contract.Grid},
		{Pattern: contract.TableGrid + "/#/#", Table: contract.GridItem},
		{Pattern: contract.TableGallery + "/#", Table: contract.Gallery},
		{Pattern: contract.TableGallery + "/#/#", Table: contract.GalleryItem},
		{Pattern: contract.TableView + "/#", Table: contract.View},
		{Pattern: contract.TableQuiz, Table: contract.Quiz},
		{Pattern: contract.TableQuizQuestions, Table: contract.QuizQuestions},
		{Pattern: contract.TableQuizQuestions + "/#", Table: contract.QuizQuestionsItem},
		{Pattern: contract.TableQuizAnswers, Table: contract.QuizAnswers},
		{Pattern: contract.TableQuizAnswers + "/#", Table: contract.QuizAnswersItem},
	}
}

// Default returns router with the FileCraft contract templates
func Default() *Router {
	r, err := New(Templates()...)
	if err != nil {
		panic(err) // built-in templates are static, can't fail
	}
	return r
}

// New makes a router for the templates. Returns error if a template is malformed, a table registered twice
// or two templates can match the same path.
func New(templates ...Template) (*Router, error) {
	res := &Router{byTable: make(map[contract.TableID]Template, len(templates))}
	for _, t := range templates {
		segs, err := parsePattern(t.Pattern)
		if err != nil {
			return nil, err
		}
		t.segments = segs
		if _, ok := res.byTable[t.Table]; ok {
			return nil, fmt.Errorf("table %s registered twice: %w", t.Table, ErrBadTemplate)
		}
		for _, other := range res.templates {
			if overlaps(t.segments, other.segments) {
				return nil, fmt.Errorf("template %q overlaps with %q: %w", t.Pattern, other.Pattern, ErrBadTemplate)
			}
		}
		res.templates = append(res.templates, t)
		res.byTable[t.Table] = t
	}
	return res, nil
}

// Resolve matches path against templates. Leading and trailing slashes are ignored.
// Returns ErrUnmatchedRoute if no template matches, including a wildcard segment which is not a number.
func (r *Router) Resolve(path string) (Route, error) {
	return r.resolveSegments(path, splitPath(path))
}

func (r *Router) resolveSegments(path string, segs []string) (Route, error) {
	for _, t := range r.templates {
		ids, ok := match(t.segments, segs)
		if !ok {
			continue
		}
		return Route{Table: t.Table, IDs: ids, Path: strings.Join(segs, "/")}, nil
	}
	return Route{}, fmt.Errorf("path %q: %w", path, ErrUnmatchedRoute)
}

// ResolveURI parses content uri "content://<authority>/<path>" and resolves its path.
// The authority is returned as is, checking it is up to the caller.
func (r *Router) ResolveURI(uri string) (Route, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Route{}, fmt.Errorf("can't parse uri %q: %w", uri, err)
	}
	if u.Scheme != contract.Scheme {
		return Route{}, fmt.Errorf("uri %q has scheme %q, expected %q: %w", uri, u.Scheme, contract.Scheme, ErrUnmatchedRoute)
	}
	if u.Host == "" {
		return Route{}, fmt.Errorf("uri %q has no authority: %w", uri, ErrUnknownAuthority)
	}
	// split before unescaping, an escaped slash stays inside its segment
	segs := splitPath(u.EscapedPath())
	for i, seg := range segs {
		if segs[i], err = url.PathUnescape(seg); err != nil {
			return Route{}, fmt.Errorf("can't unescape segment %q of uri %q: %w", seg, uri, err)
		}
	}
	route, err := r.resolveSegments(u.EscapedPath(), segs)
	if err != nil {
		return Route{}, fmt.Errorf("can't resolve uri %q: %w", uri, err)
	}
	route.Authority = u.Host
	return route, nil
}

// Path builds the path of the table with the given ids, reverse of Resolve
func (r *Router) Path(table contract.TableID, ids ...int) (string, error) {
	t, ok := r.byTable[table]
	if !ok {
		return "", fmt.Errorf("no template for table %s: %w", table, ErrUnmatchedRoute)
	}
	res := make([]string, 0, len(t.segments))
	idx := 0
	for _, s := range t.segments {
		if s != Wildcard {
			res = append(res, s)
			continue
		}
		if idx >= len(ids) {
			return "", fmt.Errorf("table %s needs %d ids, got %d", table, wildcards(t.segments), len(ids))
		}
		if ids[idx] < 0 {
			return "", fmt.Errorf("negative id %d for table %s", ids[idx], table)
		}
		res = append(res, strconv.Itoa(ids[idx]))
		idx++
	}
	if idx != len(ids) {
		return "", fmt.Errorf("table %s needs %d ids, got %d", table, idx, len(ids))
	}
	return strings.Join(res, "/"), nil
}

// Arity returns the number of ids the table's template extracts
func (r *Router) Arity(table contract.TableID) (int, bool) {
	t, ok := r.byTable[table]
	if !ok {
		return 0, false
	}
	return wildcards(t.segments), true
}

// IDLookup maps child actions to numeric ids, implemented by catalog
type IDLookup interface {
	ID(a catalog.Action) (int, bool)
}

// ActionPath returns the path opening the child of the action. Grids, galleries and views are addressed by
// numeric ids in the path, quizzes by the returned action id passed as selection argument.
func (r *Router) ActionPath(a catalog.Action, ids IDLookup) (path, actionID string, err error) {
	var table contract.TableID
	switch a.Type {
	case contract.ActionGrid:
		table = contract.Grid
	case contract.ActionGallery:
		table = contract.Gallery
	case contract.ActionView:
		table = contract.View
	case contract.ActionQuiz:
		path, err = r.Path(contract.Quiz)
		return path, a.Key, err
	default:
		return "", "", fmt.Errorf("unknown action type %d", int(a.Type))
	}

	id, ok := ids.ID(a)
	if !ok {
		return "", "", fmt.Errorf("unknown %s %q", a.Type, a.Key)
	}
	path, err = r.Path(table, id)
	return path, "", err
}

func parsePattern(pattern string) ([]string, error) {
	segs := splitPath(pattern)
	if len(segs) == 0 {
		return nil, fmt.Errorf("empty template: %w", ErrBadTemplate)
	}
	if segs[0] == Wildcard {
		return nil, fmt.Errorf("template %q starts with wildcard: %w", pattern, ErrBadTemplate)
	}
	if n := wildcards(segs); n > maxWildcards {
		return nil, fmt.Errorf("template %q has %d wildcards, max %d: %w", pattern, n, maxWildcards, ErrBadTemplate)
	}
	for _, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("template %q has empty segment: %w", pattern, ErrBadTemplate)
		}
	}
	return segs, nil
}

// match compares segments exactly, wildcards accept decimal non-negative integers only
func match(tmpl, segs []string) ([]int, bool) {
	if len(tmpl) != len(segs) {
		return nil, false
	}
	var ids []int
	for i, s := range tmpl {
		if s != Wildcard {
			if s != segs[i] {
				return nil, false
			}
			continue
		}
		id, ok := parseID(segs[i])
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// overlaps reports whether some path can match both templates
func overlaps(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch {
		case a[i] == b[i]:
		case a[i] == Wildcard:
			if _, ok := parseID(b[i]); !ok {
				return false
			}
		case b[i] == Wildcard:
			if _, ok := parseID(a[i]); !ok {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil { // overflow
		return 0, false
	}
	return id, true
}

func wildcards(segs []string) int {
	n := 0
	for _, s := range segs {
		if s == Wildcard {
			n++
		}
	}
	return n
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
