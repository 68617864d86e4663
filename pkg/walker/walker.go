// Package walker crawls the content graph of a provider. Starting from a root table it reads every row and
// follows list and grid actions, quizzes and quiz questions to the tables they open. Tables of the same depth
// are read concurrently, each with a cursor of its own.
package walker

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/go-pkgz/syncs"
	"github.com/hashicorp/go-multierror"

	"github.com/filecraft/contentprovider/pkg/catalog"
	"github.com/filecraft/contentprovider/pkg/contract"
	"github.com/filecraft/contentprovider/pkg/cursor"
)

// Querier is the provider interface used by walker
type Querier interface {
	Query(uri string, projection, selectionArgs []string) (*cursor.Cursor, error)
	URI(table contract.TableID, ids ...int) (string, error)
	ActionURI(a catalog.Action) (uri, actionID string, err error)
}

// Walker reads all tables reachable from a root
type Walker struct {
	Concurrency int
	Provider    Querier
}

// Target is a table to read, ActionID is passed as the selection argument
type Target struct {
	URI      string
	ActionID string
}

// Table is a result of reading one target
type Table struct {
	Target
	Depth   int // steps from the root, root is 0
	Table   contract.TableID
	Columns []string
	Rows    [][]any
}

// Resp holds tables read by Run, sorted by depth, uri and action id. The root goes first.
type Resp struct {
	Tables []Table
	Rows   int
}

// Run walks the graph from root, each target is read once. Errors of individual targets don't stop the walk,
// they are collected and returned together with the tables read successfully.
func (w *Walker) Run(ctx context.Context, root Target) (Resp, error) {
	res := Resp{}
	errs := new(multierror.Error)
	visited := map[Target]bool{root: true}
	frontier := []Target{root}
	lock := sync.Mutex{}

	for depth := 0; len(frontier) > 0 && ctx.Err() == nil; depth++ {
		log.Printf("[DEBUG] walk depth %d, targets %d", depth, len(frontier))
		var next []Target
		wg := syncs.NewErrSizedGroup(w.concurrency(), syncs.Context(ctx), syncs.Preemptive)
		for _, t := range frontier {
			wg.Go(func() error {
				tbl, children, err := w.read(t)
				tbl.Depth = depth
				lock.Lock()
				defer lock.Unlock()
				if err != nil {
					errs = multierror.Append(errs, err)
					return nil
				}
				res.Tables = append(res.Tables, tbl)
				res.Rows += len(tbl.Rows)
				for _, c := range children {
					if !visited[c] {
						visited[c] = true
						next = append(next, c)
					}
				}
				return nil
			})
		}
		if err := wg.Wait(); err != nil {
			errs = multierror.Append(errs, err)
		}
		frontier = next
	}
	if err := ctx.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	sort.Slice(res.Tables, func(i, j int) bool {
		if res.Tables[i].Depth != res.Tables[j].Depth {
			return res.Tables[i].Depth < res.Tables[j].Depth
		}
		if res.Tables[i].URI != res.Tables[j].URI {
			return res.Tables[i].URI < res.Tables[j].URI
		}
		return res.Tables[i].ActionID < res.Tables[j].ActionID
	})
	log.Printf("[DEBUG] walk completed, tables %d, rows %d", len(res.Tables), res.Rows)
	return res, errs.ErrorOrNil()
}

func (w *Walker) concurrency() int {
	if w.Concurrency <= 0 {
		return 1
	}
	return w.Concurrency
}

// read reads all rows of the target and returns the targets its rows open
func (w *Walker) read(t Target) (Table, []Target, error) {
	var args []string
	if t.ActionID != "" {
		args = []string{t.ActionID}
	}
	c, err := w.Provider.Query(t.URI, nil, args)
	if err != nil {
		return Table{}, nil, fmt.Errorf("can't read %s: %w", t.URI, err)
	}

	res := Table{Target: t, Table: c.Table(), Columns: c.Columns(), Rows: make([][]any, 0, c.Count())}
	var children []Target
	for pos := 0; pos < c.Count(); pos++ {
		vals, err := c.Values(pos)
		if err != nil {
			return Table{}, nil, fmt.Errorf("can't read row %d of %s: %w", pos, t.URI, err)
		}
		res.Rows = append(res.Rows, vals)

		child, ok, err := w.child(c, pos)
		if err != nil {
			return Table{}, nil, fmt.Errorf("can't get child of row %d of %s: %w", pos, t.URI, err)
		}
		if ok {
			children = append(children, child)
		}
	}
	return res, children, nil
}

// child returns the target opened by the row, false for rows opening nothing
func (w *Walker) child(c *cursor.Cursor, pos int) (Target, bool, error) {
	switch c.Table().Collection() {
	case contract.List:
		key, err := c.String(pos, contract.ColumnActionID)
		if err != nil {
			return Target{}, false, err
		}
		return w.actionTarget(catalog.Action{Type: contract.ActionGrid, Key: key})
	case contract.Grid:
		at, err := c.Int(pos, contract.ColumnActionType)
		if err != nil {
			return Target{}, false, err
		}
		key, err := c.String(pos, contract.ColumnActionID)
		if err != nil {
			return Target{}, false, err
		}
		return w.actionTarget(catalog.Action{Type: contract.ActionType(at), Key: key})
	case contract.Quiz:
		return w.tableTarget(c, pos, contract.QuizQuestions)
	case contract.QuizQuestions:
		return w.tableTarget(c, pos, contract.QuizAnswers)
	}
	return Target{}, false, nil
}

func (w *Walker) actionTarget(a catalog.Action) (Target, bool, error) {
	uri, actionID, err := w.Provider.ActionURI(a)
	if err != nil {
		return Target{}, false, err
	}
	return Target{URI: uri, ActionID: actionID}, true, nil
}

// tableTarget makes target of the table with action id taken from the row
func (w *Walker) tableTarget(c *cursor.Cursor, pos int, table contract.TableID) (Target, bool, error) {
	key, err := c.String(pos, contract.ColumnActionID)
	if err != nil {
		return Target{}, false, err
	}
	uri, err := w.Provider.URI(table)
	if err != nil {
		return Target{}, false, err
	}
	return Target{URI: uri, ActionID: key}, true, nil
}
