// Package provider is the content provider facade. It accepts content uris, checks the authority,
// resolves the path to a table and opens a cursor for it.
package provider

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-pkgz/stringutils"
	"github.com/google/uuid"

	"github.com/filecraft/contentprovider/pkg/catalog"
	"github.com/filecraft/contentprovider/pkg/content"
	"github.com/filecraft/contentprovider/pkg/contract"
	"github.com/filecraft/contentprovider/pkg/cursor"
	"github.com/filecraft/contentprovider/pkg/router"
)

// Provider serves queries for a set of authorities
type Provider struct {
	Router        *router.Router
	Catalog       *catalog.Catalog
	Resolver      content.Resolver
	Authorities   []string
	CursorOptions []cursor.Option
}

// New makes provider with the default router and catalog. Both FileCraft authorities are served if none given.
func New(res content.Resolver, authorities ...string) *Provider {
	if len(authorities) == 0 {
		authorities = []string{contract.AuthorityA, contract.AuthorityB}
	}
	return &Provider{
		Router:      router.Default(),
		Catalog:     catalog.Default(),
		Resolver:    res,
		Authorities: authorities,
	}
}

// Query opens a cursor for the content uri. The first selection argument is the action id,
// required for quiz tables and ignored by the rest.
func (p *Provider) Query(uri string, projection, selectionArgs []string) (*cursor.Cursor, error) {
	reqID := uuid.New().String()
	log.Printf("[DEBUG] [%s] query %s, projection %v, args %v", reqID, uri, projection, selectionArgs)

	route, err := p.route(uri)
	if err != nil {
		log.Printf("[DEBUG] [%s] %v", reqID, err)
		return nil, err
	}

	actionID := ""
	if len(selectionArgs) > 0 {
		actionID = selectionArgs[0]
	}
	params := cursor.Params{Table: route.Table, IDs: route.IDs, Projection: projection, ActionID: actionID, URI: uri}
	c, err := cursor.Open(p.Catalog, p.Resolver, params, p.CursorOptions...)
	if err != nil {
		log.Printf("[DEBUG] [%s] %v", reqID, err)
		return nil, fmt.Errorf("can't query %s: %w", uri, err)
	}
	log.Printf("[DEBUG] [%s] table %s, rows %d", reqID, route.Table, c.Count())
	return c, nil
}

// Type returns mime type of the content uri
func (p *Provider) Type(uri string) (string, error) {
	route, err := p.route(uri)
	if err != nil {
		return "", err
	}
	return route.Table.MimeType(), nil
}

// URI makes content uri of the table with the given ids, on the first authority
func (p *Provider) URI(table contract.TableID, ids ...int) (string, error) {
	path, err := p.Router.Path(table, ids...)
	if err != nil {
		return "", err
	}
	return p.contentURI(path), nil
}

// ActionURI returns uri and action id opening the child of the action, as read from action_type and action_id
// columns of grid rows. List rows always open grids.
func (p *Provider) ActionURI(a catalog.Action) (uri, actionID string, err error) {
	path, actionID, err := p.Router.ActionPath(a, p.Catalog)
	if err != nil {
		return "", "", fmt.Errorf("can't make uri for %s %q: %w", a.Type, a.Key, err)
	}
	return p.contentURI(path), actionID, nil
}

func (p *Provider) contentURI(path string) string {
	authority := contract.AuthorityA
	if len(p.Authorities) > 0 {
		authority = p.Authorities[0]
	}
	return contract.Scheme + "://" + authority + "/" + strings.TrimPrefix(path, "/")
}

func (p *Provider) route(uri string) (router.Route, error) {
	route, err := p.Router.ResolveURI(uri)
	if err != nil {
		return router.Route{}, err
	}
	if !stringutils.Contains(route.Authority, p.Authorities) {
		return router.Route{}, fmt.Errorf("authority %q of %s not served: %w", route.Authority, uri, router.ErrUnknownAuthority)
	}
	return route, nil
}
