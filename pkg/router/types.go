package router

import (
	"context"

	"github.com/vango-dev/navshell/pkg/vdom"
)

// Slot is the rendered content a layout places in its outlet.
// A nil Slot renders nothing.
type Slot = *vdom.VNode

// Ctx is passed to route content when a resolution is composed.
type Ctx struct {
	// Path is the canonical path being rendered.
	Path string

	// Outlet is the composed content of the matched child, if any.
	Outlet Slot
}

// Content renders a route node.
type Content func(ctx Ctx) *vdom.VNode

// RouteNode is one entry in the route table.
type RouteNode struct {
	// Path is "/" for the root. Child paths are relative to their parent
	// ("dashboard") or absolute under it ("/settings/profile").
	Path string

	// Content renders the node. Layouts place ctx.Outlet somewhere in
	// their output; pages usually ignore it.
	Content Content

	// Children are nested routes, matched in order.
	Children []RouteNode

	// End makes the node match exactly instead of by prefix.
	// Only meaningful on the root.
	End bool

	// full is the canonical absolute path, set during validation.
	full string
	// rel is the path relative to the parent, without a leading slash.
	rel string
}

// FullPath returns the canonical absolute path of a validated node.
func (n *RouteNode) FullPath() string {
	return n.full
}

// Resolution is the result of matching a path against the route table.
type Resolution struct {
	// Path is the canonical path (or the raw input when Invalid).
	Path string

	// Invalid reports that the input could not be canonicalized.
	Invalid bool

	// Layout is the root node, or nil if the root did not match.
	Layout *RouteNode

	// Page is the deepest matched child, or nil for an empty slot.
	Page *RouteNode

	// Chain holds every matched node from the root to the page.
	Chain []*RouteNode
}

// Matched reports whether the path selected a route: either a page, or
// the root itself when the path is exactly "/".
func (r *Resolution) Matched() bool {
	if r.Page != nil {
		return true
	}
	return r.Layout != nil && !r.Invalid && r.Path == "/"
}

// Route returns the full path of the selected route, or "" when unmatched.
func (r *Resolution) Route() string {
	if !r.Matched() {
		return ""
	}
	return r.Chain[len(r.Chain)-1].full
}

// RouteInfo is one row of the flat route listing.
type RouteInfo struct {
	Path   string
	Depth  int
	Layout bool
}

// Request is passed through the middleware chain by Serve.
type Request struct {
	// Path is the path as received.
	Path string

	// Source names the caller ("http", "live", "cli").
	Source string

	// Resolution is filled before the chain runs.
	Resolution *Resolution

	// Node is the composed tree, set once the final handler has run.
	Node *vdom.VNode

	// Outlet is what the root received as its outlet: the composed page
	// below the layout, or nil for an empty slot.
	Outlet *vdom.VNode
}

// Middleware wraps a render.
type Middleware interface {
	// Handle processes the request and optionally calls next.
	// Return an error to stop the chain and report an error.
	// Return nil without calling next to stop the chain without error.
	Handle(ctx context.Context, req *Request, next func(ctx context.Context) error) error
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(ctx context.Context, req *Request, next func(ctx context.Context) error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx context.Context, req *Request, next func(ctx context.Context) error) error {
	return f(ctx, req, next)
}
