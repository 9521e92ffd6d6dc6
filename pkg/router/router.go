package router

import (
	"context"
	"strings"

	"github.com/vango-dev/navshell/pkg/routepath"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// Router resolves paths against a validated route table.
// The table is immutable after New; Use must be called before the router
// is shared between goroutines.
type Router struct {
	root       *RouteNode
	middleware []Middleware
}

// New validates root and builds a router over a private copy of it.
func New(root RouteNode) (*Router, error) {
	table, err := buildTable(root)
	if err != nil {
		return nil, err
	}
	return &Router{root: table}, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(root RouteNode) *Router {
	r, err := New(root)
	if err != nil {
		panic(err)
	}
	return r
}

// Use adds middleware that wraps every Serve call.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// Resolve matches path against the route table.
func (r *Router) Resolve(path string) *Resolution {
	result, err := routepath.Canonicalize(path)
	if err != nil {
		return &Resolution{
			Path:    path,
			Invalid: true,
			Layout:  r.root,
			Chain:   []*RouteNode{r.root},
		}
	}

	res := &Resolution{Path: result.Path}
	if r.root.End && result.Path != "/" {
		return res
	}

	res.Layout = r.root
	res.Chain = append([]*RouteNode{r.root}, matchChildren(r.root.Children, strings.TrimPrefix(result.Path, "/"))...)
	if len(res.Chain) > 1 {
		res.Page = res.Chain[len(res.Chain)-1]
	}
	return res
}

// Render resolves path and composes the result.
func (r *Router) Render(path string) *vdom.VNode {
	return Compose(r.Resolve(path))
}

// Compose renders a resolution from the page outward, handing each node's
// output to its parent as the outlet.
func Compose(res *Resolution) *vdom.VNode {
	node, _ := compose(res)
	return node
}

// compose also returns what the root received as its outlet.
func compose(res *Resolution) (node, outlet *vdom.VNode) {
	if res == nil {
		return nil, nil
	}
	var slot Slot
	for i := len(res.Chain) - 1; i >= 0; i-- {
		if i == 0 {
			outlet = slot
		}
		n := res.Chain[i]
		if n.Content == nil {
			continue
		}
		slot = n.Content(Ctx{Path: res.Path, Outlet: slot})
	}
	return slot, outlet
}

// Serve resolves path and composes it inside the middleware chain.
// source identifies the caller for middleware that labels renders.
func (r *Router) Serve(ctx context.Context, path, source string) (*Request, error) {
	req := &Request{
		Path:       path,
		Source:     source,
		Resolution: r.Resolve(path),
	}
	err := ComposeMiddleware(ctx, req, r.middleware, func(ctx context.Context) error {
		req.Node, req.Outlet = compose(req.Resolution)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Routes returns the route table flattened depth-first.
func (r *Router) Routes() []RouteInfo {
	var out []RouteInfo
	r.root.walk(0, func(node *RouteNode, depth int) {
		out = append(out, RouteInfo{
			Path:   node.full,
			Depth:  depth,
			Layout: len(node.Children) > 0,
		})
	})
	return out
}

// Unresolvable returns the targets that select no route.
func (r *Router) Unresolvable(targets []string) []string {
	var out []string
	for _, target := range targets {
		if !r.Resolve(target).Matched() {
			out = append(out, target)
		}
	}
	return out
}
