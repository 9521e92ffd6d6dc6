// Package app defines the navshell layout shell, its pages, and the route
// table that ties them together.
package app

import (
	"github.com/vango-dev/navshell/internal/nav"
	"github.com/vango-dev/navshell/pkg/router"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// Title is the application heading shown on every page.
const Title = "My App!"

// Shell renders the persistent frame: header, navigation bar, and the
// outlet holding the active page. A nil outlet renders an empty main.
func Shell(ctx router.Ctx) *vdom.VNode {
	return vdom.Div(vdom.Class("app"),
		vdom.H1(vdom.Class("app-header"), Title),
		nav.Bar(ctx.Path),
		vdom.Main(vdom.Class("outlet"), ctx.Outlet),
	)
}

// Routes returns the route table. The root owns the shell; the pages
// render into its outlet.
func Routes() router.RouteNode {
	return router.RouteNode{
		Path:    "/",
		Content: Shell,
		Children: []router.RouteNode{
			{Path: "dashboard", Content: Dashboard},
			{Path: "about", Content: About},
			{Path: "login", Content: Login},
		},
	}
}

// NewRouter builds a router over Routes.
func NewRouter() (*router.Router, error) {
	return router.New(Routes())
}
