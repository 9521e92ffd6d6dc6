// Package nav renders the navigation bar and owns its link list.
package nav

import (
	"github.com/vango-dev/navshell/pkg/router"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// Link is one destination in the navigation bar.
type Link struct {
	Label  string
	Target string
	Match  router.MatchMode
}

// links is kept in display order. Home matches exactly so it is not
// active on every page.
var links = []Link{
	{Label: "Home", Target: "/", Match: router.MatchExact},
	{Label: "Dashboard", Target: "/dashboard", Match: router.MatchPrefix},
	{Label: "About", Target: "/about", Match: router.MatchPrefix},
	{Label: "Login", Target: "/login", Match: router.MatchPrefix},
}

// Links returns a copy of the link list.
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

// Targets returns the link targets in display order.
func Targets() []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.Target
	}
	return out
}

// Bar renders the navigation bar for the current path.
func Bar(current string) *vdom.VNode {
	return vdom.Nav(vdom.Class("nav-bar"),
		vdom.Range(links, func(l Link, _ int) *vdom.VNode {
			return router.ActiveLink(current, l.Target, l.Match, vdom.Class("nav-link"), l.Label)
		}),
	)
}

// Active returns the labels of the links active at current.
func Active(current string) []string {
	var out []string
	for _, l := range links {
		if router.IsActive(current, l.Target, l.Match) {
			out = append(out, l.Label)
		}
	}
	return out
}

// Check reports link targets the router cannot resolve to a route.
func Check(r *router.Router) []string {
	return r.Unresolvable(Targets())
}
