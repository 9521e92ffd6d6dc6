package router

import (
	"strings"

	"github.com/vango-dev/navshell/pkg/routepath"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// MatchMode controls how a link target is compared to the current path.
type MatchMode int

const (
	// MatchPrefix marks a link active on its target and everything below it.
	MatchPrefix MatchMode = iota
	// MatchExact marks a link active only on its target.
	MatchExact
)

// String returns the mode name.
func (m MatchMode) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "prefix"
}

// IsActive reports whether a link to target is active at current.
// Both paths are canonicalized first; a path that cannot be canonicalized
// is never active. Prefix matching is segment-aware, so "/about" is not
// active at "/aboutus", and a prefix target of "/" matches everything.
func IsActive(current, target string, mode MatchMode) bool {
	cur, err := routepath.Canonicalize(current)
	if err != nil {
		return false
	}
	tgt, err := routepath.Canonicalize(target)
	if err != nil {
		return false
	}

	if mode == MatchExact {
		return cur.Path == tgt.Path
	}
	if tgt.Path == "/" || cur.Path == tgt.Path {
		return true
	}
	return strings.HasPrefix(cur.Path, tgt.Path+"/")
}

// Link creates an anchor element with client-side navigation.
// The client script intercepts clicks on data-link anchors and sends a
// navigate frame instead of performing a full page load.
func Link(href string, children ...any) *vdom.VNode {
	return vdom.A(
		vdom.Href(href),
		DataLink(),
		children,
	)
}

// ActiveLink creates a Link that carries the "active" class and
// aria-current="page" when href is active at current.
func ActiveLink(current, href string, mode MatchMode, children ...any) *vdom.VNode {
	active := IsActive(current, href, mode)
	return Link(href,
		children,
		vdom.ClassIf(active, "active"),
		vdom.AttrIf(active, vdom.AriaCurrent("page")),
	)
}

// DataLink creates an anchor attribute that enables client-side navigation.
func DataLink() vdom.Attr {
	return vdom.Data("link", "true")
}
