package app

import (
	"github.com/vango-dev/navshell/internal/assets"
	"github.com/vango-dev/navshell/pkg/render"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// Paths shared by the document and the server.
const (
	StaticPrefix = "/static/"
	LivePath     = "/_shell/live"
	RootID       = "root"
)

// Asset names referenced by the document.
const (
	StylesheetName = "index.css"
	ScriptName     = "nav.js"
)

// Root wraps rendered shell markup in the element the client script
// connects from. Live renders patch the navigation bar and outlet inside it.
func Root(shell *vdom.VNode) *vdom.VNode {
	return vdom.Div(vdom.ID(RootID), vdom.Data("live", LivePath), shell)
}

// Document returns the page data for a full HTML response. asset maps an
// asset name to its URL; nil serves names as-is under StaticPrefix.
func Document(shell *vdom.VNode, asset func(name string) string) render.PageData {
	if asset == nil {
		asset = assets.NewPassthroughResolver(StaticPrefix).Asset
	}
	return render.PageData{
		Title:       "My App",
		Body:        Root(shell),
		StyleSheets: []string{asset(StylesheetName)},
		Scripts:     []render.ScriptTag{{Src: asset(ScriptName), Defer: true}},
		Meta:        []render.MetaTag{{Name: "description", Content: "Routed layout shell with client-side navigation"}},
	}
}
