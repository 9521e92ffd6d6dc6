// Package render provides server-side rendering (SSR) for VNode trees.
//
// The render package converts VNode trees into HTML strings or streams:
//
//   - Proper text and attribute escaping
//   - Void element handling (input, br, link)
//   - Boolean attribute handling (disabled, required)
//   - Deterministic attribute order
//   - Full document rendering with DOCTYPE, head, and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title:       "My App",
//	    Body:        shell,
//	    StyleSheets: []string{"/static/index.css"},
//	})
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted using KindRaw nodes,
// but only with trusted content.
package render
