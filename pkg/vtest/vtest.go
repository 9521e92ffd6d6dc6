package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/navshell/pkg/render"
	"github.com/vango-dev/navshell/pkg/router"
	"github.com/vango-dev/navshell/pkg/vdom"
)

// CtxBuilder builds router.Ctx values for calling route content directly.
type CtxBuilder struct {
	path   string
	outlet *vdom.VNode
}

// NewCtx creates a context builder for path.
//
// Example:
//
//	ctx := vtest.NewCtx("/about").WithOutlet(vdom.H1("x")).Build()
//	node := app.Shell(ctx)
func NewCtx(path string) *CtxBuilder {
	return &CtxBuilder{path: path}
}

// WithOutlet sets the content handed to a layout.
func (b *CtxBuilder) WithOutlet(node *vdom.VNode) *CtxBuilder {
	b.outlet = node
	return b
}

// Build returns the router context.
func (b *CtxBuilder) Build() router.Ctx {
	return router.Ctx{Path: b.path, Outlet: b.outlet}
}

// RenderToString renders a VNode to HTML for assertions.
// Render errors produce an empty string.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, node, "<h1>Dashboard!</h1>")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	if len(vdom.FindAll(node, tag)) == 0 {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(RenderToString(node), 500))
	}
}

// ExpectCount asserts how many elements with tag the tree holds.
func ExpectCount(t testing.TB, node *vdom.VNode, tag string, want int) {
	t.Helper()
	if got := len(vdom.FindAll(node, tag)); got != want {
		t.Errorf("expected %d <%s> elements, got %d:\n%s", want, tag, got, truncate(RenderToString(node), 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "aria-current", "page")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// Headings returns the text of every h1 in the tree, in document order.
func Headings(node *vdom.VNode) []string {
	var out []string
	for _, h := range vdom.FindAll(node, "h1") {
		out = append(out, vdom.TextContent(h))
	}
	return out
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
