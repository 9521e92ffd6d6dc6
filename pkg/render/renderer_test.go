package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/navshell/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<b>hi</b>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "&lt;b&gt;hi&lt;/b&gt;" {
		t.Errorf("got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("app"),
		vdom.H1(vdom.Class("app-header"), vdom.Text("My App!")),
		vdom.Main(vdom.Class("outlet")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="app"><h1 class="app-header">My App!</h1><main class="outlet"></main></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.A(vdom.Href("/about"), vdom.Class("nav-link"), vdom.Data("link", "true"))
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a class="nav-link" data-link="true" href="/about"></a>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidAndBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "input",
			node: vdom.Input(vdom.Type("password"), vdom.Name("password")),
			want: `<input name="password" type="password">`,
		},
		{
			name: "required true",
			node: vdom.Input(vdom.Name("username"), vdom.Required()),
			want: `<input name="username" required>`,
		},
		{
			name: "disabled false",
			node: vdom.Button(vdom.AttrIf(false, vdom.Disabled())),
			want: `<button></button>`,
		},
		{
			name: "int attribute",
			node: vdom.CustomElement("td", vdom.Attr{Key: "colspan", Value: 2}),
			want: `<td colspan="2"></td>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFragmentComponentRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	comp := vdom.Func(func() *vdom.VNode { return vdom.H1("Login") })
	node := vdom.Fragment(vdom.Raw("<!-- x -->"), comp, "tail")
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<!-- x --><h1>Login</h1>tail" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("RenderToString(nil) = %q, %v", html, err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	_, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	html, err := renderer.RenderToString(vdom.Div(vdom.H1("a")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(html, "<div>\n  <h1>") {
		t.Errorf("expected indented child, got %q", html)
	}
}

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "My App & co",
		Body:        vdom.Div(vdom.ID("root")),
		StyleSheets: []string{"/static/index.css"},
		Meta:        []MetaTag{{Name: "description", Content: "nav demo"}},
		Scripts: []ScriptTag{
			{Src: "/static/nav.js", Defer: true},
			{Inline: "window.x=1;"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	checks := []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>My App &amp; co</title>",
		`<meta name="description" content="nav demo">`,
		`<link rel="stylesheet" href="/static/index.css">`,
		`<script src="/static/nav.js" defer></script>`,
		`<div id="root"></div>`,
		"<script>window.x=1;</script>\n</body>",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}

	head := html[:strings.Index(html, "</head>")]
	if strings.Contains(head, "window.x") {
		t.Error("non-deferred script should be rendered in body, not head")
	}
}
