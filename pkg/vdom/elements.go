package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string, or
// a []any holding any of those.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

func (node *VNode) apply(arg any) {
	switch v := arg.(type) {
	case nil:
		// Ignore nil (allows conditional children)

	case Attr:
		node.setAttr(v)

	case []Attr:
		for _, a := range v {
			node.setAttr(a)
		}

	case *VNode:
		if v != nil {
			node.Children = append(node.Children, v)
		}

	case []*VNode:
		for _, child := range v {
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}

	case []any:
		for _, item := range v {
			node.apply(item)
		}

	case Component:
		node.Children = append(node.Children, &VNode{
			Kind: KindComponent,
			Comp: v,
		})

	case string:
		node.Children = append(node.Children, Text(v))
	}
}

// setAttr stores an attribute. Repeated class attributes accumulate.
func (node *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	if a.Key == "class" {
		if existing, ok := node.Props["class"].(string); ok && existing != "" {
			if s, ok := a.Value.(string); ok && s != "" {
				node.Props["class"] = existing + " " + s
				return
			}
			return
		}
	}
	node.Props[a.Key] = a.Value
}

// Elements used by the shell and its pages

func Div(args ...any) *VNode    { return createElement("div", args) }
func Main(args ...any) *VNode   { return createElement("main", args) }
func Nav(args ...any) *VNode    { return createElement("nav", args) }
func H1(args ...any) *VNode     { return createElement("h1", args) }
func A(args ...any) *VNode      { return createElement("a", args) }
func Form(args ...any) *VNode   { return createElement("form", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }

// CustomElement creates an element with an arbitrary tag name.
func CustomElement(tag string, args ...any) *VNode {
	return createElement(tag, args)
}
