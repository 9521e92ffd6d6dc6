// Package vdom provides the virtual DOM used to build navshell pages.
//
// Pages, the layout shell, and the navigation bar are all expressed as VNode
// trees on the server. The render package turns a tree into HTML, either as
// a full document or as a fragment pushed over the live navigation socket.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes. Attr values
// are built with helpers such as Class, Href, and Name.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("app"),
//	    H1(Class("app-header"), Text("My App!")),
//	    Main(Class("outlet"), outlet),
//	)
//
// Repeated Class attributes on one element accumulate, so conditional
// classes compose:
//
//	A(Class("nav-link"), ClassIf(active, "active"), Href("/about"), Text("About"))
package vdom
