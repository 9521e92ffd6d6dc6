// Package router resolves URL paths against an explicit route table and
// composes the matched layouts and page into one VNode tree.
//
// A route table is a tree of RouteNode values. The root (path "/") owns
// the layout shell; every other node renders into its parent's outlet:
//
//	table := router.RouteNode{
//	    Path:    "/",
//	    Content: Shell,
//	    Children: []router.RouteNode{
//	        {Path: "dashboard", Content: Dashboard},
//	        {Path: "about", Content: About},
//	    },
//	}
//
//	r, err := router.New(table)
//	node := r.Render("/about")
//
// # Matching
//
// Matching is root-first. The root matches every path unless End is set,
// in which case it only matches "/". Among a node's children, the first
// whose path equals the remaining path is selected; nested children are
// reached by segment-prefix descent. A path that selects no child still
// renders the root with an empty outlet. Unmatched paths are not errors.
//
// # Middleware
//
// Serve runs the matched resolution through the router's middleware chain
// before composing it, so metrics and tracing can observe every render.
package router
