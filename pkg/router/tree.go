package router

import (
	"strings"

	"github.com/vango-dev/navshell/internal/errors"
	"github.com/vango-dev/navshell/pkg/routepath"
)

// buildTable validates root and returns a deep copy with full and
// relative paths filled in. The caller's table is never retained.
func buildTable(root RouteNode) (*RouteNode, error) {
	if root.Content == nil {
		return nil, errors.New("E202").
			WithDetail("the root route has no content").
			WithSuggestion("Set Content on the root node to the layout shell")
	}
	if root.Path != "/" {
		return nil, errors.New("E203").
			WithDetailf("got %q", root.Path)
	}

	out := &RouteNode{
		Path:    root.Path,
		Content: root.Content,
		End:     root.End,
		full:    "/",
	}
	children, err := buildChildren(out.full, root.Children)
	if err != nil {
		return nil, err
	}
	out.Children = children
	return out, nil
}

func buildChildren(parentFull string, children []RouteNode) ([]RouteNode, error) {
	if len(children) == 0 {
		return nil, nil
	}

	out := make([]RouteNode, 0, len(children))
	seen := make(map[string]bool, len(children))
	for _, child := range children {
		rel, err := relativePath(parentFull, child.Path)
		if err != nil {
			return nil, err
		}
		if seen[rel] {
			return nil, errors.New("E201").
				WithDetailf("%q appears twice under %q", rel, parentFull).
				WithSuggestion("Give each sibling route a distinct path")
		}
		seen[rel] = true

		full := joinPath(parentFull, rel)
		grand, err := buildChildren(full, child.Children)
		if err != nil {
			return nil, err
		}
		out = append(out, RouteNode{
			Path:     child.Path,
			Content:  child.Content,
			Children: grand,
			End:      child.End,
			full:     full,
			rel:      rel,
		})
	}
	return out, nil
}

// relativePath normalizes a child path to the form matched against the
// remaining path: canonical, no leading or trailing slash.
func relativePath(parentFull, path string) (string, error) {
	if path == "" || path == "/" {
		return "", errors.New("E204").
			WithDetailf("child of %q has path %q", parentFull, path)
	}

	if strings.HasPrefix(path, "/") {
		prefix := parentFull
		if prefix != "/" {
			prefix += "/"
		}
		if !strings.HasPrefix(path, prefix) || len(path) == len(prefix) {
			return "", errors.New("E205").
				WithDetailf("%q is not under %q", path, parentFull).
				WithSuggestion("Use a path relative to the parent route")
		}
		path = path[len(prefix):]
	}

	result, err := routepath.Canonicalize("/" + path)
	if err != nil || result.Query != "" || result.Path != "/"+path {
		return "", errors.New("E205").
			WithDetailf("%q under %q is not a canonical path", path, parentFull)
	}
	return path, nil
}

func joinPath(parentFull, rel string) string {
	if parentFull == "/" {
		return "/" + rel
	}
	return parentFull + "/" + rel
}

// matchChildren selects the child chain for remaining (no leading slash).
// An exact match among siblings wins over descent into a nested child.
func matchChildren(children []RouteNode, remaining string) []*RouteNode {
	if remaining == "" {
		return nil
	}

	for i := range children {
		if children[i].rel == remaining {
			return []*RouteNode{&children[i]}
		}
	}

	for i := range children {
		child := &children[i]
		if len(child.Children) == 0 {
			continue
		}
		rest, ok := strings.CutPrefix(remaining, child.rel+"/")
		if !ok {
			continue
		}
		if chain := matchChildren(child.Children, rest); chain != nil {
			return append([]*RouteNode{child}, chain...)
		}
	}
	return nil
}

// walk visits every node depth-first in table order.
func (n *RouteNode) walk(depth int, fn func(node *RouteNode, depth int)) {
	fn(n, depth)
	for i := range n.Children {
		n.Children[i].walk(depth+1, fn)
	}
}
