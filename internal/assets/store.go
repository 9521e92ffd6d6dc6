// Package assets loads the stylesheet and client script served beside the
// shell, from the binary or from an S3 bucket, and serves them from memory.
package assets

import (
	"context"
	"mime"
	"path"
)

// Names of the assets every deployment serves.
const (
	Stylesheet = "index.css"
	Script     = "nav.js"
)

// Names lists the required assets.
var Names = []string{Stylesheet, Script}

// Store loads assets by name.
type Store interface {
	// Open returns the asset body and its content type.
	// A missing asset is an E401 error.
	Open(ctx context.Context, name string) ([]byte, string, error)
}

// contentType guesses a content type from the asset name.
func contentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
