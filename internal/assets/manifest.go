package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"strings"
)

// Manifest maps asset names to their fingerprinted names:
//
//	{
//	  "index.css": "index.3f2a9c1b.css",
//	  "nav.js": "nav.8d04e7aa.js"
//	}
//
// A manifest is filled while assets load and only read afterwards.
type Manifest struct {
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Resolve returns the fingerprinted name for the given name.
// If not found, returns the name unchanged.
func (m *Manifest) Resolve(name string) string {
	if resolved, ok := m.entries[name]; ok {
		return resolved
	}
	return name
}

// Set adds or updates an entry in the manifest.
func (m *Manifest) Set(name, resolved string) {
	m.entries[name] = resolved
}

// Fingerprint inserts a short content hash before the extension:
// "nav.js" becomes "nav.8d04e7aa.js".
func Fingerprint(name string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:4])
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + hash + ext
}

// Resolver provides asset URL resolution.
type Resolver interface {
	// Asset resolves an asset name to its URL path, including any prefix
	// and fingerprint.
	Asset(name string) string
}

// manifestResolver wraps a Manifest to implement Resolver.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver from a Manifest with a path prefix.
//
//	resolver := assets.NewResolver(manifest, "/static/")
//	resolver.Asset("nav.js") // "/static/nav.8d04e7aa.js"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(name string) string {
	return r.prefix + r.manifest.Resolve(name)
}

// passthrough returns names unchanged apart from the prefix.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that only applies the prefix.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(name string) string {
	return p.prefix + name
}
