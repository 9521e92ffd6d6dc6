package assets

import (
	"bytes"
	"context"
	"net/http"
	"path"
	"time"
)

// Entry is one loaded asset.
type Entry struct {
	Name        string
	Fingerprint string
	ContentType string
	ETag        string
	Data        []byte
}

// Cache holds every asset in memory, addressable by plain or fingerprinted
// name. It is filled once by Load and read-only afterwards.
type Cache struct {
	entries  map[string]*Entry
	manifest *Manifest
	prefix   string
	loadedAt time.Time
}

// Load reads names from store into a new cache. prefix is the URL path the
// cache is mounted under (e.g. "/static/"). Any failure aborts the load.
func Load(ctx context.Context, store Store, prefix string, names ...string) (*Cache, error) {
	c := &Cache{
		entries:  make(map[string]*Entry, len(names)*2),
		manifest: NewManifest(),
		prefix:   prefix,
		loadedAt: time.Now(),
	}

	for _, name := range names {
		data, ct, err := store.Open(ctx, name)
		if err != nil {
			return nil, err
		}
		fp := Fingerprint(name, data)
		entry := &Entry{
			Name:        name,
			Fingerprint: fp,
			ContentType: ct,
			ETag:        `"` + fp + `"`,
			Data:        data,
		}
		c.entries[name] = entry
		c.entries[fp] = entry
		c.manifest.Set(name, fp)
	}
	return c, nil
}

// Get returns the asset stored under a plain or fingerprinted name.
func (c *Cache) Get(name string) (*Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Resolver returns URLs for the fingerprinted assets.
func (c *Cache) Resolver() Resolver {
	return NewResolver(c.manifest, c.prefix)
}

// ServeHTTP serves the asset named by the last path element. Fingerprinted
// URLs are cached indefinitely; plain names revalidate via ETag.
func (c *Cache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)
	entry, ok := c.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", entry.ContentType)
	w.Header().Set("ETag", entry.ETag)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if name == entry.Fingerprint {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	http.ServeContent(w, r, name, c.loadedAt, bytes.NewReader(entry.Data))
}
