package assets

import (
	"context"
	"embed"
	"io/fs"

	"github.com/vango-dev/navshell/internal/errors"
)

//go:embed static
var embedded embed.FS

// EmbedStore serves the assets compiled into the binary.
type EmbedStore struct {
	fsys fs.FS
}

// NewEmbedStore creates a store over the embedded static directory.
func NewEmbedStore() *EmbedStore {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return &EmbedStore{fsys: sub}
}

// Open implements Store.
func (s *EmbedStore) Open(_ context.Context, name string) ([]byte, string, error) {
	if !fs.ValidPath(name) {
		return nil, "", errors.New("E401").WithDetailf("%q", name)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, "", errors.New("E401").WithDetailf("%q is not embedded", name).Wrap(err)
	}
	return data, contentType(name), nil
}
