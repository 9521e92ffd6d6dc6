package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/navshell/internal/errors"
)

func TestEmbedStore(t *testing.T) {
	store := NewEmbedStore()
	ctx := context.Background()

	for _, name := range Names {
		data, ct, err := store.Open(ctx, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
		assert.NotEmpty(t, ct, name)
	}

	css, ct, err := store.Open(ctx, Stylesheet)
	require.NoError(t, err)
	assert.Contains(t, ct, "text/css")
	assert.Contains(t, string(css), ".nav-link.active")

	_, _, err = store.Open(ctx, "missing.css")
	assert.Equal(t, "E401", errors.CodeOf(err))

	_, _, err = store.Open(ctx, "../store.go")
	assert.Equal(t, "E401", errors.CodeOf(err))
}

// fakeS3 serves objects from a map.
type fakeS3 struct {
	objects map[string]string
	types   map[string]string
	err     error
	keys    []string
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(params.Key)
	f.keys = append(f.keys, aws.ToString(params.Bucket)+"/"+key)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	out := &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}
	if ct, ok := f.types[key]; ok {
		out.ContentType = aws.String(ct)
	}
	return out, nil
}

func TestS3Store(t *testing.T) {
	fake := &fakeS3{
		objects: map[string]string{
			"v1/index.css": "body{}",
			"v1/nav.js":    "void 0;",
		},
		types: map[string]string{
			"v1/index.css": "text/css; charset=utf-8",
			"v1/nav.js":    "binary/octet-stream",
		},
	}
	store := newS3Store(fake, "assets", "/v1/")
	ctx := context.Background()

	data, ct, err := store.Open(ctx, Stylesheet)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))
	assert.Equal(t, "text/css; charset=utf-8", ct)

	_, ct, err = store.Open(ctx, Script)
	require.NoError(t, err)
	assert.NotEqual(t, "binary/octet-stream", ct, "generic S3 content type should be replaced")

	_, _, err = store.Open(ctx, "other.css")
	assert.Equal(t, "E401", errors.CodeOf(err))

	assert.Equal(t, []string{"assets/v1/index.css", "assets/v1/nav.js", "assets/v1/other.css"}, fake.keys)
}

func TestS3StoreFetchError(t *testing.T) {
	store := newS3Store(&fakeS3{err: fmt.Errorf("connection refused")}, "assets", "")

	_, _, err := store.Open(context.Background(), Stylesheet)
	assert.Equal(t, "E402", errors.CodeOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewS3Store(t *testing.T) {
	dir := t.TempDir()
	credentials := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(credentials, []byte("[deploy]\naws_access_key_id = AKIDPROFILE\naws_secret_access_key = secret\n"), 0o600))
	cfgFile := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(cfgFile, nil, 0o600))

	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credentials)
	t.Setenv("AWS_CONFIG_FILE", cfgFile)
	t.Setenv("AWS_PROFILE", "deploy")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

	ctx := context.Background()
	store, err := NewS3Store(ctx, S3Config{Bucket: "b", Prefix: "p", Region: "eu-west-1", Endpoint: "http://localhost:9000"})
	require.NoError(t, err)
	assert.Equal(t, "b", store.bucket)
	assert.Equal(t, "p/index.css", store.key(Stylesheet))

	client, ok := store.client.(*s3.Client)
	require.True(t, ok)
	opts := client.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	creds, err := opts.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AKIDPROFILE", creds.AccessKeyID, "shared profile credentials should be used")
}

func TestNewS3StoreWithoutEndpoint(t *testing.T) {
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

	store, err := NewS3Store(context.Background(), S3Config{Bucket: "b", Region: "us-east-1"})
	require.NoError(t, err)

	opts := store.client.(*s3.Client).Options()
	assert.Nil(t, opts.BaseEndpoint)
	assert.False(t, opts.UsePathStyle)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("nav.js", []byte("a"))
	b := Fingerprint("nav.js", []byte("b"))

	assert.True(t, strings.HasPrefix(a, "nav."))
	assert.True(t, strings.HasSuffix(a, ".js"))
	assert.Len(t, a, len("nav..js")+8)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Fingerprint("nav.js", []byte("a")))
}

func TestManifestResolver(t *testing.T) {
	m := NewManifest()
	m.Set("nav.js", "nav.abc.js")

	assert.Equal(t, "nav.abc.js", m.Resolve("nav.js"))
	assert.Equal(t, "/static/nav.abc.js", NewResolver(m, "/static/").Asset("nav.js"))
	assert.Equal(t, "/static/index.css", NewResolver(m, "/static/").Asset("index.css"))
	assert.Equal(t, "/static/nav.js", NewPassthroughResolver("/static/").Asset("nav.js"))
}

func TestCacheLoad(t *testing.T) {
	cache, err := Load(context.Background(), NewEmbedStore(), "/static/", Names...)
	require.NoError(t, err)

	entry, ok := cache.Get(Script)
	require.True(t, ok)
	assert.Equal(t, Script, entry.Name)

	byFingerprint, ok := cache.Get(entry.Fingerprint)
	require.True(t, ok)
	assert.Same(t, entry, byFingerprint)

	assert.Equal(t, "/static/"+entry.Fingerprint, cache.Resolver().Asset(Script))

	_, err = Load(context.Background(), NewEmbedStore(), "/static/", "nope.js")
	assert.Equal(t, "E401", errors.CodeOf(err))
}

func TestCacheServeHTTP(t *testing.T) {
	cache, err := Load(context.Background(), NewEmbedStore(), "/static/", Names...)
	require.NoError(t, err)
	entry, _ := cache.Get(Stylesheet)

	t.Run("plain name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cache.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/index.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Equal(t, entry.Data, rec.Body.Bytes())
	})

	t.Run("fingerprinted name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cache.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/"+entry.Fingerprint, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
	})

	t.Run("etag revalidation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/index.css", nil)
		req.Header.Set("If-None-Match", entry.ETag)
		rec := httptest.NewRecorder()
		cache.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("unknown", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cache.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
