package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/navshell/internal/assets"
	"github.com/vango-dev/navshell/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "render", "/dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 class="app-header">My App!</h1>`)
	assert.Contains(t, out, "<h1>Dashboard!</h1>")
	assert.NotContains(t, out, "<!DOCTYPE html>")
}

func TestRenderCommandDocument(t *testing.T) {
	out, _, err := execute(t, "render", "/login", "--document")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `href="/static/index.css"`)
	assert.Contains(t, out, `<button type="submit">Login</button>`)
}

func TestRenderCommandInvalidPath(t *testing.T) {
	out, errOut, err := execute(t, "render", `/a\b`)
	require.NoError(t, err)
	assert.Contains(t, errOut, "not a valid path")
	assert.Contains(t, out, `<main class="outlet"></main>`)
}

func TestRenderCommandRequiresPath(t *testing.T) {
	_, _, err := execute(t, "render")
	assert.Error(t, err)
}

func TestRoutesCommand(t *testing.T) {
	out, _, err := execute(t, "routes")
	require.NoError(t, err)

	assert.Contains(t, out, "ROUTE")
	assert.Contains(t, out, "  /dashboard")
	assert.Contains(t, out, "layout")
	for _, label := range []string{"Home", "Dashboard", "About", "Login"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "exact")
	assert.Contains(t, out, "all navigation links resolve")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "navshell "+version)
	assert.Contains(t, out, "Go version:")
}

func TestServeRejectsBadPort(t *testing.T) {
	_, _, err := execute(t, "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E122")
}

func TestServeFlagsOverrideEnv(t *testing.T) {
	t.Setenv("NAVSHELL_PORT", "99999")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	// The flag rescues the bad env port; the bind then fails on the busy port.
	_, _, err = execute(t, "serve", "--host", "127.0.0.1", "--port", port)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E501")
}

func TestServeRejectsMissingConfig(t *testing.T) {
	_, _, err := execute(t, "serve", "--config", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E141")
}

func TestNewStore(t *testing.T) {
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	ctx := context.Background()

	cfg := config.New()
	store, err := newStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &assets.EmbedStore{}, store)

	cfg.Assets.Bucket = "navshell-assets"
	cfg.Assets.Region = "eu-west-1"
	store, err = newStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &assets.S3Store{}, store)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.New()
	cfg.Log.Format = "text"
	newLogger(&buf, cfg).Info("hello", "path", "/about")
	assert.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	cfg.Log.Format = "json"
	newLogger(&buf, cfg).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger(&buf, cfg).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestMain(m *testing.M) {
	// Keep config resolution independent of the developer's environment.
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NAVSHELL_") {
			os.Unsetenv(kv[:strings.IndexByte(kv, '=')])
		}
	}
	os.Exit(m.Run())
}
