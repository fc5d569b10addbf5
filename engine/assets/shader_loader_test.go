package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets", "shaders"), 0o755))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadShaderNullTerminates(t *testing.T) {
	dir := chdirTemp(t)
	src := "#version 330 core\nvoid main() {}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "shaders", "a.vert"), []byte(src), 0o644))

	got, err := LoadShader("a.vert")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "\x00"))
	assert.Equal(t, src, strings.TrimRight(got, "\x00"))
}

func TestLoadShaderMissingFile(t *testing.T) {
	chdirTemp(t)
	_, err := LoadShader("nope.vert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.vert")
}

func TestLoadShaderEmptyFileStaysEmpty(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "shaders", "empty.frag"), nil, 0o644))

	// An empty file loads fine; rejecting it is the shader compiler's job.
	got, err := LoadShader("empty.frag")
	require.NoError(t, err)
	assert.Equal(t, "\x00", got)
}

func TestLoadShaderPair(t *testing.T) {
	dir := chdirTemp(t)
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "shaders", name), []byte(body), 0o644))
	}
	write("ok.vert", "x")

	_, _, err := LoadShaderPair("ok.vert", "missing.frag")
	assert.Error(t, err)

	write("ok.frag", "y")
	vs, fs, err := LoadShaderPair("ok.vert", "ok.frag")
	require.NoError(t, err)
	assert.Equal(t, "x\x00", vs)
	assert.Equal(t, "y\x00", fs)
}
