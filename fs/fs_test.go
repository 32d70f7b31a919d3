package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/chatview"
	"github.com/fwojciec/chatview/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	t.Parallel()

	t.Run("matches files recursively", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte(""), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "a.md"), []byte(""), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep", "c.md"), []byte(""), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.txt"), []byte(""), 0o644))

		got, err := fs.Glob(dir, "**/*.md")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.md"),
			filepath.Join(dir, "sub", "a.md"),
			filepath.Join(dir, "sub", "deep", "c.md"),
		}, got)
	})

	t.Run("skips directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "x.md"), 0o755))
		got, err := fs.Glob(dir, "*.md")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects malformed pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Glob(t.TempDir(), "[")
		assert.ErrorIs(t, err, chatview.ErrValidation)
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Glob(t.TempDir(), "")
		assert.ErrorIs(t, err, chatview.ErrValidation)
	})

	t.Run("rejects file as dir", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "f")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := fs.Glob(path, "*")
		assert.ErrorIs(t, err, chatview.ErrValidation)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads content with role", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "m.md")
		require.NoError(t, os.WriteFile(path, []byte("# hi\n"), 0o644))
		msg, err := fs.Load(path, chatview.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, chatview.Message{Content: "# hi\n", Role: chatview.RoleUser}, msg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Load(filepath.Join(t.TempDir(), "nope"), chatview.RoleUser)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe}, 0o644))
		_, err := fs.Load(path, chatview.RoleAssistant)
		assert.ErrorIs(t, err, chatview.ErrValidation)
	})
}

func TestRead(t *testing.T) {
	t.Parallel()
	msg, err := fs.Read(strings.NewReader("hello"), chatview.RoleAssistant)
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, chatview.RoleAssistant, msg.Role)
}
