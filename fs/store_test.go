package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeDocument(url string) *readable.Document {
	return &readable.Document{SourceURL: url, Title: "T", Content: "<p>Body</p>"}
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("writes to the temporary directory until commit", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewFileStore(base, "output", upperConverter())

		err := store.CreateDocument(context.Background(), storeDocument("https://example.com/blog/post"))

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "output.tmp", "blog", "post.md"))
		require.NoError(t, err, "file should exist in temp directory")
		_, err = os.Stat(filepath.Join(base, "output", "blog", "post.md"))
		assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
	})

	t.Run("commit moves documents into a missing output directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewFileStore(base, "output", upperConverter())
		require.NoError(t, store.Prepare())
		require.NoError(t, store.CreateDocument(context.Background(), storeDocument("https://example.com/a")))

		require.NoError(t, store.Commit())

		_, err := os.Stat(filepath.Join(base, "output", "a.md"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "output.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit fills an existing empty output directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "output"), 0755))
		store := fs.NewFileStore(base, "output", upperConverter())
		require.NoError(t, store.Prepare())
		require.NoError(t, store.CreateDocument(context.Background(), storeDocument("https://example.com/a")))

		require.NoError(t, store.Commit())

		_, err := os.Stat(filepath.Join(base, "output", "a.md"))
		assert.NoError(t, err)
	})

	t.Run("prepare refuses a non-empty output directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		precious := filepath.Join(base, "notes", "precious.txt")
		require.NoError(t, os.MkdirAll(filepath.Dir(precious), 0755))
		require.NoError(t, os.WriteFile(precious, []byte("keep me"), 0644))
		store := fs.NewFileStore(base, "notes", upperConverter())

		err := store.Prepare()

		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
		content, err := os.ReadFile(precious)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(content))
	})

	t.Run("commit never removes existing files", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		precious := filepath.Join(base, "notes", "precious.txt")
		require.NoError(t, os.MkdirAll(filepath.Dir(precious), 0755))
		require.NoError(t, os.WriteFile(precious, []byte("keep me"), 0644))
		store := fs.NewFileStore(base, "notes", nil)

		err := store.Commit()

		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
		_, err = os.Stat(precious)
		assert.NoError(t, err)
	})

	t.Run("prepare clears a stale temporary directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		stale := filepath.Join(base, "output.tmp", "old.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
		require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))
		store := fs.NewFileStore(base, "output", upperConverter())

		require.NoError(t, store.Prepare())
		require.NoError(t, store.CreateDocument(context.Background(), storeDocument("https://example.com/a")))
		require.NoError(t, store.Commit())

		_, err := os.Stat(filepath.Join(base, "output", "old.md"))
		assert.True(t, os.IsNotExist(err), "stale files must not be committed")
		_, err = os.Stat(filepath.Join(base, "output", "a.md"))
		assert.NoError(t, err)
	})

	t.Run("commit without documents leaves an empty directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewFileStore(base, "output", upperConverter())

		require.NoError(t, store.Commit())

		entries, err := os.ReadDir(filepath.Join(base, "output"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("abort removes the temporary directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewFileStore(base, "output", upperConverter())
		require.NoError(t, store.CreateDocument(context.Background(), storeDocument("https://example.com/a")))

		require.NoError(t, store.Abort())

		_, err := os.Stat(filepath.Join(base, "output.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()

		store := fs.NewFileStore(t.TempDir(), "output", upperConverter())

		err := store.CreateDocument(context.Background(), storeDocument("https://example.com/../../../etc/passwd"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "path traversal")
	})
}
