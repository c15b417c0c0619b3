package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/uploads/")
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "avatar.PNG", "image/png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, "/uploads/"), "ref %q should carry the public path", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "extension should be preserved lowercased")

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestDiskStore_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/uploads")
	require.NoError(t, err)

	first, err := store.Save(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same original filename must not collide")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestNewDiskStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
