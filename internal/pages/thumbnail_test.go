package pages

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailLoaderMissing(t *testing.T) {
	loader, err := NewThumbnailLoader(t.TempDir(), 150, 8)
	require.NoError(t, err)

	_, err = loader.Load("001.png")
	assert.ErrorIs(t, err, ErrNoThumbnail)

	_, err = loader.Load("")
	assert.ErrorIs(t, err, ErrNoThumbnail)
}

func TestThumbnailLoaderMissingDirectory(t *testing.T) {
	loader, err := NewThumbnailLoader(filepath.Join(t.TempDir(), "_Thumbs"), 150, 8)
	require.NoError(t, err)

	_, err = loader.Load("001.png")
	assert.ErrorIs(t, err, ErrNoThumbnail)
}

func TestThumbnailLoaderFitsBox(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tall.png"), encodePNG(t, gradient(100, 400)), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wide.png"), encodePNG(t, gradient(300, 60)), 0644))

	loader, err := NewThumbnailLoader(dir, 150, 8)
	require.NoError(t, err)

	tall, err := loader.Load("tall.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 37, 150), tall.Bounds())

	wide, err := loader.Load("wide.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 150, 30), wide.Bounds())
}

func TestThumbnailLoaderCaches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), encodePNG(t, gradient(20, 20)), 0644))

	loader, err := NewThumbnailLoader(dir, 10, 8)
	require.NoError(t, err)

	first, err := loader.Load("a.png")
	require.NoError(t, err)
	second, err := loader.Load("a.png")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.Len())
}

func TestThumbnailLoaderDecodeError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("garbage"), 0644))

	loader, err := NewThumbnailLoader(dir, 150, 8)
	require.NoError(t, err)

	_, err = loader.Load("bad.png")
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestNewThumbnailLoaderInvalid(t *testing.T) {
	_, err := NewThumbnailLoader(t.TempDir(), 0, 8)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewThumbnailLoader(t.TempDir(), 150, 0)
	assert.Error(t, err)
}
