package pages

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
)

// ErrNoThumbnail is returned when no thumbnail file exists for a page.
var ErrNoThumbnail = errors.New("no thumbnail")

type thumbKey struct {
	path    string
	modTime time.Time
	size    int64
}

// ThumbnailLoader loads page thumbnails fitted into a square box.
type ThumbnailLoader struct {
	dir   string
	box   int
	cache *lru.Cache[thumbKey, image.Image]
}

// NewThumbnailLoader creates a loader for thumbnails in dir. Decoded icons are
// kept in an LRU of cacheSize entries keyed by path and modification time.
func NewThumbnailLoader(dir string, box, cacheSize int) (*ThumbnailLoader, error) {
	if box <= 0 {
		return nil, ErrInvalidSize
	}
	cache, err := lru.New[thumbKey, image.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating thumbnail cache: %w", err)
	}
	return &ThumbnailLoader{
		dir:   dir,
		box:   box,
		cache: cache,
	}, nil
}

// Load returns the fitted thumbnail for the page with the given file name.
func (l *ThumbnailLoader) Load(name string) (image.Image, error) {
	if name == "" {
		return nil, ErrNoThumbnail
	}

	p := filepath.Join(l.dir, name)
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoThumbnail
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrNoThumbnail
	}

	key := thumbKey{path: p, modTime: info.ModTime(), size: info.Size()}
	if img, ok := l.cache.Get(key); ok {
		return img, nil
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("%s: %w", p, err)}
	}

	img := FitBox(src, l.box)
	l.cache.Add(key, img)
	return img, nil
}

// Len returns the number of cached thumbnails.
func (l *ThumbnailLoader) Len() int {
	return l.cache.Len()
}

// FitBox scales img so that it fits inside a box x box square.
func FitBox(img image.Image, box int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	scale := min(float64(box)/float64(w), float64(box)/float64(h))
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
