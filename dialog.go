package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"mr/internal/chapters"
	"mr/internal/pages"
)

// ChapterDialog is the open chapter selection dialog. Thumbnails are loaded
// when their row is first drawn.
type ChapterDialog struct {
	selector *chapters.Selector
	thumbs   *pages.ThumbnailLoader
	icons    map[int]*ebiten.Image
	tried    map[int]bool
}

func newChapterDialog(items []chapters.Item, thumbs *pages.ThumbnailLoader) *ChapterDialog {
	return &ChapterDialog{
		selector: chapters.NewSelector(items),
		thumbs:   thumbs,
		icons:    make(map[int]*ebiten.Image),
		tried:    make(map[int]bool),
	}
}

// Selector returns the list and cursor state.
func (d *ChapterDialog) Selector() *chapters.Selector {
	return d.selector
}

// Icon returns the thumbnail for row, or nil when it has none.
func (d *ChapterDialog) Icon(row int) *ebiten.Image {
	if img, ok := d.icons[row]; ok {
		return img
	}
	if d.tried[row] || d.thumbs == nil {
		return nil
	}
	d.tried[row] = true

	items := d.selector.Items()
	if row < 0 || row >= len(items) || items[row].ThumbName == "" {
		return nil
	}

	img, err := d.thumbs.Load(items[row].ThumbName)
	if err != nil {
		if !errors.Is(err, pages.ErrNoThumbnail) {
			debugLog("Thumbnail for %s unavailable: %v", items[row].ThumbName, err)
		}
		return nil
	}

	icon := ebiten.NewImageFromImage(img)
	d.icons[row] = icon
	return icon
}

// Close releases the icon images.
func (d *ChapterDialog) Close() {
	for row, img := range d.icons {
		img.Deallocate()
		delete(d.icons, row)
	}
	if d.thumbs != nil {
		debugLog("Thumbnail cache holds %d icons", d.thumbs.Len())
	}
}
