package pages

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
)

// ErrInvalidSize is returned when the target width or tile height is not positive.
var ErrInvalidSize = errors.New("target width and tile height must be positive")

// DecodeError reports page bytes that are not a supported image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding page: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Tile decodes a page, resizes it to targetWidth keeping the aspect ratio and
// slices the result into bands of at most maxTileHeight rows, top to bottom.
func Tile(data []byte, targetWidth, maxTileHeight int) ([]*image.RGBA, error) {
	if targetWidth <= 0 || maxTileHeight <= 0 {
		return nil, ErrInvalidSize
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return Slice(Resize(src, targetWidth), maxTileHeight), nil
}

// ResizedHeight returns the height of a srcW x srcH image scaled to width.
func ResizedHeight(srcW, srcH, width int) int {
	if srcW <= 0 || srcH <= 0 || width <= 0 {
		return 0
	}
	h := int(math.Round(float64(srcH) * float64(width) / float64(srcW)))
	if h < 1 {
		h = 1
	}
	return h
}

// Resize scales img to the given width with Catmull-Rom resampling.
func Resize(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := ResizedHeight(b.Dx(), b.Dy(), width)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Slice cuts img into consecutive horizontal bands of maxTileHeight rows; the
// last band holds the remainder. Bands share img's pixel buffer and each has
// its origin at (0,0).
func Slice(img *image.RGBA, maxTileHeight int) []*image.RGBA {
	if maxTileHeight <= 0 {
		return nil
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	tiles := make([]*image.RGBA, 0, (h+maxTileHeight-1)/maxTileHeight)
	for y := 0; y < h; y += maxTileHeight {
		bandH := min(maxTileHeight, h-y)
		start := img.PixOffset(b.Min.X, b.Min.Y+y)
		end := start + (bandH-1)*img.Stride + w*4
		tiles = append(tiles, &image.RGBA{
			Pix:    img.Pix[start:end:end],
			Stride: img.Stride,
			Rect:   image.Rect(0, 0, w, bandH),
		})
	}
	return tiles
}
