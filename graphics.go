package main

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Global font source for all UI text
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// newFace returns a face of the given size on the global font source.
func newFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source: globalFontSource,
		Size:   size,
	}
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// DrawButton draws a flat button with a centred label. Hovered buttons are
// drawn lighter.
func DrawButton(screen *ebiten.Image, r rect, label string, font *text.GoTextFace, hovered bool) {
	bg := colorButton
	if hovered {
		bg = colorButtonHover
	}
	DrawFilledRect(screen, r.X, r.Y, r.W, r.H, bg)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colorButtonBorder, false)

	label = truncateText(label, font, r.W-8)
	tw, th := text.Measure(label, font, 0)
	DrawText(screen, label, font, r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, colorWhite)
}

// truncateText shortens s with an ellipsis until it fits in maxWidth.
func truncateText(s string, font *text.GoTextFace, maxWidth float64) string {
	if w, _ := text.Measure(s, font, 0); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if w, _ := text.Measure(candidate, font, 0); w <= maxWidth {
			return candidate
		}
	}
	return ""
}
