package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Common colors used in rendering
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorGray      = color.RGBA{150, 150, 150, 255}
	colorLightGray = color.RGBA{192, 192, 192, 255}
	colorYellow    = color.RGBA{255, 255, 100, 255}

	colorBackground   = color.RGBA{30, 30, 30, 255}
	colorTopBar       = color.RGBA{45, 45, 48, 255}
	colorButton       = color.RGBA{70, 70, 76, 255}
	colorButtonHover  = color.RGBA{95, 95, 104, 255}
	colorButtonBorder = color.RGBA{120, 120, 130, 255}
	colorDialog       = color.RGBA{40, 40, 44, 255}
	colorSelection    = color.RGBA{50, 90, 160, 255}

	// Background colors for semi-transparent overlays
	bgColorMedium = color.RGBA{0, 0, 0, 160} // Medium semi-transparent
	bgColorDark   = color.RGBA{0, 0, 0, 200} // Dark semi-transparent
)

// Renderer handles all drawing operations
type Renderer struct {
	renderState RenderState
}

// NewRenderer creates a new Renderer
func NewRenderer(renderState RenderState) *Renderer {
	return &Renderer{renderState: renderState}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	font := newFace(r.renderState.GetFontSize())

	r.drawTiles(screen, font)
	r.drawTopBar(screen, font)

	if d := r.renderState.GetChapterDialog(); d != nil {
		r.drawChapterDialog(screen, d, font)
	}

	if r.renderState.GetOverlayMessage() != "" && time.Since(r.renderState.GetOverlayMessageTime()) < overlayMessageDuration {
		r.drawOverlayMessage(screen, font)
	}
}

func (r *Renderer) drawTiles(screen *ebiten.Image, font *text.GoTextFace) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := topBarHeight - r.renderState.GetScrollOffset()

	tiles := r.renderState.GetTiles()
	for _, tile := range tiles {
		th := tile.Bounds().Dy()
		if y+th > topBarHeight && y < h {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(contentMargin, float64(y))
			screen.DrawImage(tile, op)
		}
		y += th
	}

	if len(tiles) == 0 && r.renderState.IsLoading() {
		msg := "Loading..."
		tw, th := text.Measure(msg, font, 0)
		DrawText(screen, msg, font, (float64(w)-tw)/2, float64(topBarHeight)+(float64(h-topBarHeight)-th)/2, colorLightGray)
	}

	if !r.renderState.IsAutoNext() && len(tiles) > 0 {
		tilesHeight := y + r.renderState.GetScrollOffset() - topBarHeight
		next := nextButtonRect(w, tilesHeight, r.renderState.GetScrollOffset())
		if next.Y+next.H > topBarHeight && next.Y < float64(h) {
			DrawButton(screen, next, "NEXT", font, isHovered(next))
		}
	}
}

func (r *Renderer) drawTopBar(screen *ebiten.Image, font *text.GoTextFace) {
	w := screen.Bounds().Dx()
	DrawFilledRect(screen, 0, 0, float64(w), topBarHeight, colorTopBar)

	buttons := topBarButtons(w)
	dialogOpen := r.renderState.GetChapterDialog() != nil
	DrawButton(screen, buttons.Previous, "Previous", font, !dialogOpen && isHovered(buttons.Previous))
	DrawButton(screen, buttons.Next, "Next", font, !dialogOpen && isHovered(buttons.Next))
	DrawButton(screen, buttons.Chapter, "Select Chapter", font, !dialogOpen && isHovered(buttons.Chapter))

	label := "Viewing: " + r.renderState.GetCurrentPageName()
	if total := r.renderState.GetTotalPagesCount(); total > 0 {
		label = fmt.Sprintf("%s (%d/%d)", label, r.renderState.GetCurrentIndex()+1, total)
	}
	label = truncateText(label, font, buttons.Previous.X-2*contentMargin)
	_, th := text.Measure(label, font, 0)
	DrawText(screen, label, font, contentMargin, (topBarHeight-th)/2, colorWhite)
}

func (r *Renderer) drawChapterDialog(screen *ebiten.Image, d *ChapterDialog, font *text.GoTextFace) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	l := layoutDialog(w, h)

	// Dim everything behind the modal dialog
	DrawFilledRect(screen, 0, 0, float64(w), float64(h), bgColorMedium)
	DrawFilledRect(screen, l.Box.X, l.Box.Y, l.Box.W, l.Box.H, colorDialog)

	title := "Select Chapter"
	_, th := text.Measure(title, font, 0)
	DrawText(screen, title, font, l.Box.X+buttonGap*2, l.Box.Y+(dialogTitleHeight-th)/2, colorWhite)

	sel := d.Selector()
	items := sel.Items()
	if len(items) == 0 {
		DrawText(screen, "No pages", font, l.List.X+buttonGap, l.List.Y+buttonGap, colorGray)
	}

	for i := 0; i < l.Rows; i++ {
		row := sel.Top() + i
		if row >= len(items) {
			break
		}
		item := items[row]
		rr := l.rowRect(i)

		if row == sel.Cursor() {
			DrawFilledRect(screen, rr.X, rr.Y, rr.W, rr.H, colorSelection)
		}

		textX := rr.X + buttonGap
		if icon := d.Icon(row); icon != nil {
			r.drawIcon(screen, icon, rr)
			textX += dialogIconSize + buttonGap
		} else if item.Selectable {
			textX += dialogIconSize + buttonGap
		}

		textColor := colorWhite
		if !item.Selectable {
			textColor = colorGray
		}
		label := truncateText(item.Text, font, rr.X+rr.W-textX-buttonGap)
		_, lh := text.Measure(label, font, 0)
		DrawText(screen, label, font, textX, rr.Y+(rr.H-lh)/2, textColor)
	}

	if len(items) > l.Rows {
		pos := fmt.Sprintf("%d-%d of %d", sel.Top()+1, min(sel.Top()+l.Rows, len(items)), len(items))
		_, ph := text.Measure(pos, font, 0)
		DrawText(screen, pos, font, l.Box.X+buttonGap*2, l.OK.Y+(l.OK.H-ph)/2, colorLightGray)
	}

	DrawButton(screen, l.OK, "OK", font, isHovered(l.OK))
	DrawButton(screen, l.Cancel, "Cancel", font, isHovered(l.Cancel))
}

// drawIcon draws a thumbnail scaled into the icon box at the left of a row.
func (r *Renderer) drawIcon(screen, icon *ebiten.Image, row rect) {
	iw, ih := icon.Bounds().Dx(), icon.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := min(float64(dialogIconSize)/float64(iw), float64(dialogIconSize)/float64(ih))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	x := row.X + buttonGap + (dialogIconSize-float64(iw)*scale)/2
	y := row.Y + (row.H-float64(ih)*scale)/2
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(icon, op)
}

func (r *Renderer) drawOverlayMessage(screen *ebiten.Image, font *text.GoTextFace) {
	message := r.renderState.GetOverlayMessage()
	textWidth, textHeight := text.Measure(message, font, 0)

	// Calculate position (center of screen)
	padding := 20.0
	boxWidth := textWidth + padding*2
	boxHeight := textHeight + padding*2
	boxX := (float64(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := (float64(screen.Bounds().Dy()) - boxHeight) / 2

	DrawFilledRect(screen, boxX, boxY, boxWidth, boxHeight, bgColorDark)
	DrawText(screen, message, font, boxX+padding, boxY+padding, colorYellow)
}

// isHovered reports whether the cursor is over r
func isHovered(r rect) bool {
	x, y := ebiten.CursorPosition()
	return r.contains(x, y)
}
