package main

// Layout constants in screen pixels
const (
	topBarHeight     = 40
	contentMargin    = 10 // left and right margin around tiles
	nextButtonHeight = 100
	buttonGap        = 6

	dialogWidth        = 600
	dialogHeight       = 400
	dialogMargin       = 20
	dialogTitleHeight  = 36
	dialogFooterHeight = 52
	dialogRowHeight    = 56
	dialogIconSize     = 48
	dialogButtonWidth  = 90
	dialogButtonHeight = 32
)

type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

// tileWidth is the width pages are resized to for a window width.
func tileWidth(windowWidth int) int {
	return max(windowWidth-2*contentMargin, 1)
}

// viewportHeight is the height of the scrolling area below the top bar.
func viewportHeight(windowHeight int) int {
	return max(windowHeight-topBarHeight, 0)
}

// contentHeight is the scrollable height of a page: its tiles plus the NEXT
// button when auto-advance is off. An empty page has no NEXT button.
func contentHeight(tilesHeight int, autoNext bool) int {
	if autoNext || tilesHeight == 0 {
		return tilesHeight
	}
	return tilesHeight + nextButtonHeight
}

type navButtons struct {
	Previous rect
	Next     rect
	Chapter  rect
}

// topBarButtons lays out the Previous, Next and Select Chapter buttons at the
// right end of the top bar.
func topBarButtons(windowWidth int) navButtons {
	const (
		prevWidth    = 90
		nextWidth    = 70
		chapterWidth = 130
		y            = 4
		h            = topBarHeight - 2*y
	)

	x := float64(windowWidth - contentMargin - chapterWidth)
	chapter := rect{x, y, chapterWidth, h}
	x -= buttonGap + nextWidth
	next := rect{x, y, nextWidth, h}
	x -= buttonGap + prevWidth
	prev := rect{x, y, prevWidth, h}

	return navButtons{Previous: prev, Next: next, Chapter: chapter}
}

// nextButtonRect is the NEXT button following the tiles, in screen space.
func nextButtonRect(windowWidth, tilesHeight, offset int) rect {
	return rect{
		X: contentMargin,
		Y: float64(topBarHeight + tilesHeight - offset),
		W: float64(tileWidth(windowWidth)),
		H: nextButtonHeight,
	}
}

type dialogLayout struct {
	Box    rect
	List   rect
	OK     rect
	Cancel rect
	Rows   int
}

// layoutDialog centres the chapter dialog in the window.
func layoutDialog(windowWidth, windowHeight int) dialogLayout {
	w := float64(max(min(dialogWidth, windowWidth-2*dialogMargin), 2*dialogButtonWidth+3*buttonGap))
	h := float64(max(min(dialogHeight, windowHeight-2*dialogMargin), dialogTitleHeight+dialogFooterHeight+dialogRowHeight))
	box := rect{(float64(windowWidth) - w) / 2, (float64(windowHeight) - h) / 2, w, h}

	list := rect{
		X: box.X + buttonGap,
		Y: box.Y + dialogTitleHeight,
		W: box.W - 2*buttonGap,
		H: box.H - dialogTitleHeight - dialogFooterHeight,
	}

	by := box.Y + box.H - dialogFooterHeight + (dialogFooterHeight-dialogButtonHeight)/2
	cancel := rect{box.X + box.W - buttonGap - dialogButtonWidth, by, dialogButtonWidth, dialogButtonHeight}
	ok := rect{cancel.X - buttonGap - dialogButtonWidth, by, dialogButtonWidth, dialogButtonHeight}

	return dialogLayout{
		Box:    box,
		List:   list,
		OK:     ok,
		Cancel: cancel,
		Rows:   max(int(list.H)/dialogRowHeight, 1),
	}
}

// rowRect is the screen rectangle of the i-th visible row.
func (d dialogLayout) rowRect(i int) rect {
	return rect{d.List.X, d.List.Y + float64(i*dialogRowHeight), d.List.W, dialogRowHeight}
}

// rowAt returns the list row under (x, y) given the first visible row top.
func (d dialogLayout) rowAt(x, y, top, count int) (int, bool) {
	if !d.List.contains(x, y) {
		return 0, false
	}
	row := top + int(float64(y)-d.List.Y)/dialogRowHeight
	if row < top || row >= top+d.Rows || row >= count {
		return 0, false
	}
	return row, true
}
