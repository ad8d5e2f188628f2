package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Overlay message display duration
	overlayMessageDuration = 2 * time.Second
)

// RenderState provides read-only access to game state for the renderer
type RenderState interface {
	// Page content
	GetCurrentPageName() string
	GetTiles() []*ebiten.Image
	GetScrollOffset() int
	IsLoading() bool
	IsAutoNext() bool

	// UI state
	GetChapterDialog() *ChapterDialog
	GetOverlayMessage() string
	GetOverlayMessageTime() time.Time

	// Display data
	GetFontSize() float64
	GetCurrentIndex() int
	GetTotalPagesCount() int
}

// InputActions provides action methods for the input handlers
type InputActions interface {
	// Application control
	Exit()

	// Navigation
	NavigateNext()
	NavigatePrevious()
	JumpToPage(index int)

	// Scrolling
	ScrollSteps(n int)
	ScrollPages(n int)

	// Chapter dialog
	OpenChapterDialog()
	CloseChapterDialog(confirm bool)
	MoveDialogCursor(delta int)
	SelectDialogRow(row int)
	ScrollDialog(delta int)

	// Messages
	ShowOverlayMessage(message string)

	// Common data access
	GetTotalPagesCount() int
}

// InputState provides read-only access to input-related state
type InputState interface {
	IsDialogOpen() bool
	GetChapterDialog() *ChapterDialog
	GetWindowSize() (int, int)
	IsAutoNext() bool
	GetTilesHeight() int
	GetScrollOffset() int
}
