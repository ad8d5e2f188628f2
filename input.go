package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler handles all keyboard input processing
type InputHandler struct {
	inputActions      InputActions
	inputState        InputState
	keybindingManager *KeybindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState, keybindingManager *KeybindingManager) *InputHandler {
	return &InputHandler{
		inputActions:      inputActions,
		inputState:        inputState,
		keybindingManager: keybindingManager,
	}
}

// HandleInput processes all keyboard input for the current frame
// Returns true if any input was processed, false otherwise
func (h *InputHandler) HandleInput() bool {
	if h.inputActions.GetTotalPagesCount() == 0 {
		return false
	}

	// The chapter dialog is modal and uses fixed keys
	if h.inputState.IsDialogOpen() {
		return h.handleDialogKeys()
	}

	inputProcessed := false

	inputProcessed = h.handleExitKeys() || inputProcessed
	inputProcessed = h.handleChapterKeys() || inputProcessed
	inputProcessed = h.handleNavigationKeys() || inputProcessed
	inputProcessed = h.handleScrollKeys() || inputProcessed

	return inputProcessed
}

func (h *InputHandler) handleExitKeys() bool {
	return h.keybindingManager.ExecuteAction("exit", h.inputActions, h.inputState)
}

func (h *InputHandler) handleChapterKeys() bool {
	return h.keybindingManager.ExecuteAction("select_chapter", h.inputActions, h.inputState)
}

func (h *InputHandler) handleDialogKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.inputActions.CloseChapterDialog(false)
		return true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		h.inputActions.CloseChapterDialog(true)
		return true
	}

	rows := 1
	if w, hgt := h.inputState.GetWindowSize(); w > 0 {
		rows = layoutDialog(w, hgt).Rows
	}

	count := h.dialogItemCount()
	moves := []struct {
		key   ebiten.Key
		delta int
	}{
		{ebiten.KeyArrowDown, 1},
		{ebiten.KeyArrowUp, -1},
		{ebiten.KeyPageDown, rows},
		{ebiten.KeyPageUp, -rows},
		{ebiten.KeyEnd, count},
		{ebiten.KeyHome, -count},
	}
	for _, m := range moves {
		if isRepeatTick(inpututil.KeyPressDuration(m.key)) {
			h.inputActions.MoveDialogCursor(m.delta)
			return true
		}
	}

	return false
}

func (h *InputHandler) dialogItemCount() int {
	d := h.inputState.GetChapterDialog()
	if d == nil {
		return 0
	}
	return len(d.Selector().Items())
}

func (h *InputHandler) handleNavigationKeys() bool {
	inputProcessed := false

	for _, action := range []string{"next", "previous", "jump_first", "jump_last"} {
		if h.keybindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
			inputProcessed = true
		}
	}

	return inputProcessed
}

func (h *InputHandler) handleScrollKeys() bool {
	inputProcessed := false

	for _, action := range []string{"scroll_down", "scroll_up", "page_down", "page_up"} {
		if h.keybindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
			inputProcessed = true
		}
	}

	return inputProcessed
}
