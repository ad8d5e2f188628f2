package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	EnableMouse   bool
	WheelInverted bool
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button      ebiten.MouseButton
	IsWheel     bool
	WheelDeltaY float64
	Shift       bool
	Ctrl        bool
	Alt         bool
}

// MousebindingManager handles the wheel and side-button bindings
type MousebindingManager struct {
	mousebindings map[string][]string
	mouseMapping  map[string]ebiten.MouseButton
	settings      MouseSettings
}

// NewMousebindingManager creates a new MousebindingManager
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	return &MousebindingManager{
		mousebindings: mousebindings,
		mouseMapping:  getMouseMapping(),
		settings:      settings,
	}
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3, // Back button (side button)
		"Forward":     ebiten.MouseButton4, // Forward button (side button)
	}
}

// parseMouseString parses a mouse string like "Shift+WheelUp" into a MouseCombination
func (mm *MousebindingManager) parseMouseString(mouseStr string) (*MouseCombination, bool) {
	if mouseStr == "" {
		return nil, false
	}
	parts := strings.Split(mouseStr, "+")

	combination := &MouseCombination{}

	actionName := parts[len(parts)-1]
	switch actionName {
	case "WheelUp":
		combination.IsWheel = true
		combination.WheelDeltaY = 1.0
	case "WheelDown":
		combination.IsWheel = true
		combination.WheelDeltaY = -1.0
	default:
		button, exists := mm.mouseMapping[actionName]
		if !exists {
			return nil, false
		}
		combination.Button = button
	}

	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(part) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		}
	}

	return combination, true
}

// isMouseActionTriggered checks if a mouse combination is currently being triggered
func (mm *MousebindingManager) isMouseActionTriggered(combination *MouseCombination) bool {
	if !mm.settings.EnableMouse {
		return false
	}

	if !modifiersMatch(&KeyCombination{Shift: combination.Shift, Ctrl: combination.Ctrl, Alt: combination.Alt}) {
		return false
	}

	if combination.IsWheel {
		_, wheelY := ebiten.Wheel()
		if mm.settings.WheelInverted {
			wheelY = -wheelY
		}
		return (combination.WheelDeltaY > 0 && wheelY > 0) || (combination.WheelDeltaY < 0 && wheelY < 0)
	}

	return inpututil.IsMouseButtonJustPressed(combination.Button)
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string) bool {
	for _, mouseStr := range mm.mousebindings[action] {
		combination, valid := mm.parseMouseString(mouseStr)
		if valid && mm.isMouseActionTriggered(combination) {
			return true
		}
	}
	return false
}

// ExecuteAction executes the given action using the InputActions interface
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !mm.CheckAction(action) {
		return false
	}

	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		EnableMouse:   true,
		WheelInverted: false,
	}
}

// MouseHandler handles mouse input: bound wheel and button actions plus left
// clicks on buttons and dialog rows.
type MouseHandler struct {
	inputActions        InputActions
	inputState          InputState
	mousebindingManager *MousebindingManager
}

// NewMouseHandler creates a new MouseHandler
func NewMouseHandler(inputActions InputActions, inputState InputState, mousebindingManager *MousebindingManager) *MouseHandler {
	return &MouseHandler{
		inputActions:        inputActions,
		inputState:          inputState,
		mousebindingManager: mousebindingManager,
	}
}

// HandleMouse processes mouse input for the current frame
func (h *MouseHandler) HandleMouse() bool {
	if h.inputActions.GetTotalPagesCount() == 0 || !h.mousebindingManager.settings.EnableMouse {
		return false
	}

	inputProcessed := false
	for _, action := range []string{"scroll_down", "scroll_up", "next", "previous"} {
		if h.mousebindingManager.ExecuteAction(action, h.inputActions, h.inputState) {
			inputProcessed = true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		inputProcessed = h.handleClick(x, y) || inputProcessed
	}

	return inputProcessed
}

// handleClick activates whatever is under (x, y)
func (h *MouseHandler) handleClick(x, y int) bool {
	w, hgt := h.inputState.GetWindowSize()

	if d := h.inputState.GetChapterDialog(); d != nil {
		l := layoutDialog(w, hgt)
		switch {
		case l.OK.contains(x, y):
			h.inputActions.CloseChapterDialog(true)
		case l.Cancel.contains(x, y):
			h.inputActions.CloseChapterDialog(false)
		default:
			row, ok := l.rowAt(x, y, d.Selector().Top(), len(d.Selector().Items()))
			if !ok {
				return false
			}
			h.inputActions.SelectDialogRow(row)
		}
		return true
	}

	buttons := topBarButtons(w)
	switch {
	case buttons.Previous.contains(x, y):
		h.inputActions.NavigatePrevious()
	case buttons.Next.contains(x, y):
		h.inputActions.NavigateNext()
	case buttons.Chapter.contains(x, y):
		h.inputActions.OpenChapterDialog()
	case y >= topBarHeight && !h.inputState.IsAutoNext() && h.inputState.GetTilesHeight() > 0 &&
		nextButtonRect(w, h.inputState.GetTilesHeight(), h.inputState.GetScrollOffset()).contains(x, y):
		h.inputActions.NavigateNext()
	default:
		return false
	}
	return true
}
