package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing in ticks for actions that repeat while held
const (
	keyRepeatDelay    = 24
	keyRepeatInterval = 4
)

// repeatingActions keep firing while their key is held down.
var repeatingActions = map[string]bool{
	"scroll_down": true,
	"scroll_up":   true,
	"page_down":   true,
	"page_up":     true,
}

// KeybindingManager handles dynamic keybinding processing
type KeybindingManager struct {
	keyMapping map[string]ebiten.Key
	parsed     map[string][]*KeyCombination
}

// NewKeybindingManager creates a new KeybindingManager. Bindings are parsed
// once; invalid strings are skipped.
func NewKeybindingManager(keybindings map[string][]string) *KeybindingManager {
	km := &KeybindingManager{
		keyMapping: getKeyMapping(),
		parsed:     make(map[string][]*KeyCombination),
	}
	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if combination, ok := km.parseKeyString(keyStr); ok {
				km.parsed[action] = append(km.parsed[action], combination)
			}
		}
	}
	return km
}

// getKeyMapping returns a mapping from string keys to Ebiten keys
func getKeyMapping() map[string]ebiten.Key {
	return map[string]ebiten.Key{
		// Letters
		"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyC": ebiten.KeyC, "KeyD": ebiten.KeyD,
		"KeyE": ebiten.KeyE, "KeyF": ebiten.KeyF, "KeyG": ebiten.KeyG, "KeyH": ebiten.KeyH,
		"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK, "KeyL": ebiten.KeyL,
		"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyO": ebiten.KeyO, "KeyP": ebiten.KeyP,
		"KeyQ": ebiten.KeyQ, "KeyR": ebiten.KeyR, "KeyS": ebiten.KeyS, "KeyT": ebiten.KeyT,
		"KeyU": ebiten.KeyU, "KeyV": ebiten.KeyV, "KeyW": ebiten.KeyW, "KeyX": ebiten.KeyX,
		"KeyY": ebiten.KeyY, "KeyZ": ebiten.KeyZ,

		// Numbers
		"Key0": ebiten.Key0, "Key1": ebiten.Key1, "Key2": ebiten.Key2, "Key3": ebiten.Key3,
		"Key4": ebiten.Key4, "Key5": ebiten.Key5, "Key6": ebiten.Key6, "Key7": ebiten.Key7,
		"Key8": ebiten.Key8, "Key9": ebiten.Key9,

		// Special keys
		"Space":      ebiten.KeySpace,
		"Backspace":  ebiten.KeyBackspace,
		"Enter":      ebiten.KeyEnter,
		"Escape":     ebiten.KeyEscape,
		"Tab":        ebiten.KeyTab,
		"Home":       ebiten.KeyHome,
		"End":        ebiten.KeyEnd,
		"PageUp":     ebiten.KeyPageUp,
		"PageDown":   ebiten.KeyPageDown,
		"ArrowUp":    ebiten.KeyArrowUp,
		"ArrowDown":  ebiten.KeyArrowDown,
		"ArrowLeft":  ebiten.KeyArrowLeft,
		"ArrowRight": ebiten.KeyArrowRight,

		// Punctuation
		"Comma":     ebiten.KeyComma,
		"Period":    ebiten.KeyPeriod,
		"Slash":     ebiten.KeySlash,
		"Semicolon": ebiten.KeySemicolon,
		"Quote":     ebiten.KeyQuote,
		"Minus":     ebiten.KeyMinus,
		"Equal":     ebiten.KeyEqual,

		// Numpad
		"Numpad0":     ebiten.KeyNumpad0,
		"Numpad1":     ebiten.KeyNumpad1,
		"Numpad2":     ebiten.KeyNumpad2,
		"Numpad3":     ebiten.KeyNumpad3,
		"Numpad4":     ebiten.KeyNumpad4,
		"Numpad5":     ebiten.KeyNumpad5,
		"Numpad6":     ebiten.KeyNumpad6,
		"Numpad7":     ebiten.KeyNumpad7,
		"Numpad8":     ebiten.KeyNumpad8,
		"Numpad9":     ebiten.KeyNumpad9,
		"NumpadEnter": ebiten.KeyNumpadEnter,
	}
}

// KeyCombination represents a key with optional modifiers
type KeyCombination struct {
	Key   ebiten.Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// parseKeyString parses a key string like "Shift+Space" into a KeyCombination
func (km *KeybindingManager) parseKeyString(keyStr string) (*KeyCombination, bool) {
	if keyStr == "" {
		return nil, false
	}
	parts := strings.Split(keyStr, "+")

	combination := &KeyCombination{}

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	key, exists := km.keyMapping[keyName]
	if !exists {
		return nil, false
	}
	combination.Key = key

	for _, part := range parts[:len(parts)-1] {
		switch strings.ToLower(part) {
		case "shift":
			combination.Shift = true
		case "ctrl":
			combination.Ctrl = true
		case "alt":
			combination.Alt = true
		default:
			return nil, false
		}
	}

	return combination, true
}

// modifiersMatch reports whether exactly the combination's modifiers are held.
func modifiersMatch(combination *KeyCombination) bool {
	return combination.Shift == ebiten.IsKeyPressed(ebiten.KeyShift) &&
		combination.Ctrl == ebiten.IsKeyPressed(ebiten.KeyControl) &&
		combination.Alt == ebiten.IsKeyPressed(ebiten.KeyAlt)
}

// isKeyTriggered checks if a key combination fires this tick
func (km *KeybindingManager) isKeyTriggered(combination *KeyCombination, repeat bool) bool {
	if repeat {
		if !isRepeatTick(inpututil.KeyPressDuration(combination.Key)) {
			return false
		}
	} else if !inpututil.IsKeyJustPressed(combination.Key) {
		return false
	}

	return modifiersMatch(combination)
}

// isRepeatTick reports whether a key held for d ticks fires this tick.
func isRepeatTick(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// CheckAction checks if any keybinding for the given action is pressed
func (km *KeybindingManager) CheckAction(action string) bool {
	repeat := repeatingActions[action]
	for _, combination := range km.parsed[action] {
		if km.isKeyTriggered(combination, repeat) {
			return true
		}
	}
	return false
}

// ExecuteAction executes the given action using the InputActions interface
func (km *KeybindingManager) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if !km.CheckAction(action) {
		return false
	}

	return globalActionExecutor.ExecuteAction(action, inputActions, inputState)
}
