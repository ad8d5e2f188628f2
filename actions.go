package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"KeyQ"}, []string{}, "Quit application"},
	{"next", []string{"KeyN", "ArrowRight"}, []string{"Forward"}, "Next page"},
	{"previous", []string{"KeyP", "ArrowLeft"}, []string{"Back"}, "Previous page"},
	{"select_chapter", []string{"KeyC"}, []string{}, "Open the chapter selection dialog"},
	{"scroll_down", []string{"ArrowDown", "KeyJ"}, []string{"WheelDown"}, "Scroll down"},
	{"scroll_up", []string{"ArrowUp", "KeyK"}, []string{"WheelUp"}, "Scroll up"},
	{"page_down", []string{"PageDown", "Space"}, []string{}, "Scroll down one screen"},
	{"page_up", []string{"PageUp", "Shift+Space"}, []string{}, "Scroll up one screen"},
	{"jump_first", []string{"Home"}, []string{}, "Jump to first page"},
	{"jump_last", []string{"End"}, []string{}, "Jump to last page"},
}

// ActionExecutor maps action names onto InputActions calls for both the
// keyboard and the mouse.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	if inputState.IsDialogOpen() {
		// The dialog is modal; only its own keys and scrolling apply.
		switch action {
		case "scroll_down":
			inputActions.ScrollDialog(1)
		case "scroll_up":
			inputActions.ScrollDialog(-1)
		default:
			return false
		}
		return true
	}

	switch action {
	case "exit":
		inputActions.Exit()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "select_chapter":
		inputActions.OpenChapterDialog()
	case "scroll_down":
		inputActions.ScrollSteps(1)
	case "scroll_up":
		inputActions.ScrollSteps(-1)
	case "page_down":
		inputActions.ScrollPages(1)
	case "page_up":
		inputActions.ScrollPages(-1)
	case "jump_first":
		inputActions.JumpToPage(0)
	case "jump_last":
		totalPages := inputActions.GetTotalPagesCount()
		if totalPages > 0 {
			inputActions.JumpToPage(totalPages - 1)
		}
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = append([]string(nil), action.Keys...)
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		if len(action.MouseActions) > 0 {
			mousebindings[action.Name] = action.MouseActions
		}
	}
	return mousebindings
}
