package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mr/internal/pages"
)

const defaultConfigPath = "config.yaml"

// Window size constants
const (
	defaultWidth  = 655
	defaultHeight = 980
	minWidth      = 320
	minHeight     = 240
)

// Defaults for the remaining settings
const (
	defaultThumbnails     = "_Thumbs"
	defaultChapters       = "_Combined"
	defaultManifest       = "Chapters.txt"
	defaultScrollAmount   = 75
	defaultTileHeight     = 512
	minTileHeight         = 16
	defaultThumbnailSize  = 150
	minThumbnailSize      = 16
	defaultThumbnailCache = 64
	maxThumbnailCache     = 1024
	defaultFontSize       = 16.0
	minFontSize           = 8.0
)

// getDefaultKeybindings returns the default keybinding configuration
func getDefaultKeybindings() map[string][]string {
	return GetDefaultKeybindings()
}

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()
	validActions := GetActionDescriptions()

	for action, keys := range keybindings {
		if _, ok := validActions[action]; !ok {
			return fmt.Errorf("unknown action '%s'", action)
		}
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %w", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	if keyStr == "" {
		return fmt.Errorf("empty key string")
	}
	parts := strings.Split(keyStr, "+")

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	for _, part := range parts[:len(parts)-1] {
		modifier := strings.ToLower(part)
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", part)
		}
	}

	return nil
}

// getValidKeyNames returns the set of key names a binding may use
func getValidKeyNames() map[string]bool {
	mapping := getKeyMapping()
	valid := make(map[string]bool, len(mapping))
	for name := range mapping {
		valid[name] = true
	}
	return valid
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

// Config is built once at startup and passed by value afterwards.
type Config struct {
	Thumbnails     string              `yaml:"Thumbnails"`
	Chapters       string              `yaml:"Chapters"`
	ScrollAmount   int                 `yaml:"ScrollAmount"`
	Manifest       string              `yaml:"Chapters.txt"`
	AutoNext       bool                `yaml:"AutoNext"`
	TileHeight     int                 `yaml:"TileHeight"`
	ThumbnailSize  int                 `yaml:"ThumbnailSize"`
	ThumbnailCache int                 `yaml:"ThumbnailCache"`
	SortMethod     int                 `yaml:"SortMethod"`
	WindowWidth    int                 `yaml:"WindowWidth"`
	WindowHeight   int                 `yaml:"WindowHeight"`
	FontSize       float64             `yaml:"FontSize"`
	WheelInverted  bool                `yaml:"WheelInverted"`
	Debug          bool                `yaml:"Debug"`
	Keybindings    map[string][]string `yaml:"Keybindings"`
}

func defaultConfig() Config {
	return Config{
		Thumbnails:     defaultThumbnails,
		Chapters:       defaultChapters,
		ScrollAmount:   defaultScrollAmount,
		Manifest:       defaultManifest,
		AutoNext:       false,
		TileHeight:     defaultTileHeight,
		ThumbnailSize:  defaultThumbnailSize,
		ThumbnailCache: defaultThumbnailCache,
		SortMethod:     pages.SortSimple,
		WindowWidth:    defaultWidth,
		WindowHeight:   defaultHeight,
		FontSize:       defaultFontSize,
		Keybindings:    getDefaultKeybindings(),
	}
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.Config = defaultConfig()
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if config.Thumbnails == "" {
		config.Thumbnails = defaultThumbnails
	}
	if config.Chapters == "" {
		config.Chapters = defaultChapters
	}
	if config.Manifest == "" {
		config.Manifest = defaultManifest
	}

	if config.ScrollAmount < 1 {
		config.ScrollAmount = defaultScrollAmount
	}
	if config.TileHeight < minTileHeight {
		config.TileHeight = defaultTileHeight
	}
	if config.ThumbnailSize < minThumbnailSize {
		config.ThumbnailSize = defaultThumbnailSize
	}

	// Validate thumbnail cache size (minimum 1, maximum 1024)
	if config.ThumbnailCache < 1 {
		config.ThumbnailCache = 1
	} else if config.ThumbnailCache > maxThumbnailCache {
		config.ThumbnailCache = maxThumbnailCache
	}

	if !isValidSortMethod(config.SortMethod) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown SortMethod %d, using %s (valid: %s)",
			config.SortMethod, getSortMethodName(pages.SortSimple), sortMethodList()))
		config.SortMethod = pages.SortSimple
	}

	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	if config.FontSize <= minFontSize {
		config.FontSize = defaultFontSize
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = getDefaultKeybindings()
	} else {
		defaults := getDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = getDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	result.Config = config
	return result
}

// getSortMethodName returns the human-readable name of a sort method
func getSortMethodName(sortMethod int) string {
	return pages.GetSortStrategy(sortMethod).Name()
}

func isValidSortMethod(sortMethod int) bool {
	for _, strategy := range pages.GetAllSortStrategies() {
		if strategy.ID() == sortMethod {
			return true
		}
	}
	return false
}

// sortMethodList describes the accepted SortMethod values, e.g. "0=Natural, 1=Simple"
func sortMethodList() string {
	var parts []string
	for _, strategy := range pages.GetAllSortStrategies() {
		parts = append(parts, fmt.Sprintf("%d=%s", strategy.ID(), strategy.Name()))
	}
	return strings.Join(parts, ", ")
}
