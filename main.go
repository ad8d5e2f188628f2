package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"mr/internal/pages"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mr",
	Short: "Scrolling page reader",
	Long:  "Read a directory or archive of page images as one continuous vertical strip",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(loadConfigFromPath(configPath))
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")
}

func run(result ConfigLoadResult) {
	config := result.Config
	debugEnabled = config.Debug
	debugLog("Config %s: %s", configPath, result.Status)
	for _, w := range result.Warnings {
		log.Printf("Warning: %s", w)
	}

	list, err := pages.Collect(config.Chapters, config.SortMethod)
	if err != nil {
		log.Fatal(err)
	}
	if len(list) == 0 {
		log.Fatalf("no page images found in %s", config.Chapters)
	}
	debugLog("Collected %d pages from %s (%s order)", len(list), config.Chapters, getSortMethodName(config.SortMethod))

	thumbs, err := pages.NewThumbnailLoader(config.Thumbnails, config.ThumbnailSize, config.ThumbnailCache)
	if err != nil {
		log.Printf("Warning: Thumbnails disabled: %v", err)
	}

	if err := InitGraphics(); err != nil {
		log.Fatal(err)
	}

	g := NewGame(config, list, thumbs)
	defer g.Close()

	ebiten.SetWindowTitle("Manga Reader")
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
