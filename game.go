package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"mr/internal/chapters"
	"mr/internal/navigator"
	"mr/internal/pages"
	"mr/internal/scroll"
)

// Window size changes are applied once the size has been stable this long
const resizeDebounce = 250 * time.Millisecond

type Game struct {
	config Config
	pages  []pages.Page

	nav    *navigator.Navigator
	loader *navigator.Loader
	view   *scroll.View
	thumbs *pages.ThumbnailLoader

	// Current page content
	tiles       []*ebiten.Image
	tilesHeight int
	pageName    string
	shownIndex  int  // page the tiles belong to, -1 when none is shown
	tileWidth   int  // width the current tiles were made for
	loadIndex   int  // page of the in-flight request
	loadWidth   int  // width of the in-flight request
	keepOffset  bool // in-flight request re-tiles the page on screen

	winW, winH int
	resizeAt   time.Time
	started    bool
	quit       bool

	dialog             *ChapterDialog
	overlayMessage     string
	overlayMessageTime time.Time

	inputHandler *InputHandler
	mouseHandler *MouseHandler
	renderer     *Renderer
}

// NewGame wires the viewer around an already collected page list.
func NewGame(cfg Config, list []pages.Page, thumbs *pages.ThumbnailLoader) *Game {
	g := &Game{
		config: cfg,
		pages:  list,
		nav:    navigator.New(len(list), cfg.AutoNext),
		loader: navigator.NewLoader(pages.Read, cfg.TileHeight),
		view:   scroll.New(cfg.ScrollAmount),
		thumbs: thumbs,

		shownIndex: -1,
	}

	keybindingManager := NewKeybindingManager(cfg.Keybindings)
	mouseSettings := GetDefaultMouseSettings()
	mouseSettings.WheelInverted = cfg.WheelInverted
	mousebindingManager := NewMousebindingManager(GetDefaultMousebindings(), mouseSettings)

	g.inputHandler = NewInputHandler(g, g, keybindingManager)
	g.mouseHandler = NewMouseHandler(g, g, mousebindingManager)
	g.renderer = NewRenderer(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	// The first request waits for Layout so the page is tiled at the real width
	if !g.started && g.winW > 0 {
		g.started = true
		g.apply(navigator.Start{})
	}

	g.pollLoader()
	g.checkResize()

	g.inputHandler.HandleInput()
	g.mouseHandler.HandleMouse()

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW, g.winH = outsideWidth, outsideHeight
		g.view.SetViewport(viewportHeight(outsideHeight))
		if g.started {
			g.resizeAt = time.Now()
		}
	}
	return outsideWidth, outsideHeight
}

// Close stops any in-flight load.
func (g *Game) Close() {
	g.loader.Close()
	g.releaseTiles()
	if g.dialog != nil {
		g.dialog.Close()
	}
}

// apply feeds an event to the navigator and starts the load it asks for.
func (g *Game) apply(ev navigator.Event) {
	req, ok, err := g.nav.Apply(ev)
	if err != nil {
		debugLog("Navigator rejected %T: %v", ev, err)
		return
	}
	if !ok {
		return
	}

	g.keepOffset = keepsOffset(ev, req.Index, g.shownIndex)
	if _, isReload := ev.(navigator.Reload); !isReload {
		// The old page leaves the screen as soon as another one is requested
		g.clearPage()
	}

	page := g.pages[req.Index]
	g.pageName = page.Name
	g.loadIndex = req.Index
	g.loadWidth = tileWidth(g.winW)
	debugLog("Loading [%d/%d] %s at width %d (seq %d)", req.Index+1, len(g.pages), page.Name, g.loadWidth, req.Seq)
	g.loader.Load(req.Seq, page, g.loadWidth)
}

// pollLoader takes a finished load, if any, without blocking.
func (g *Game) pollLoader() {
	select {
	case res := <-g.loader.Results():
		if _, _, err := g.nav.Apply(navigator.Loaded{Seq: res.Seq}); err != nil {
			debugLog("Dropping result for %s: %v", res.Page.Name, err)
			return
		}
		g.showResult(res)
	default:
	}
}

func (g *Game) showResult(res navigator.Result) {
	oldOffset, oldHeight := g.view.Offset(), g.tilesHeight
	g.releaseTiles()
	g.shownIndex = g.loadIndex
	g.tileWidth = g.loadWidth

	if res.Err != nil {
		log.Printf("Error: Failed to load page %s: %v", res.Page.Path, res.Err)
		g.ShowOverlayMessage(fmt.Sprintf("Failed to load %s", res.Page.Name))
	}

	for _, tile := range res.Tiles {
		img := ebiten.NewImageFromImage(tile)
		g.tiles = append(g.tiles, img)
		g.tilesHeight += tile.Bounds().Dy()
	}

	g.view.SetContent(contentHeight(g.tilesHeight, g.config.AutoNext))
	g.view.Reset()
	if g.keepOffset {
		g.view.ScrollBy(scaleOffset(oldOffset, oldHeight, g.tilesHeight))
	}
	g.keepOffset = false

	debugLog("Showing %s: %d tiles, %dpx", res.Page.Name, len(g.tiles), g.tilesHeight)
}

// keepsOffset reports whether the request made for ev re-tiles the page that
// is on screen, so its scroll position should survive the reload.
func keepsOffset(ev navigator.Event, index, shownIndex int) bool {
	_, isReload := ev.(navigator.Reload)
	return isReload && index == shownIndex
}

// scaleOffset maps an offset into content of oldHeight onto newHeight.
func scaleOffset(offset, oldHeight, newHeight int) int {
	if oldHeight <= 0 {
		return 0
	}
	return offset * newHeight / oldHeight
}

// clearPage drops the page on screen and scrolls back to the top.
func (g *Game) clearPage() {
	g.releaseTiles()
	g.shownIndex = -1
	g.view.SetContent(0)
	g.view.Reset()
}

func (g *Game) releaseTiles() {
	for _, tile := range g.tiles {
		tile.Deallocate()
	}
	g.tiles = nil
	g.tilesHeight = 0
}

// checkResize re-tiles the current page once the window width settles.
func (g *Game) checkResize() {
	if g.resizeAt.IsZero() || time.Since(g.resizeAt) < resizeDebounce {
		return
	}
	g.resizeAt = time.Time{}

	if tileWidth(g.winW) == g.tileWidth && !g.nav.Loading() {
		return
	}
	if tileWidth(g.winW) == g.loadWidth && g.nav.Loading() {
		return
	}
	debugLog("Window resized to %dx%d, re-tiling", g.winW, g.winH)
	g.apply(navigator.Reload{})
}

// scrolled tells the navigator where the view is so it can auto-advance.
func (g *Game) scrolled() {
	if g.view.AtBottom() {
		g.apply(navigator.Scrolled{Offset: g.view.Offset(), Max: g.view.Max()})
	}
}

// InputActions implementation

func (g *Game) Exit() {
	g.quit = true
}

func (g *Game) NavigateNext() {
	g.apply(navigator.Next{})
}

func (g *Game) NavigatePrevious() {
	g.apply(navigator.Previous{})
}

func (g *Game) JumpToPage(index int) {
	if index == g.nav.Index() && len(g.tiles) > 0 {
		return
	}
	g.apply(navigator.JumpTo{Index: index})
}

func (g *Game) ScrollSteps(n int) {
	g.view.Step(n)
	g.scrolled()
}

func (g *Game) ScrollPages(n int) {
	g.view.Page(n)
	g.scrolled()
}

func (g *Game) OpenChapterDialog() {
	if g.dialog != nil {
		return
	}

	// Re-read on every open so edits to the manifest are picked up
	entries, err := chapters.Load(g.config.Manifest)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Failed to read chapter list %s: %v", g.config.Manifest, err)
	}

	items := chapters.BuildSelection(entries, pages.Names(g.pages))
	g.dialog = newChapterDialog(items, g.thumbs)
	debugLog("Chapter dialog: %d entries, %d rows", len(entries), len(items))
}

func (g *Game) CloseChapterDialog(confirm bool) {
	if g.dialog == nil {
		return
	}
	d := g.dialog
	g.dialog = nil
	d.Close()

	if !confirm {
		return
	}
	if index, ok := d.Selector().Selected(); ok {
		g.JumpToPage(index)
	}
}

func (g *Game) MoveDialogCursor(delta int) {
	if g.dialog == nil {
		return
	}
	if g.dialog.Selector().Move(delta) {
		g.dialog.Selector().EnsureVisible(layoutDialog(g.winW, g.winH).Rows)
	}
}

func (g *Game) SelectDialogRow(row int) {
	if g.dialog != nil {
		g.dialog.Selector().SelectAt(row)
	}
}

func (g *Game) ScrollDialog(delta int) {
	if g.dialog != nil {
		g.dialog.Selector().ScrollBy(delta, layoutDialog(g.winW, g.winH).Rows)
	}
}

func (g *Game) ShowOverlayMessage(message string) {
	g.overlayMessage = message
	g.overlayMessageTime = time.Now()
}

func (g *Game) GetTotalPagesCount() int {
	return len(g.pages)
}

// RenderState and InputState implementation

func (g *Game) GetCurrentPageName() string {
	return g.pageName
}

func (g *Game) GetTiles() []*ebiten.Image {
	return g.tiles
}

func (g *Game) GetScrollOffset() int {
	return g.view.Offset()
}

func (g *Game) GetTilesHeight() int {
	return g.tilesHeight
}

func (g *Game) IsLoading() bool {
	return g.nav.Loading()
}

func (g *Game) IsAutoNext() bool {
	return g.config.AutoNext
}

func (g *Game) IsDialogOpen() bool {
	return g.dialog != nil
}

func (g *Game) GetChapterDialog() *ChapterDialog {
	return g.dialog
}

func (g *Game) GetOverlayMessage() string {
	return g.overlayMessage
}

func (g *Game) GetOverlayMessageTime() time.Time {
	return g.overlayMessageTime
}

func (g *Game) GetFontSize() float64 {
	return g.config.FontSize
}

func (g *Game) GetCurrentIndex() int {
	return g.nav.Index()
}

func (g *Game) GetWindowSize() (int, int) {
	return g.winW, g.winH
}
