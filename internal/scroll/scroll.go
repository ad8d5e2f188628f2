// Package scroll tracks the vertical scroll position of content taller than
// its viewport.
package scroll

// View is the scroll state of one column of content. The zero value has no
// content and a zero step.
type View struct {
	viewport int
	content  int
	offset   int
	step     int
}

// New creates a view that scrolls step pixels per Step.
func New(step int) *View {
	return &View{step: max(step, 1)}
}

// SetViewport sets the visible height and re-clamps the offset.
func (v *View) SetViewport(height int) {
	v.viewport = max(height, 0)
	v.clamp()
}

// SetContent sets the total content height and re-clamps the offset.
func (v *View) SetContent(height int) {
	v.content = max(height, 0)
	v.clamp()
}

// Reset scrolls back to the top.
func (v *View) Reset() {
	v.offset = 0
}

// Offset returns the current scroll offset.
func (v *View) Offset() int {
	return v.offset
}

// Max returns the largest valid offset.
func (v *View) Max() int {
	return max(v.content-v.viewport, 0)
}

// AtBottom reports whether the view is scrolled to the end of scrollable content.
func (v *View) AtBottom() bool {
	return v.Max() > 0 && v.offset >= v.Max()
}

// ScrollBy moves the offset by delta pixels. It reports whether the offset changed.
func (v *View) ScrollBy(delta int) bool {
	old := v.offset
	v.offset += delta
	v.clamp()
	return v.offset != old
}

// Step scrolls n steps; negative n scrolls up.
func (v *View) Step(n int) bool {
	return v.ScrollBy(n * v.step)
}

// Page scrolls n viewport heights.
func (v *View) Page(n int) bool {
	return v.ScrollBy(n * v.viewport)
}

func (v *View) clamp() {
	v.offset = max(0, min(v.offset, v.Max()))
}
