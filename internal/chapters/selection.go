package chapters

// Item is one row of the chapter selection list.
type Item struct {
	Text       string
	Selectable bool
	PageIndex  int    // Target page; -1 for headers
	ThumbName  string // Page file name whose thumbnail is shown; empty for none
}

// BuildSelection builds the selection list for the given manifest entries
// and page names. When the manifest has no episodes every page is listed
// under its raw file name after any headers.
func BuildSelection(entries []Entry, pageNames []string) []Item {
	total := EpisodeCount(entries)
	items := make([]Item, 0, len(entries))

	for _, e := range entries {
		if e.Kind == Header {
			items = append(items, Item{Text: e.Text, PageIndex: -1})
			continue
		}

		idx := IndexFor(e.Ordinal, total, len(pageNames))
		item := Item{Text: e.Text, Selectable: true, PageIndex: idx}
		if idx >= 0 && idx < len(pageNames) {
			item.ThumbName = pageNames[idx]
		}
		items = append(items, item)
	}

	if total == 0 {
		for i, name := range pageNames {
			items = append(items, Item{
				Text:       name,
				Selectable: true,
				PageIndex:  i,
				ThumbName:  name,
			})
		}
	}
	return items
}

// Selector is the cursor state of an open selection dialog.
type Selector struct {
	items  []Item
	cursor int
	top    int
}

// NewSelector creates a selector with nothing selected.
func NewSelector(items []Item) *Selector {
	return &Selector{items: items, cursor: -1}
}

// Items returns the rows.
func (s *Selector) Items() []Item {
	return s.items
}

// Cursor returns the selected row, or -1.
func (s *Selector) Cursor() int {
	return s.cursor
}

// Top returns the first visible row.
func (s *Selector) Top() int {
	return s.top
}

// SelectAt selects row i if it is selectable.
func (s *Selector) SelectAt(i int) bool {
	if i < 0 || i >= len(s.items) || !s.items[i].Selectable {
		return false
	}
	s.cursor = i
	return true
}

// Move moves the cursor by delta selectable rows. With nothing selected a
// forward move selects the first selectable row and a backward move the last.
func (s *Selector) Move(delta int) bool {
	if delta == 0 {
		return false
	}

	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}

	pos := s.cursor
	if pos < 0 {
		if step > 0 {
			pos = -1
		} else {
			pos = len(s.items)
		}
	}

	moved := false
	for ; delta > 0; delta-- {
		next := pos + step
		for next >= 0 && next < len(s.items) && !s.items[next].Selectable {
			next += step
		}
		if next < 0 || next >= len(s.items) {
			break
		}
		pos = next
		moved = true
	}

	if moved {
		s.cursor = pos
	}
	return moved
}

// Selected returns the page index of the selected row.
func (s *Selector) Selected() (int, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return 0, false
	}
	item := s.items[s.cursor]
	if !item.Selectable || item.PageIndex < 0 {
		return 0, false
	}
	return item.PageIndex, true
}

// EnsureVisible scrolls the window of rows visible rows so the cursor is in view.
func (s *Selector) EnsureVisible(rows int) {
	if s.cursor < 0 || rows <= 0 {
		return
	}
	if s.cursor < s.top {
		s.top = s.cursor
	} else if s.cursor >= s.top+rows {
		s.top = s.cursor - rows + 1
	}
	s.clampTop(rows)
}

// ScrollBy moves the visible window by delta rows.
func (s *Selector) ScrollBy(delta, rows int) {
	s.top += delta
	s.clampTop(rows)
}

func (s *Selector) clampTop(rows int) {
	maxTop := max(len(s.items)-rows, 0)
	s.top = max(0, min(s.top, maxTop))
}
