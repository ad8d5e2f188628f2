package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('a'+i)) + ".png"
	}
	return names
}

func TestBuildSelectionEpisodes(t *testing.T) {
	entries := Parse([]string{"Season 1", "1 - Pilot", "2 - Middle", "Season 2", "3 - End"})
	items := BuildSelection(entries, pageNames(5))

	require.Len(t, items, 5)
	assert.Equal(t, Item{Text: "Season 1", PageIndex: -1}, items[0])
	assert.Equal(t, Item{Text: "    1 - Pilot", Selectable: true, PageIndex: 0, ThumbName: "a.png"}, items[1])
	assert.Equal(t, Item{Text: "    2 - Middle", Selectable: true, PageIndex: 2, ThumbName: "c.png"}, items[2])
	assert.False(t, items[3].Selectable)
	assert.Equal(t, Item{Text: "    3 - End", Selectable: true, PageIndex: 4, ThumbName: "e.png"}, items[4])
}

func TestBuildSelectionFallsBackToPages(t *testing.T) {
	entries := Parse([]string{"Season 1", "just a note"})
	items := BuildSelection(entries, pageNames(3))

	require.Len(t, items, 4)
	assert.False(t, items[0].Selectable)
	for i, item := range items[1:] {
		assert.True(t, item.Selectable)
		assert.Equal(t, i, item.PageIndex)
		assert.Equal(t, pageNames(3)[i], item.Text)
		assert.Equal(t, item.Text, item.ThumbName)
	}
}

func TestBuildSelectionEmptyManifest(t *testing.T) {
	items := BuildSelection(nil, pageNames(2))
	require.Len(t, items, 2)
	assert.Equal(t, "a.png", items[0].Text)
}

func TestBuildSelectionNoPages(t *testing.T) {
	items := BuildSelection(Parse([]string{"1 - Pilot"}), nil)

	require.Len(t, items, 1)
	assert.Equal(t, NoThumbnail, items[0].PageIndex)
	assert.Empty(t, items[0].ThumbName)

	s := NewSelector(items)
	require.True(t, s.SelectAt(0))
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSelectorMoveSkipsHeaders(t *testing.T) {
	entries := Parse([]string{"Season 1", "1 - A", "Season 2", "2 - B", "3 - C"})
	s := NewSelector(BuildSelection(entries, pageNames(10)))

	assert.Equal(t, -1, s.Cursor())
	_, ok := s.Selected()
	assert.False(t, ok)

	require.True(t, s.Move(1))
	assert.Equal(t, 1, s.Cursor())

	require.True(t, s.Move(1))
	assert.Equal(t, 3, s.Cursor(), "header at row 2 is skipped")

	require.True(t, s.Move(5))
	assert.Equal(t, 4, s.Cursor(), "moves stop at the last selectable row")
	assert.False(t, s.Move(1))

	require.True(t, s.Move(-2))
	assert.Equal(t, 1, s.Cursor())
	assert.False(t, s.Move(-1), "header at row 0 cannot be selected")

	idx, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSelectorMoveBackwardFromNothing(t *testing.T) {
	s := NewSelector(BuildSelection(Parse([]string{"1 - A", "2 - B", "Season 9"}), pageNames(4)))

	require.True(t, s.Move(-1))
	assert.Equal(t, 1, s.Cursor())
	idx, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestSelectorSelectAt(t *testing.T) {
	s := NewSelector(BuildSelection(Parse([]string{"Season 1", "1 - A"}), pageNames(2)))

	assert.False(t, s.SelectAt(0))
	assert.False(t, s.SelectAt(7))
	assert.Equal(t, -1, s.Cursor())
	assert.True(t, s.SelectAt(1))
	assert.Equal(t, 1, s.Cursor())
}

func TestSelectorVisibleWindow(t *testing.T) {
	s := NewSelector(BuildSelection(nil, pageNames(20)))

	require.True(t, s.SelectAt(12))
	s.EnsureVisible(5)
	assert.Equal(t, 8, s.Top())

	require.True(t, s.SelectAt(3))
	s.EnsureVisible(5)
	assert.Equal(t, 3, s.Top())

	s.ScrollBy(100, 5)
	assert.Equal(t, 15, s.Top())
	s.ScrollBy(-100, 5)
	assert.Equal(t, 0, s.Top())
}
