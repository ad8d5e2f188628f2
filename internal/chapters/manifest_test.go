package chapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	entries := Parse([]string{"Season 1", "1 - Pilot", "", "2 - Next"})

	assert.Equal(t, []Entry{
		{Text: "Season 1", Kind: Header, Ordinal: -1},
		{Text: "    1 - Pilot", Kind: Episode, Ordinal: 0},
		{Text: "    2 - Next", Kind: Episode, Ordinal: 1},
	}, entries)
}

func TestParseSkipsUnrecognisedLines(t *testing.T) {
	entries := Parse([]string{
		"  Season 2  ",
		"random note",
		"   ",
		"Episode-without-spaces",
		"3 - Homecoming\r",
		"Season 3",
		"4 - Finale",
	})

	require.Len(t, entries, 4)
	assert.Equal(t, "Season 2", entries[0].Text)
	assert.Equal(t, "    3 - Homecoming", entries[1].Text)
	assert.Equal(t, 0, entries[1].Ordinal)
	assert.Equal(t, Header, entries[2].Kind)
	assert.Equal(t, 1, entries[3].Ordinal)
	assert.Equal(t, 2, EpisodeCount(entries))
}

func TestParseSeasonPrefixWins(t *testing.T) {
	entries := Parse([]string{"Season 1 - The Beginning"})

	require.Len(t, entries, 1)
	assert.Equal(t, Header, entries[0].Kind)
	assert.Equal(t, 0, EpisodeCount(entries))
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]string{"", "  "}))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Chapters.txt")
	content := "\xef\xbb\xbfSeason 1\n1 - Pilot\r\n\n2 - Next\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Season 1", entries[0].Text)
	assert.Equal(t, "    1 - Pilot", entries[1].Text)
	assert.Equal(t, 1, entries[2].Ordinal)
}

func TestLoadMissing(t *testing.T) {
	entries, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, entries)
}
