// Package chapters parses the chapter manifest and maps its episodes onto
// the page sequence for the chapter selection dialog.
package chapters

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Kind distinguishes manifest headers from episodes.
type Kind int

const (
	Header Kind = iota
	Episode
)

const (
	seasonPrefix     = "Season"
	episodeSeparator = " - "
	episodeIndent    = "    "
)

// Entry is one meaningful manifest line.
type Entry struct {
	Text    string
	Kind    Kind
	Ordinal int // 0-based among episodes; -1 for headers
}

// Parse turns manifest lines into entries. Blank lines and lines that are
// neither a season header nor an episode are skipped.
func Parse(lines []string) []Entry {
	var entries []Entry
	ordinal := 0
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		switch {
		case strings.HasPrefix(stripped, seasonPrefix):
			entries = append(entries, Entry{Text: stripped, Kind: Header, Ordinal: -1})
		case strings.Contains(stripped, episodeSeparator):
			entries = append(entries, Entry{Text: episodeIndent + stripped, Kind: Episode, Ordinal: ordinal})
			ordinal++
		}
	}
	return entries
}

// Load reads and parses the manifest at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(lines), nil
}

// EpisodeCount returns the number of episode entries.
func EpisodeCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Kind == Episode {
			n++
		}
	}
	return n
}
