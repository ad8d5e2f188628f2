package pages

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Page is one source image in reading order.
type Page struct {
	Name        string // File or entry base name, used for labels and thumbnail lookup
	Path        string // Local file path or archive:entry format
	ArchivePath string // Empty for regular files, path to archive for entries
	EntryPath   string // Empty for regular files, path within archive for entries
}

// IsSupportedExt reports whether path names a page image.
func IsSupportedExt(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

// IsArchiveExt reports whether path names an archive usable as a page source.
func IsArchiveExt(p string) bool {
	switch archiveKind(p) {
	case "zip", "rar", "7z":
		return true
	default:
		return false
	}
}

func archiveKind(p string) string {
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".zip", ".cbz":
		return "zip"
	case ".rar", ".cbr":
		return "rar"
	case ".7z", ".cb7":
		return "7z"
	default:
		return ""
	}
}

// Collect builds the page list from a directory or an archive and orders it
// with the given sort method. Only the top level of a directory is scanned.
func Collect(root string, sortMethod int) ([]Page, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("page source %s: %w", root, err)
	}

	var list []Page
	if info.IsDir() {
		list, err = collectDirectory(root)
	} else if IsArchiveExt(root) {
		list, err = collectArchive(root)
	} else {
		return nil, fmt.Errorf("page source %s: not a directory or supported archive", root)
	}
	if err != nil {
		return nil, err
	}

	return SortPages(list, sortMethod), nil
}

func collectDirectory(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var list []Page
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !IsSupportedExt(entry.Name()) {
			continue
		}
		list = append(list, Page{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return list, nil
}

func collectArchive(archivePath string) ([]Page, error) {
	var names []string
	var err error

	switch archiveKind(archivePath) {
	case "zip":
		names, err = listZip(archivePath)
	case "rar":
		names, err = listRar(archivePath)
	case "7z":
		names, err = list7z(archivePath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(archivePath))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to process archive %s: %w", archivePath, err)
	}

	list := make([]Page, 0, len(names))
	for _, name := range names {
		list = append(list, Page{
			Name:        path.Base(filepath.ToSlash(name)),
			Path:        archivePath + ":" + name,
			ArchivePath: archivePath,
			EntryPath:   name,
		})
	}
	return list, nil
}

// Read returns the raw bytes of a page.
func Read(p Page) ([]byte, error) {
	if p.ArchivePath == "" {
		return os.ReadFile(p.Path)
	}

	switch archiveKind(p.ArchivePath) {
	case "zip":
		return readZip(p.ArchivePath, p.EntryPath)
	case "rar":
		return readRar(p.ArchivePath, p.EntryPath)
	case "7z":
		return read7z(p.ArchivePath, p.EntryPath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", filepath.Ext(p.ArchivePath))
	}
}

// Names returns the page names in order.
func Names(list []Page) []string {
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names
}
