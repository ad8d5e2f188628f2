package pages

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
)

// ErrEntryNotFound is returned when a page's entry is missing from its archive.
var ErrEntryNotFound = errors.New("entry not found")

// Archive listing and entry reads. Only entries with a page image extension
// are listed; directory entries are skipped.

func listZip(archivePath string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && IsSupportedExt(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

func readZip(archivePath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entryPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s in %s: %w", entryPath, archivePath, ErrEntryNotFound)
}

func listRar(archivePath string) ([]string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var names []string
	for {
		header, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && IsSupportedExt(header.Name) {
			names = append(names, header.Name)
		}
	}
	return names, nil
}

func readRar(archivePath, entryPath string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entryPath {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("%s in %s: %w", entryPath, archivePath, ErrEntryNotFound)
}

func list7z(archivePath string) ([]string, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && IsSupportedExt(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

func read7z(archivePath, entryPath string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entryPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s in %s: %w", entryPath, archivePath, ErrEntryNotFound)
}
