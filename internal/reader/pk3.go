package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"qlaunch/internal/domain"

	"github.com/charmbracelet/log"
)

// maxPK3Entry caps how much of a single zip entry is buffered for decoding.
const maxPK3Entry = 64 << 20

// PK3 reads *.pk3 (zip) archives in a mod folder.
type PK3 struct {
	Log *log.Logger
}

func (PK3) Kind() domain.ResourceType { return domain.ResourcePK3 }

func (p PK3) each(dir string, fn func(path string, zr *zip.ReadCloser) bool) {
	for _, path := range archivesIn(dir, ".pk3") {
		zr, err := zip.OpenReader(path)
		if err != nil {
			orDiscard(p.Log).Debug("skipping pk3", "path", path, "error", err)
			continue
		}
		more := fn(path, zr)
		zr.Close()
		if !more {
			return
		}
	}
}

// openZipEntry buffers a zip entry so decoders can seek in it.
func openZipEntry(f *zip.File) (io.ReadSeeker, error) {
	if f.UncompressedSize64 > maxPK3Entry {
		return nil, fmt.Errorf("entry %s too large: %d bytes", f.Name, f.UncompressedSize64)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(io.LimitReader(rc, maxPK3Entry))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func (p PK3) GetMaps(dir string, maps domain.MapList, c Classifier, info MapInfoFunc) {
	p.each(dir, func(path string, zr *zip.ReadCloser) bool {
		for _, f := range zr.File {
			if f.FileInfo().IsDir() || !c.EntryIsMap(f.Name, maps) {
				continue
			}
			var r io.ReadSeeker
			if info != nil {
				var err error
				if r, err = openZipEntry(f); err != nil {
					orDiscard(p.Log).Debug("reading map", "path", path, "map", f.Name, "error", err)
				}
			}
			maps.Add(newMapItem(p.Log, f.Name, path, domain.ResourcePK3, r, info))
		}
		return true
	})
}

func (p PK3) ContainsMaps(dir string, c Classifier) bool {
	found := false
	empty := domain.MapList{}
	p.each(dir, func(_ string, zr *zip.ReadCloser) bool {
		for _, f := range zr.File {
			if !f.FileInfo().IsDir() && c.EntryIsMap(f.Name, empty) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func (p PK3) ContainsFile(dir, filename string) bool {
	found := false
	p.each(dir, func(_ string, zr *zip.ReadCloser) bool {
		for _, f := range zr.File {
			if strings.EqualFold(f.Name, filename) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func (p PK3) GetDemos(dir, demosFolder string, c Classifier) []domain.DemoItem {
	var demos []domain.DemoItem
	p.each(dir, func(path string, zr *zip.ReadCloser) bool {
		for _, f := range zr.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rel, ok := demoRelPath(f.Name, demosFolder)
			if !ok || strings.Contains(rel, "/") || !c.IsDemoFile(rel) {
				continue
			}
			r, err := openZipEntry(f)
			if err != nil {
				orDiscard(p.Log).Debug("reading demo", "path", path, "demo", f.Name, "error", err)
				r = nil
			}
			demos = append(demos, c.ResolveDemo(rel, r, domain.ResourcePK3))
		}
		return true
	})
	return demos
}
