package reader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"qlaunch/internal/domain"

	"github.com/charmbracelet/log"
)

const (
	pakMagic     = "PACK"
	pakEntrySize = 64
	pakNameSize  = 56
)

// PakEntry is a file stored in a PAK archive.
type PakEntry struct {
	Name   string
	Offset int64
	Size   int64
}

// PakFile is an open PAK archive.
type PakFile struct {
	f       *os.File
	Entries []PakEntry
}

// OpenPAK opens a PAK archive and reads its directory.
func OpenPAK(path string) (*PakFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	entries, err := readPakDirectory(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &PakFile{f: f, Entries: entries}, nil
}

func readPakDirectory(r io.ReadSeeker) ([]PakEntry, error) {
	var hdr struct {
		Magic  [4]byte
		DirOfs int32
		DirLen int32
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if string(hdr.Magic[:]) != pakMagic {
		return nil, errors.New("not a PAK file")
	}
	if hdr.DirOfs < 0 || hdr.DirLen < 0 || hdr.DirLen%pakEntrySize != 0 {
		return nil, errors.New("corrupt PAK directory")
	}
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if int64(hdr.DirOfs)+int64(hdr.DirLen) > size {
		return nil, fmt.Errorf("corrupt PAK directory: %d bytes at %d past end of %d-byte file", hdr.DirLen, hdr.DirOfs, size)
	}
	if _, err := r.Seek(int64(hdr.DirOfs), io.SeekStart); err != nil {
		return nil, err
	}
	count := int(hdr.DirLen / pakEntrySize)
	var entries []PakEntry
	for i := 0; i < count; i++ {
		var raw struct {
			Name   [pakNameSize]byte
			Offset int32
			Size   int32
		}
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("reading entry %d: %w", i, err)
		}
		if raw.Offset < 0 || raw.Size < 0 || int64(raw.Offset)+int64(raw.Size) > size {
			return nil, fmt.Errorf("corrupt PAK entry %d", i)
		}
		name := raw.Name[:]
		if n := bytes.IndexByte(name, 0); n >= 0 {
			name = name[:n]
		}
		entries = append(entries, PakEntry{Name: string(name), Offset: int64(raw.Offset), Size: int64(raw.Size)})
	}
	return entries, nil
}

// Open returns a reader over one entry's data.
func (p *PakFile) Open(e PakEntry) io.ReadSeeker {
	return io.NewSectionReader(p.f, e.Offset, e.Size)
}

// Close closes the archive.
func (p *PakFile) Close() error {
	return p.f.Close()
}

// PAK reads *.pak archives in a mod folder.
type PAK struct {
	Log *log.Logger
}

func (PAK) Kind() domain.ResourceType { return domain.ResourcePAK }

// each calls fn for every readable PAK in dir until fn returns false.
func (p PAK) each(dir string, fn func(path string, pak *PakFile) bool) {
	for _, path := range archivesIn(dir, ".pak") {
		pak, err := OpenPAK(path)
		if err != nil {
			orDiscard(p.Log).Debug("skipping pak", "path", path, "error", err)
			continue
		}
		more := fn(path, pak)
		pak.Close()
		if !more {
			return
		}
	}
}

func (p PAK) GetMaps(dir string, maps domain.MapList, c Classifier, info MapInfoFunc) {
	p.each(dir, func(path string, pak *PakFile) bool {
		for _, e := range pak.Entries {
			if !c.EntryIsMap(e.Name, maps) {
				continue
			}
			maps.Add(newMapItem(p.Log, e.Name, path, domain.ResourcePAK, pak.Open(e), info))
		}
		return true
	})
}

func (p PAK) ContainsMaps(dir string, c Classifier) bool {
	found := false
	empty := domain.MapList{}
	p.each(dir, func(_ string, pak *PakFile) bool {
		for _, e := range pak.Entries {
			if c.EntryIsMap(e.Name, empty) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func (p PAK) ContainsFile(dir, filename string) bool {
	found := false
	p.each(dir, func(_ string, pak *PakFile) bool {
		for _, e := range pak.Entries {
			if strings.EqualFold(e.Name, filename) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func (p PAK) GetDemos(dir, demosFolder string, c Classifier) []domain.DemoItem {
	var demos []domain.DemoItem
	p.each(dir, func(_ string, pak *PakFile) bool {
		for _, e := range pak.Entries {
			rel, ok := demoRelPath(e.Name, demosFolder)
			if !ok || strings.Contains(rel, "/") || !c.IsDemoFile(rel) {
				continue
			}
			demos = append(demos, c.ResolveDemo(rel, pak.Open(e), domain.ResourcePAK))
		}
		return true
	})
	return demos
}
