package game

import (
	"os"
	"path/filepath"
	"strings"
)

// findPath resolves rel ("id1/pak0.pak") under root, matching each component
// case-insensitively. It returns false when any component is missing.
func findPath(root, rel string) (string, bool) {
	cur := root
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(cur, part)); err == nil {
			cur = filepath.Join(cur, part)
			continue
		}
		entries, err := os.ReadDir(cur)
		if err != nil {
			return "", false
		}
		found := false
		for _, e := range entries {
			if strings.EqualFold(e.Name(), part) {
				cur = filepath.Join(cur, e.Name())
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}
	return cur, true
}

// fileExists reports whether rel names a regular file under root.
func fileExists(root, rel string) bool {
	p, ok := findPath(root, rel)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
