package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"qlaunch/internal/domain"
)

// ParseConfigPath checks a --config-file value and returns the cleaned path.
// A leading "~/" is expanded to the home directory. The result must be an
// absolute path, free of "..", naming an existing .yaml or .yml file.
func ParseConfigPath(path string) (string, error) {
	if path == "" {
		return "", invalidPath("config path cannot be empty")
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w", path, err)
		}
		path = filepath.Join(home, rest)
	}

	if !filepath.IsAbs(path) {
		return "", invalidPath("config path must be absolute")
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", invalidPath("config path contains invalid traversal")
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return "", invalidPath("config file must have .yaml or .yml extension")
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", invalidPath("config file does not exist")
	case err != nil:
		return "", err
	case info.IsDir():
		return "", invalidPath("config path is a directory, not a file")
	}

	return filepath.Clean(path), nil
}

func invalidPath(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, msg)
}
