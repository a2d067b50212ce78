package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Discover lists the candidate plugin files in dir in directory-listing
// (file name) order. Subdirectories are skipped. A missing directory simply
// means no plugins are installed.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plugin directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// LoadAll opens every candidate in order and returns the plugins that
// loaded. Each candidate that fails is reported once as a warning and left
// out; a failure never stops the remaining candidates from loading.
func LoadAll(paths []string, logger *zap.Logger) []*Plugin {
	if logger == nil {
		logger = zap.NewNop()
	}

	plugins := make([]*Plugin, 0, len(paths))
	for _, path := range paths {
		p, err := Open(path)
		if err != nil {
			logger.Warn("failed to load plugin", zap.String("path", path), zap.Error(err))
			continue
		}
		logger.Debug("loaded plugin", zap.String("name", p.Name()), zap.String("path", path))
		plugins = append(plugins, p)
	}
	return plugins
}

// CloseAll releases every plugin, returning the first error encountered.
func CloseAll(plugins []*Plugin) error {
	var first error
	for _, p := range plugins {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
