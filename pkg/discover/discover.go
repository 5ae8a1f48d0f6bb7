// Package discover walks a directory tree and produces the ordered list of
// regular files that pass the exclusion and extension rules.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Discover walks root depth-first in lexical order and returns the
// slash-separated root-relative paths of every regular file that survives
// the exclusion matcher and the extension filter. An empty extension set
// admits all regular files. Excluded directories are pruned before descent.
//
// Any error raised by the walk itself (an unreadable directory, the root
// vanishing mid-walk) aborts discovery and is returned; readability of the
// individual files is not checked here.
func Discover(root string, extensions []string, excluded *Matcher, logger *zap.Logger) ([]string, error) {
	logger.Info("Searching for files", zap.String("directory", root))

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		relPath = filepath.ToSlash(relPath)
		if relPath == "." {
			return nil
		}

		if excluded.MatchesPath(relPath) {
			if d.IsDir() {
				logger.Debug("Pruning excluded directory", zap.String("path", relPath))
				return filepath.SkipDir
			}
			logger.Debug("Skipping excluded file", zap.String("path", relPath))
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !matchesExtension(d.Name(), extensions) {
			return nil
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}

	logger.Info("File search complete", zap.Int("filesFound", len(files)))
	return files, nil
}

// matchesExtension reports whether name carries one of the given extensions.
// Extensions are matched as exact, case-sensitive "."-prefixed suffixes; an
// empty set matches everything.
func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(name, "."+ext) {
			return true
		}
	}
	return false
}
