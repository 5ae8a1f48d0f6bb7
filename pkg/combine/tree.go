package combine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dircat/pkg/discover"

	"go.uber.org/zap"
)

// WriteTree renders an indented listing of the directory structure under
// root, pruned by the same exclusion matcher as discovery, and writes it to
// output. Walk errors are fatal for the tree step.
func WriteTree(root, output string, excluded *discover.Matcher, logger *zap.Logger) error {
	logger.Info("Writing directory tree", zap.String("outputFile", output))

	var tree strings.Builder
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
			tree.WriteString(d.Name() + "\n")
			return nil
		}

		if excluded.MatchesPath(relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		depth := strings.Count(relPath, "/") + 1
		tree.WriteString(strings.Repeat("  ", depth) + d.Name() + "\n")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s for tree listing: %w", root, err)
	}

	if err := os.WriteFile(output, []byte(tree.String()), 0644); err != nil {
		return fmt.Errorf("failed to write tree listing %s: %w", output, err)
	}
	return nil
}
