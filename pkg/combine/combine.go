// Package combine concatenates discovered files into a single output file,
// each entry prefixed by a path header and followed by a blank-line
// separator.
package combine

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"dircat/pkg/discover"

	"go.uber.org/zap"
)

// Arguments holds the configuration for one combine run. It is built once
// from the command line and passed by value; nothing here is mutated after
// construction.
type Arguments struct {
	Directory  string   // Directory to search, defaults to the working directory.
	Output     string   // Destination path for the combined output file.
	Tree       string   // Optional destination path for a directory tree listing.
	Extensions []string // Extensions to include, without the leading dot; empty means all files.
	Excludes   []string // Root-relative paths to prune from the search.
}

// Result summarizes one combine run.
type Result struct {
	Discovered int      // Files produced by discovery.
	Combined   int      // Files whose contents were written successfully.
	Failed     []string // Files that could not be read; an error marker stands in for each.
}

// Run validates the configuration, discovers matching files, and writes the
// combined output. Per-file read failures are recorded in the output and on
// the diagnostic stream but do not fail the run; configuration, discovery,
// and output-write errors do.
func Run(args Arguments, logger *zap.Logger) error {
	if args.Output == "" {
		return fmt.Errorf("no output file specified")
	}

	info, err := os.Stat(args.Directory)
	if err != nil {
		return fmt.Errorf("cannot access directory %s: %w", args.Directory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", args.Directory)
	}

	excluded := discover.NewMatcher(args.Excludes)
	files, err := discover.Discover(args.Directory, args.Extensions, excluded, logger)
	if err != nil {
		return err
	}

	result, err := Combine(files, args.Directory, args.Output, logger)
	if err != nil {
		return err
	}

	if args.Tree != "" {
		if err := WriteTree(args.Directory, args.Tree, excluded, logger); err != nil {
			return err
		}
	}

	logger.Info("Successfully combined files",
		zap.Int("filesProcessed", result.Combined),
		zap.Int("readFailures", len(result.Failed)),
		zap.String("outputFile", args.Output),
	)
	return nil
}

// Combine writes the concatenated stream for paths, in order, to output.
// Paths are slash-separated and relative to root; the header for each entry
// carries the path exactly as given. The output file is created fresh,
// discarding any prior content.
//
// A path that cannot be read gets an error marker in place of its content
// and a diagnostic warning; the run continues. Errors writing the output
// itself abort immediately.
func Combine(paths []string, root, output string, logger *zap.Logger) (Result, error) {
	logger.Info("Combining files",
		zap.Int("fileCount", len(paths)),
		zap.String("outputFile", output),
	)

	result := Result{Discovered: len(paths)}

	outFile, err := os.Create(output)
	if err != nil {
		return result, fmt.Errorf("failed to create output file %s: %w", output, err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("file", output), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, relPath := range paths {
		if _, err := fmt.Fprintf(writer, "--- FILE: %s ---\n", relPath); err != nil {
			return result, fmt.Errorf("failed to write to %s: %w", output, err)
		}

		data, readErr := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
		if readErr != nil {
			logger.Warn("Could not read file, writing error marker",
				zap.String("file", relPath),
				zap.Error(readErr),
			)
			if _, err := fmt.Fprintf(writer, "--- ERROR READING FILE: %s ---\n", relPath); err != nil {
				return result, fmt.Errorf("failed to write to %s: %w", output, err)
			}
			result.Failed = append(result.Failed, relPath)
		} else {
			if _, err := writer.Write(data); err != nil {
				return result, fmt.Errorf("failed to write to %s: %w", output, err)
			}
			result.Combined++
		}

		// Separator: exactly two line breaks after content or marker.
		if _, err := writer.WriteString("\n\n"); err != nil {
			return result, fmt.Errorf("failed to write to %s: %w", output, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return result, fmt.Errorf("failed to flush %s: %w", output, err)
	}

	return result, nil
}
