package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"dircat/cmd"
	"dircat/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := zap.NewProduction(zap.Fields(
		zap.String("appName", "dircat"),
		zap.String("appVersion", version.Version),
	))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	execErr := cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if execErr != nil {
		if errors.Is(execErr, cmd.ErrHelp) {
			// Usage was printed; the requested combination did not run.
			os.Exit(1)
		}
		logger.Fatal("dircat execution failed", zap.Error(execErr))
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
