package cmd

import (
	"errors"

	"dircat/pkg/combine"
	"dircat/pkg/logging"
	"dircat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrHelp is returned by Execute when the run ended with usage output
// instead of performing a combination. Callers should exit non-zero
// without logging a failure.
var ErrHelp = errors.New("help requested")

var (
	outputPath string
	directory  string
	extensions []string
	excludes   []string
	treePath   string
	debug      bool

	rootLogger    *zap.Logger
	helpRequested bool
)

// RootCmd is the base command; dircat does its work directly on the root
// rather than through subcommands.
var RootCmd = &cobra.Command{
	Use:   "dircat",
	Short: "dircat concatenates files from a directory tree into one output file",
	Long: `dircat recursively searches a directory for files, filters them by
extension and exclusion paths, and concatenates their contents into a single
output file. Each entry is prefixed with a "--- FILE: <path> ---" header,
where <path> is relative to the search directory (no leading "./"), and
followed by a blank-line separator.

Files that cannot be read are replaced in the output by an error marker and
reported as warnings; they do not fail the run.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := rootLogger
		if debug {
			devLogger, err := logging.Setup(true, "dircat", version.Version)
			if err != nil {
				log.Warn("Falling back to production logging", zap.Error(err))
			} else {
				log = devLogger
				defer func() { _ = devLogger.Sync() }()
			}
		}

		return combine.Run(combine.Arguments{
			Directory:  directory,
			Output:     outputPath,
			Tree:       treePath,
			Extensions: extensions,
			Excludes:   excludes,
		}, log)
	},
}

func init() {
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "destination file for the combined content (required)")
	RootCmd.Flags().StringVarP(&directory, "directory", "d", ".", "directory to search")
	RootCmd.Flags().StringArrayVarP(&extensions, "extension", "e", nil, "file extension to include, without the leading dot (repeatable)")
	RootCmd.Flags().StringArrayVarP(&excludes, "exclude", "x", nil, "path under the search directory to prune (repeatable)")
	RootCmd.Flags().StringVarP(&treePath, "tree", "t", "", "also write a directory tree listing to this file")
	RootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = RootCmd.MarkFlagRequired("output")
}

// Execute runs the root command. Help invocations (via -h, --help, or the
// help command) print usage and return ErrHelp, since no combination was
// performed.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	helpRequested = false

	defaultHelp := RootCmd.HelpFunc()
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpRequested = true
		defaultHelp(cmd, args)
	})

	if err := RootCmd.Execute(); err != nil {
		return err
	}
	if helpRequested {
		return ErrHelp
	}
	return nil
}
