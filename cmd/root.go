package cmd

import (
	"fmt"
	"os"

	"github.com/usmanmehmood55/ingestipy/pkg/collect"
	"github.com/usmanmehmood55/ingestipy/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliArgs receives the parsed flag values and is handed to collect.Run as
// its configuration.
var cliArgs collect.Arguments

// RootCmd is the base command. Running it without a subcommand performs the
// collection itself.
var RootCmd = &cobra.Command{
	Use:   "ingestipy",
	Short: "Ingestipy concatenates a directory tree into one text file",
	Long: `Ingestipy recursively walks a directory and concatenates every
non-excluded text file into a single output file, each section headed by the
file's relative path. The result is ready to paste into a language model
prompt or any other text-based review process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := logging.Setup(cliArgs.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logging.Sync(logger)

		if _, err := collect.Run(&cliArgs, logger); err != nil {
			logger.Error("ingestipy execution failed", zap.Error(err))
			return err
		}
		return nil
	},
}

// Execute runs the root command and exits non-zero on any fatal error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().StringVarP(&cliArgs.InputDir, "input-dir", "i", "", "input directory to collect (defaults to the current directory)")
	RootCmd.Flags().StringVarP(&cliArgs.OutputPath, "output-path", "o", "", "output file path (defaults to <dir>"+collect.DefaultOutputSuffix+" inside the input directory)")
	RootCmd.Flags().StringVar(&cliArgs.IgnoreFilePath, "ignore-file", "", "ignore file with one glob pattern per line (defaults to "+collect.DefaultIgnoreFileName+" inside the input directory)")
	RootCmd.Flags().StringSliceVar(&cliArgs.IncludeGlobs, "include", nil, "only collect files matching these doublestar globs (e.g. **/*.go)")
	RootCmd.Flags().IntVar(&cliArgs.MaxFileSizeKB, "max-file-size", 0, "skip files larger than this size in KB (0 means no limit)")
	RootCmd.Flags().BoolVar(&cliArgs.RespectGitignore, "respect-gitignore", false, "also exclude files matched by the input directory's .gitignore")
	RootCmd.Flags().BoolVarP(&cliArgs.Verbose, "verbose", "v", false, "enable verbose logging with per-file detail")
}
