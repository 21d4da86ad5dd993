// File: pkg/collect/config.go
package collect

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultIgnoreFileName is the ignore file picked up automatically from the
// input directory when no explicit ignore file is given.
const DefaultIgnoreFileName = "ingestipy_ignore.txt"

// DefaultOutputSuffix is appended to the input directory's base name to form
// the default output file name.
const DefaultOutputSuffix = "_ingestipy_output.txt"

// Arguments holds the configuration options for one collection run.
type Arguments struct {
	InputDir         string   // Root directory whose tree is collected. Defaults to the current working directory.
	OutputPath       string   // Destination path for the combined output file. Defaults to <base>_ingestipy_output.txt inside InputDir.
	IgnoreFilePath   string   // Path to an ignore file with one glob pattern per line. Defaults to DefaultIgnoreFileName inside InputDir when present.
	IncludeGlobs     []string // Optional doublestar globs; when set, only files whose relative path matches one of them are collected.
	MaxFileSizeKB    int      // Maximum size (in KB) of files to collect; 0 means no limit.
	RespectGitignore bool     // If true, .gitignore rules from InputDir also exclude files.
	Verbose          bool     // If true, enables detailed logging, including per-file skip reasons.
}

// Stats summarizes one collection run.
type Stats struct {
	Included int // Files whose content was written to the output.
	Skipped  int // Files excluded by rules, include globs, size limits, or file type.
	Failed   int // Files that could not be read or did not decode as text.
}

// applyDefaults resolves unset fields and turns the input and output paths
// absolute, so later comparisons against walked paths are exact.
func (args *Arguments) applyDefaults() error {
	if args.InputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		args.InputDir = cwd
	}

	absInput, err := filepath.Abs(args.InputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve input directory %s: %w", args.InputDir, err)
	}
	args.InputDir = absInput

	if args.OutputPath == "" {
		args.OutputPath = filepath.Join(absInput, filepath.Base(absInput)+DefaultOutputSuffix)
	}
	absOutput, err := filepath.Abs(args.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path %s: %w", args.OutputPath, err)
	}
	args.OutputPath = absOutput

	if args.IgnoreFilePath == "" {
		candidate := filepath.Join(absInput, DefaultIgnoreFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.Mode().IsRegular() {
			args.IgnoreFilePath = candidate
		}
	}

	return nil
}
