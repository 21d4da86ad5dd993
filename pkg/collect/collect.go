// Package collect implements the directory collection process: it walks an
// input directory tree, filters entries through ignore rules, and streams
// every remaining text file into a single output file, each section headed
// by the file's relative path.
package collect

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/usmanmehmood55/ingestipy/pkg/ignore"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// Run executes one collection pass over args.InputDir and writes the
// combined output file. Setup failures (bad input directory, unreadable or
// malformed ignore file) are reported before the output file is created, so
// a failed run never truncates an existing output.
func Run(args *Arguments, logger *zap.Logger) (Stats, error) {
	startTime := time.Now()

	if err := args.applyDefaults(); err != nil {
		logger.Error("Failed to resolve arguments", zap.Error(err))
		return Stats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logger.Info("Starting collection",
		zap.String("inputDir", args.InputDir),
		zap.String("outputFile", args.OutputPath))

	info, err := os.Stat(args.InputDir)
	if err != nil {
		logger.Error("Input directory is not accessible", zap.String("inputDir", args.InputDir), zap.Error(err))
		return Stats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !info.IsDir() {
		logger.Error("Input path is not a directory", zap.String("inputDir", args.InputDir))
		return Stats{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidInput, args.InputDir)
	}

	rules, err := loadRules(args)
	if err != nil {
		logger.Error("Failed to load ignore patterns", zap.String("ignoreFile", args.IgnoreFilePath), zap.Error(err))
		return Stats{}, err
	}
	if rules.Len() > 0 {
		logger.Debug("Loaded ignore patterns",
			zap.String("ignoreFile", args.IgnoreFilePath),
			zap.Int("totalPatterns", rules.Len()))
	}

	var git *gitignore.GitIgnore
	if args.RespectGitignore {
		git = loadGitIgnore(args.InputDir)
		if git != nil {
			logger.Debug("Loaded gitignore rules", zap.String("inputDir", args.InputDir))
		}
	}

	// Validation is done; only now touch the output path.
	if err := os.MkdirAll(filepath.Dir(args.OutputPath), os.ModePerm); err != nil {
		logger.Error("Failed to create output directory", zap.String("path", filepath.Dir(args.OutputPath)), zap.Error(err))
		return Stats{}, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	outFile, err := os.Create(args.OutputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", args.OutputPath), zap.Error(err))
		return Stats{}, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", args.OutputPath), zap.Error(closeErr))
		}
	}()

	w := &walker{
		root:       args.InputDir,
		outputPath: args.OutputPath,
		rules:      rules,
		git:        git,
		includes:   args.IncludeGlobs,
		maxBytes:   int64(args.MaxFileSizeKB) * 1024,
		verbose:    args.Verbose,
		logger:     logger,
		writer:     bufio.NewWriter(outFile),
	}
	if err := w.walk(); err != nil {
		logger.Error("Failed to write combined output", zap.String("file", args.OutputPath), zap.Error(err))
		return w.stats, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := w.writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", args.OutputPath), zap.Error(err))
		return w.stats, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	logger.Info("Collection complete",
		zap.String("outputFile", args.OutputPath),
		zap.Int("filesIncluded", w.stats.Included),
		zap.Int("filesSkipped", w.stats.Skipped),
		zap.Int("filesFailed", w.stats.Failed),
		zap.Duration("elapsed", time.Since(startTime)))
	return w.stats, nil
}

// loadRules compiles the exclusion rule set for the run. A run without an
// ignore file gets an empty rule set.
func loadRules(args *Arguments) (*ignore.RuleSet, error) {
	if args.IgnoreFilePath == "" {
		return ignore.Compile(nil)
	}
	rules, err := ignore.Load(args.IgnoreFilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIgnoreFile, err)
	}
	return rules, nil
}
