// File: pkg/collect/traversal.go
package collect

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/usmanmehmood55/ingestipy/pkg/ignore"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// walker carries the state of one traversal: the filter inputs, the output
// writer, and the running counters.
type walker struct {
	root       string
	outputPath string
	rules      *ignore.RuleSet
	git        *gitignore.GitIgnore // nil unless gitignore rules are in effect
	includes   []string
	maxBytes   int64 // 0 means no limit
	verbose    bool
	logger     *zap.Logger
	writer     *bufio.Writer
	stats      Stats
}

// walk traverses the root in lexical order and streams each collected file
// into the writer. The only error it returns is a failed output write;
// unreadable entries are logged and skipped.
func (w *walker) walk() error {
	return filepath.WalkDir(w.root, w.visit)
}

func (w *walker) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		w.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
		return nil // Skip paths that cause errors
	}
	if path == w.root {
		return nil // Never filter the root itself
	}

	relPath, relErr := filepath.Rel(w.root, path)
	if relErr != nil {
		w.logger.Warn("Failed to determine relative path", zap.String("path", path), zap.Error(relErr))
		return nil
	}
	relPath = filepath.ToSlash(relPath)

	if d.IsDir() {
		return w.visitDir(path, relPath, d)
	}
	return w.visitFile(path, relPath, d)
}

// visitDir decides whether traversal descends into a directory. Pruned
// directories are never read, so nothing below them is even considered.
func (w *walker) visitDir(path, relPath string, d fs.DirEntry) error {
	if d.Name() == ".git" {
		w.logger.Debug("Skipping version control directory", zap.String("path", path))
		return filepath.SkipDir
	}
	if matched, p := w.rules.Match(relPath); matched {
		if w.verbose {
			w.logger.Debug("Skipping ignored directory",
				zap.String("path", path),
				zap.String("pattern", p.Raw))
		}
		return filepath.SkipDir
	}
	if w.git != nil && w.git.MatchesPath(relPath) {
		if w.verbose {
			w.logger.Debug("Skipping gitignored directory", zap.String("path", path))
		}
		return filepath.SkipDir
	}
	return nil
}

// visitFile applies the per-file filters in order and appends the file's
// section to the output when it passes all of them. Filter rejections only
// bump counters; a failed output write aborts the walk.
func (w *walker) visitFile(path, relPath string, d fs.DirEntry) error {
	if d.Name() == ".git" {
		// Worktree and submodule gitlinks are plain files named .git.
		w.stats.Skipped++
		return nil
	}
	if path == w.outputPath {
		if w.verbose {
			w.logger.Debug("Skipping the output file itself", zap.String("path", path))
		}
		w.stats.Skipped++
		return nil
	}
	if !d.Type().IsRegular() {
		if w.verbose {
			w.logger.Debug("Skipping non-regular file", zap.String("path", path))
		}
		w.stats.Skipped++
		return nil
	}
	if matched, p := w.rules.Match(relPath); matched {
		if w.verbose {
			w.logger.Debug("File matches ignore pattern",
				zap.String("file", path),
				zap.String("pattern", p.Raw),
				zap.Int("patternLine", p.Line))
		}
		w.stats.Skipped++
		return nil
	}
	if w.git != nil && w.git.MatchesPath(relPath) {
		if w.verbose {
			w.logger.Debug("File matches gitignore rule", zap.String("file", path))
		}
		w.stats.Skipped++
		return nil
	}
	if len(w.includes) > 0 && !w.included(relPath) {
		if w.verbose {
			w.logger.Debug("File matches no include glob", zap.String("file", path))
		}
		w.stats.Skipped++
		return nil
	}
	if w.maxBytes > 0 {
		info, err := d.Info()
		if err != nil {
			w.logger.Warn("Failed to get file info during traversal", zap.String("file", path), zap.Error(err))
			w.stats.Failed++
			return nil
		}
		if info.Size() > w.maxBytes {
			if w.verbose {
				w.logger.Debug("File exceeds size limit",
					zap.String("file", path),
					zap.Int64("sizeBytes", info.Size()),
					zap.Int64("maxSizeBytes", w.maxBytes))
			}
			w.stats.Skipped++
			return nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("Failed to read file", zap.String("file", path), zap.Error(err))
		w.stats.Failed++
		return nil
	}
	if !isTextContent(content) {
		if w.verbose {
			w.logger.Debug("Skipping file that does not decode as text", zap.String("file", path))
		}
		w.stats.Failed++
		return nil
	}

	if err := writeSection(w.writer, relPath, content); err != nil {
		return err
	}
	w.stats.Included++
	w.logger.Debug("Added file to combined output", zap.String("file", relPath))
	return nil
}

// included reports whether the relative path matches any include glob.
func (w *walker) included(relPath string) bool {
	for _, pattern := range w.includes {
		if ok, _ := doublestar.PathMatch(pattern, relPath); ok {
			return true
		}
	}
	return false
}
