package collect

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// loadGitIgnore compiles exclusion rules from the repository metadata of
// root: the top-level .gitignore plus .git/info/exclude when present. It
// returns nil when neither file can be read.
func loadGitIgnore(root string) *gitignore.GitIgnore {
	var lines []string
	if b, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		lines = append(lines, strings.Split(string(b), "\n")...)
	}
	if b, err := os.ReadFile(filepath.Join(root, ".git", "info", "exclude")); err == nil {
		lines = append(lines, strings.Split(string(b), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	return gitignore.CompileIgnoreLines(lines...)
}
