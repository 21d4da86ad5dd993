// Package logging constructs the zap loggers used throughout ingestipy.
package logging

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/usmanmehmood55/ingestipy/pkg/version"
)

// Setup builds the application logger. Verbose mode selects the development
// config so per-file debug lines reach the console; otherwise the production
// config at info level is used. Both write to stderr, never to stdout, so
// diagnostics cannot mix with redirected output.
func Setup(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"app":     "ingestipy",
		"version": version.Get().Version,
	}

	return cfg.Build()
}

// Sync flushes buffered log entries. Syncing stderr reports EINVAL on some
// platforms when it is a terminal; that failure is harmless and suppressed.
func Sync(logger *zap.Logger) {
	if logger == nil {
		return
	}

	// Only attempt to sync when stderr is a terminal or a regular file.
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}

	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("logger sync failed: %v", err)
		}
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
