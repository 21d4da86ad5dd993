package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger, err := Setup(verbose)
		if err != nil {
			t.Fatalf("Setup(%v) error = %v", verbose, err)
		}
		if logger == nil {
			t.Fatalf("Setup(%v) logger = nil", verbose)
		}
		if got := logger.Core().Enabled(zapcore.DebugLevel); got != verbose {
			t.Errorf("Setup(%v) debug enabled = %v, want %v", verbose, got, verbose)
		}
		Sync(logger)
	}
}

func TestSyncNilLogger(t *testing.T) {
	Sync(nil) // must not panic
}
