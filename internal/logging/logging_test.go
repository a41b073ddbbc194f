package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	if logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("production logger should not log debug")
	}

	logger, err = New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug logger should log debug")
	}
}
