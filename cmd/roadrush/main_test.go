package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSound struct {
	cleanups int
}

func (s *recordingSound) Cleanup() { s.cleanups++ }

// TestReportCrashCleansUp verifies the crash path releases audio and flushes the log before exit
func TestReportCrashCleansUp(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	sound := &recordingSound{}
	var out bytes.Buffer

	reportCrash(&out, "boom", []byte("goroutine 1 [running]"), screen, sound, logger)

	if sound.cleanups != 1 {
		t.Errorf("Sound cleanups = %d, want 1", sound.cleanups)
	}
	entries := logs.FilterMessage("crashed").All()
	if len(entries) != 1 {
		t.Fatalf("Expected one crash log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("Crash logged at %v, want error", entries[0].Level)
	}
	if got := out.String(); !strings.Contains(got, "ROADRUSH CRASHED: boom") || !strings.Contains(got, "goroutine 1 [running]") {
		t.Errorf("Crash report = %q, want banner and stack", got)
	}
}
