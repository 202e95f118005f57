package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, closeFn, err := New(path, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithField("query", "fra").Debug("filter applied")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "filter applied") || !strings.Contains(out, "query=fra") {
		t.Errorf("log output = %q", out)
	}
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, closeFn, err := New(path, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	closeFn()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log output = %q", data)
	}
}

func TestNewEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := New("", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Errorf("close: %v", err)
	}
}
