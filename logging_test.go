package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logDir = t.TempDir()

	if logFile := setupLogging(false); logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	logDir = filepath.Join(t.TempDir(), "logs")
	defer log.SetOutput(io.Discard)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(logPath())
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	logDir = t.TempDir()
	defer log.SetOutput(io.Discard)

	if err := os.WriteFile(logPath(), make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	rotated, err := os.Stat(logPath() + ".1")
	if err != nil {
		t.Fatalf("Expected rotated log file: %v", err)
	}
	if rotated.Size() != maxLogSize+1 {
		t.Errorf("Rotated file size = %d, want %d", rotated.Size(), maxLogSize+1)
	}
	current, err := os.Stat(logPath())
	if err != nil {
		t.Fatal(err)
	}
	if current.Size() != 0 {
		t.Errorf("Expected fresh log file, size = %d", current.Size())
	}
}
