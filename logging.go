package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logFileName = "grm.log"
	maxLogSize  = 10 << 20
)

// logDir lives outside the working directory; the viewer owns the screen, so
// nothing may be logged to stdout or stderr while it runs.
var logDir = filepath.Join(os.TempDir(), "grm")

func logPath() string {
	return filepath.Join(logDir, logFileName)
}

// setupLogging discards log output unless debug is set, in which case it
// appends to logPath(), rotating the file once it grows past maxLogSize.
// The returned file is nil when logging is disabled or the file can't be opened.
func setupLogging(debug bool) *os.File {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := logPath()
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		os.Rename(path, path+".1")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}
