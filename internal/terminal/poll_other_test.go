//go:build !unix

package terminal

import (
	"errors"
	"testing"
)

func TestOpenStd_UnsupportedPlatform(t *testing.T) {
	term, err := OpenStd()
	if !errors.Is(err, errUnsupportedPlatform) {
		t.Fatalf("OpenStd() error = %v, want %v", err, errUnsupportedPlatform)
	}
	if term != nil {
		t.Error("expected no terminal on an unsupported platform")
	}
}
