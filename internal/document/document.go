// Package document loads the file shown by the viewer.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the cause reported when a file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// OpenError reports a file that could not be loaded.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("Could not open file '%s'", e.Path) }

func (e *OpenError) Unwrap() error { return e.Err }

// Document is an immutable in-memory copy of a text file.
type Document struct {
	Path  string
	Text  string
	Lines int // newline bytes in Text
}

// Load reads the whole file at path. Any failure is returned as *OpenError.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return nil, &OpenError{Path: path, Err: ErrInvalidUTF8}
	}
	return &Document{Path: path, Text: string(b), Lines: CountLines(b)}, nil
}

// CountLines returns the number of '\n' bytes in b.
func CountLines(b []byte) int {
	return bytes.Count(b, []byte{'\n'})
}

// NumberWidth is the digit count of the line count. Zero counts as one digit.
func (d *Document) NumberWidth() int {
	return len(strconv.Itoa(d.Lines))
}
