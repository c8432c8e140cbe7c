// Package terminal controls the user's terminal directly: alternate screen,
// cursor visibility, raw input mode, bounded key polling and cursor-addressed
// output.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Terminal writes through a buffer that is flushed explicitly, except for
// mode switches which take effect immediately.
type Terminal struct {
	in    *os.File
	inFd  int
	out   *bufio.Writer
	outFd int

	raw     *term.State
	pending []tea.Msg // decoded but not yet consumed input
	readBuf []byte
}

// New wraps in and out. outFd is used for size queries.
func New(in *os.File, out io.Writer, outFd int) *Terminal {
	inFd := -1
	if in != nil {
		inFd = int(in.Fd())
	}
	return &Terminal{
		in:      in,
		inFd:    inFd,
		out:     bufio.NewWriterSize(out, 32*1024),
		outFd:   outFd,
		readBuf: make([]byte, 256),
	}
}

// OpenStd returns a Terminal on stdin/stdout. It refuses when either is not a
// TTY or input cannot be polled on this platform, before any mode change.
func OpenStd() (*Terminal, error) {
	if err := checkPlatform(); err != nil {
		return nil, err
	}
	if !isTTY(os.Stdin.Fd()) {
		return nil, errors.New("stdin is not a TTY")
	}
	if !isTTY(os.Stdout.Fd()) {
		return nil, errors.New("stdout is not a TTY (refusing to render ANSI output)")
	}
	return New(os.Stdin, os.Stdout, int(os.Stdout.Fd())), nil
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *Terminal) exec(seq string) error {
	if _, err := t.out.WriteString(seq); err != nil {
		return err
	}
	return t.out.Flush()
}

func (t *Terminal) EnterAltScreen() error {
	if err := t.exec(ansi.SetAltScreenSaveCursorMode); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	return nil
}

func (t *Terminal) LeaveAltScreen() error {
	if err := t.exec(ansi.ResetAltScreenSaveCursorMode); err != nil {
		return fmt.Errorf("leave alternate screen: %w", err)
	}
	return nil
}

func (t *Terminal) HideCursor() error {
	if err := t.exec(ansi.HideCursor); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	return nil
}

func (t *Terminal) ShowCursor() error {
	if err := t.exec(ansi.ShowCursor); err != nil {
		return fmt.Errorf("show cursor: %w", err)
	}
	return nil
}

// EnableRawMode puts the input side into raw mode. Calling it twice is a no-op.
func (t *Terminal) EnableRawMode() error {
	if t.raw != nil {
		return nil
	}
	if t.inFd < 0 {
		return errors.New("enable raw mode: no input terminal")
	}
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.raw = state
	return nil
}

// DisableRawMode restores the input mode saved by EnableRawMode, if any.
func (t *Terminal) DisableRawMode() error {
	if t.raw == nil {
		return nil
	}
	state := t.raw
	t.raw = nil
	if err := term.Restore(t.inFd, state); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions in columns and rows.
func (t *Terminal) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return cols, rows, nil
}

// MoveTo queues a cursor move to the 0-indexed cell (col, row).
func (t *Terminal) MoveTo(col, row int) error {
	_, err := t.out.WriteString(ansi.CursorPosition(col+1, row+1))
	return err
}

// Print queues s at the cursor.
func (t *Terminal) Print(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

func (t *Terminal) Flush() error {
	return t.out.Flush()
}

// Poll waits at most timeout for input and returns the next event, or nil
// when the wait elapsed without any. Bytes arriving together are decoded into
// several events which later calls return without waiting.
func (t *Terminal) Poll(timeout time.Duration) (tea.Msg, error) {
	if len(t.pending) == 0 {
		b, err := t.wait(timeout)
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, nil
		}
		t.pending = decodeInput(b)
	}
	msg := t.pending[0]
	t.pending = t.pending[1:]
	return msg, nil
}
