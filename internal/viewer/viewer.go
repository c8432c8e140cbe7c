// Package viewer runs the full-screen display loop: it takes over the
// terminal, repaints the document with line numbers and a status bar, and
// waits for a quit key between repaints.
package viewer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grm/internal/document"
)

// Terminal is the terminal control the loop needs.
type Terminal interface {
	EnterAltScreen() error
	LeaveAltScreen() error
	HideCursor() error
	ShowCursor() error
	EnableRawMode() error
	DisableRawMode() error

	// Size returns the terminal dimensions in columns and rows.
	Size() (cols, rows int, err error)
	// MoveTo and Print may buffer until Flush.
	MoveTo(col, row int) error
	Print(s string) error
	Flush() error

	// Poll waits at most timeout for one input event. A nil event means the
	// wait timed out.
	Poll(timeout time.Duration) (tea.Msg, error)
}

type Options struct {
	Color      bool
	UpdateTime time.Duration
	Version    string
}

// Viewer holds everything the loop needs. Text is never modified after New.
type Viewer struct {
	term       Terminal
	text       string
	numWidth   int
	color      bool
	updateTime time.Duration
	status     string
	styles     styles
	keys       keyMap

	acquired bool
	released bool
}

func New(doc *document.Document, term Terminal, opts Options) *Viewer {
	keys := defaultKeys
	help := keys.Help.Help()
	return &Viewer{
		term:       term,
		text:       doc.Text,
		numWidth:   doc.NumberWidth(),
		color:      opts.Color,
		updateTime: opts.UpdateTime,
		status:     fmt.Sprintf("grm v%s | %s for %s", opts.Version, help.Key, help.Desc),
		styles:     newStyles(),
		keys:       keys,
	}
}

// Init enters the alternate screen, hides the cursor and enables raw input.
// Once Init has been called, Teardown restores the terminal even if Init
// failed part way.
func (v *Viewer) Init() error {
	v.acquired = true
	if err := v.term.EnterAltScreen(); err != nil {
		return err
	}
	if err := v.term.HideCursor(); err != nil {
		return err
	}
	return v.term.EnableRawMode()
}

// Teardown shows the cursor, leaves the alternate screen and disables raw
// input. Every step is attempted; their errors are joined. Only the first
// call after Init has any effect.
func (v *Viewer) Teardown() error {
	if !v.acquired || v.released {
		return nil
	}
	v.released = true
	return errors.Join(
		v.term.ShowCursor(),
		v.term.LeaveAltScreen(),
		v.term.DisableRawMode(),
	)
}

// PollForExit waits up to the update interval for input and reports whether
// it asked to quit. Timeouts, other keys and non-key events all continue.
func (v *Viewer) PollForExit() (bool, error) {
	msg, err := v.term.Poll(v.updateTime)
	if err != nil {
		return false, err
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	return key.Matches(k, v.keys.Quit), nil
}

// Render repaints the whole frame: the status bar on the last row, then the
// text from the top-left corner with a line number before every line. Nothing
// is wrapped or clipped; lines past the last row land wherever the terminal
// puts them.
func (v *Viewer) Render() error {
	_, rows, err := v.term.Size()
	if err != nil {
		return err
	}

	f := frame{term: v.term}
	f.moveTo(0, max(rows-1, 0))
	f.print(v.style(v.styles.status, v.status))
	f.moveTo(0, 0)

	line := 0
	f.print(v.linePrefix(line))
	for _, r := range v.text {
		if r == '\n' {
			line++
			f.moveTo(0, line)
			f.print(v.linePrefix(line))
			continue
		}
		f.print(string(r))
	}
	if f.err != nil {
		return f.err
	}
	return v.term.Flush()
}

// linePrefix is the 1-based number of line, right-aligned in numWidth+1
// columns, plus a separating space.
func (v *Viewer) linePrefix(line int) string {
	return v.style(v.styles.lineNumber, fmt.Sprintf("%*d ", v.numWidth+1, line+1))
}

func (v *Viewer) style(s lipgloss.Style, text string) string {
	if !v.color {
		return text
	}
	return s.Render(text)
}

// Run takes over the terminal and loops until a quit key arrives or an error
// occurs. The terminal is restored on every return path; a teardown failure
// is reported after the error that ended the loop.
func (v *Viewer) Run() (err error) {
	defer func() {
		if terr := v.Teardown(); terr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", terr))
		}
	}()

	if err := v.Init(); err != nil {
		return err
	}

	frames := 0
	for {
		quit, err := v.PollForExit()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("viewer: quit after %d frames", frames)
			return nil
		}
		if err := v.Render(); err != nil {
			return err
		}
		frames++
	}
}

// frame remembers the first terminal error so a repaint can be written as a
// straight sequence of moves and prints.
type frame struct {
	term Terminal
	err  error
}

func (f *frame) moveTo(col, row int) {
	if f.err == nil {
		f.err = f.term.MoveTo(col, row)
	}
}

func (f *frame) print(s string) {
	if f.err == nil {
		f.err = f.term.Print(s)
	}
}
