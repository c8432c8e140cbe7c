package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"grm/internal/document"
	"grm/internal/terminal"
	"grm/internal/viewer"
)

const version = "0.1.0"

// maxUpdateTime is the largest --update-time, in milliseconds, that fits a time.Duration.
const maxUpdateTime = uint64(math.MaxInt64 / int64(time.Millisecond))

type startFlags struct {
	nocolor    bool
	updateTime uint64 // milliseconds
	debug      bool
}

// openTerminalFunc acquires the terminal the viewer draws on.
type openTerminalFunc func() (viewer.Terminal, error)

func openStdTerminal() (viewer.Terminal, error) {
	t, err := terminal.OpenStd()
	if err != nil {
		return nil, err
	}
	if cols, rows, err := t.Size(); err == nil {
		log.Printf("terminal: %dx%d", cols, rows)
	}
	return t, nil
}

// ---------- cobra CLI ----------

func newRootCmd(openTerminal openTerminalFunc) *cobra.Command {
	var flags startFlags

	cmd := &cobra.Command{
		Use:           "grm <file>",
		Short:         "Minimal full-screen text viewer with line numbers",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile := setupLogging(flags.debug); logFile != nil {
				defer func() {
					log.SetOutput(io.Discard)
					logFile.Close()
				}()
			}
			log.Printf("start: file=%q color=%t update=%dms", args[0], !flags.nocolor, flags.updateTime)

			err := run(args[0], flags, openTerminal)
			if err != nil {
				log.Printf("exit: %v", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&flags.nocolor, "nocolor", "C", false, "disable colored output")
	cmd.Flags().Uint64VarP(&flags.updateTime, "update-time", "U", 5, "input poll and redraw interval in milliseconds")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "append a debug log to "+logPath())
	cmd.Flags().BoolP("version", "V", false, "print version")
	cmd.SetVersionTemplate("grm version {{.Version}}\n")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if flags.updateTime > maxUpdateTime {
			return fmt.Errorf("invalid --update-time: %d (max %d ms)", flags.updateTime, maxUpdateTime)
		}
		return nil
	}

	return cmd
}

// run loads the file before touching the terminal, so a bad path leaves the
// terminal as it was.
func run(path string, flags startFlags, openTerminal openTerminalFunc) error {
	doc, err := document.Load(path)
	if err != nil {
		if cause := errors.Unwrap(err); cause != nil {
			log.Printf("load: %v", cause)
		}
		return err
	}
	log.Printf("loaded %s: %d bytes, %d newlines", doc.Path, len(doc.Text), doc.Lines)

	term, err := openTerminal()
	if err != nil {
		return err
	}

	v := viewer.New(doc, term, viewer.Options{
		Color:      !flags.nocolor,
		UpdateTime: time.Duration(flags.updateTime) * time.Millisecond,
		Version:    version,
	})
	return v.Run()
}

func main() {
	if err := newRootCmd(openStdTerminal).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
