package terminal

import (
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// UnknownInput is a byte sequence that does not decode to a known key.
type UnknownInput []byte

func (u UnknownInput) String() string { return fmt.Sprintf("unknown input %q", []byte(u)) }

const esc = 0x1b

var csiKeys = map[string]tea.KeyType{
	"A":  tea.KeyUp,
	"B":  tea.KeyDown,
	"C":  tea.KeyRight,
	"D":  tea.KeyLeft,
	"H":  tea.KeyHome,
	"F":  tea.KeyEnd,
	"Z":  tea.KeyShiftTab,
	"5~": tea.KeyPgUp,
	"6~": tea.KeyPgDown,
	"3~": tea.KeyDelete,
}

// decodeInput splits one read from a raw-mode terminal into events, in order.
func decodeInput(b []byte) []tea.Msg {
	var msgs []tea.Msg
	for len(b) > 0 {
		msg, n := decodeOne(b)
		msgs = append(msgs, msg)
		b = b[n:]
	}
	return msgs
}

func decodeOne(b []byte) (tea.Msg, int) {
	switch c := b[0]; {
	case c == esc:
		return decodeEscape(b)
	case c < 0x20 || c == 0x7f:
		return tea.KeyMsg{Type: tea.KeyType(c)}, 1
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return UnknownInput(b[:1]), 1
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, size
}

// decodeEscape handles a sequence starting with ESC. A lone ESC is the Escape
// key; ESC followed by a rune is that rune with alt held.
func decodeEscape(b []byte) (tea.Msg, int) {
	if len(b) == 1 || b[1] == esc {
		return tea.KeyMsg{Type: tea.KeyEsc}, 1
	}

	if b[1] == '[' || b[1] == 'O' {
		// Parameters run until the final byte in 0x40..0x7e.
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				body := string(b[2 : i+1])
				if k, ok := csiKeys[body]; ok {
					return tea.KeyMsg{Type: k}, i + 1
				}
				return UnknownInput(b[:i+1]), i + 1
			}
		}
		return UnknownInput(b), len(b)
	}

	msg, n := decodeOne(b[1:])
	if k, ok := msg.(tea.KeyMsg); ok {
		k.Alt = true
		return k, n + 1
	}
	return UnknownInput(b[:n+1]), n + 1
}
