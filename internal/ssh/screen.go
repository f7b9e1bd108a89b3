package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("session has no PTY")

const defaultTerm = "xterm-256color"

// allowedTerms lists the TERM values accepted from clients. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu serialises the TERM swap around screen creation; terminfo lookup
// reads the process environment.
var termMu sync.Mutex

// sessionTerm picks the client's TERM if it is allowed.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[term] {
			return term
		}
	}
	return defaultTerm
}

// NewScreen builds and initialises a tcell screen for s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if !allowedTerms[term] {
		term = sessionTerm(s.Environ())
	}

	tty := NewSessionTty(s, pty.Window, winCh)
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

const maxSlotLen = 32

// SlotName turns an SSH user name into a save slot name: control and
// other unsafe runes are dropped and the result is capped. An empty result
// becomes "guest".
func SlotName(user string) string {
	var b strings.Builder
	for _, r := range user {
		if b.Len() >= maxSlotLen {
			break
		}
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "guest"
	}
	return b.String()
}
