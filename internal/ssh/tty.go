// Package ssh adapts a gliderlabs SSH session into a tcell screen.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty over an SSH channel. Each connection gets
// its own SessionTty and screen.
type SessionTty struct {
	ch     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func()
}

// NewSessionTty wraps ch. win is the initial window; winCh delivers resizes.
func NewSessionTty(ch io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{ch: ch, window: win, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.ch.Write(b) }
func (t *SessionTty) Close() error                { return t.ch.Close() }

// Start, Stop and Drain are no-ops: the server handler owns the channel.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the last reported terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts draining window changes until the
// session closes the channel.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	if t.winCh == nil {
		return
	}
	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}

var _ tcell.Tty = (*SessionTty)(nil)
