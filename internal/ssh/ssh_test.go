package ssh

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

type fakeChannel struct {
	in     *strings.Reader
	out    bytes.Buffer
	closed bool
}

func (f *fakeChannel) Read(b []byte) (int, error)  { return f.in.Read(b) }
func (f *fakeChannel) Write(b []byte) (int, error) { return f.out.Write(b) }

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

var _ io.ReadWriteCloser = (*fakeChannel)(nil)

func TestSessionTtyPassesThrough(t *testing.T) {
	ch := &fakeChannel{in: strings.NewReader("k")}
	tty := NewSessionTty(ch, gossh.Window{Width: 80, Height: 24}, nil)

	buf := make([]byte, 4)
	n, err := tty.Read(buf)
	if err != nil || string(buf[:n]) != "k" {
		t.Fatalf("Read = %q, %v", buf[:n], err)
	}
	if _, err := tty.Write([]byte("frame")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if ch.out.String() != "frame" {
		t.Errorf("written = %q", ch.out.String())
	}
	if err := tty.Close(); err != nil || !ch.closed {
		t.Errorf("Close = %v, closed = %v", err, ch.closed)
	}
}

func TestSessionTtyResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	tty := NewSessionTty(&fakeChannel{in: strings.NewReader("")}, gossh.Window{Width: 80, Height: 24}, winCh)

	ws, _ := tty.WindowSize()
	if ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size = %+v", ws)
	}

	called := make(chan struct{}, 1)
	tty.NotifyResize(func() { called <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("resized size = %+v", ws)
	}
	close(winCh)
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"unknown", []string{"TERM=evil-term"}, defaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, defaultTerm},
		{"missing", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.environ); got != tc.want {
				t.Errorf("sessionTerm(%v) = %q, want %q", tc.environ, got, tc.want)
			}
		})
	}
}

func TestSlotName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal", "Alice", "Alice"},
		{"keeps dash and underscore", "dungeon_crawler-1", "dungeon_crawler-1"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"path chars stripped", "../../etc", "etc"},
		{"non-ascii stripped", "héro", "hro"},
		{"empty", "", "guest"},
		{"nothing usable", "\x00./", "guest"},
		{"capped", strings.Repeat("a", 40), strings.Repeat("a", maxSlotLen)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SlotName(tc.input); got != tc.expect {
				t.Errorf("SlotName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}
