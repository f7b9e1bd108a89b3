// Package save persists game sessions. A session is encoded as a CBOR
// envelope compressed with LZMA; slot stores keep those bytes under a name.
package save

import (
	"bytes"
	"dighack/internal/game"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/ulikunitz/xz/lzma"
)

// Magic and Version identify the save format.
const (
	Magic   = "DHSV"
	Version = 1
)

var (
	ErrBadMagic = errors.New("not a save file")
	ErrVersion  = errors.New("unsupported save version")
	ErrCorrupt  = errors.New("corrupt save data")
)

// Envelope is the top-level encoded record.
type Envelope struct {
	Magic    string         `cbor:"magic"`
	Version  uint           `cbor:"version"`
	Snapshot *game.Snapshot `cbor:"snapshot"`
}

// Marshal encodes the whole session.
func Marshal(e *game.Engine) ([]byte, error) {
	raw, err := cbor.Marshal(Envelope{Magic: Magic, Version: Version, Snapshot: e.Snapshot()})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes bytes produced by Marshal into a new session.
func Unmarshal(b []byte) (*game.Engine, error) {
	r, err := lzma.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var env Envelope
	if err := cbor.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if env.Magic != Magic {
		return nil, ErrBadMagic
	}
	if env.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, env.Version)
	}
	e, err := game.FromSnapshot(env.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return e, nil
}
