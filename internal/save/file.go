package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const fileExt = ".sav"

// FileStore keeps one file per slot in a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDir returns where saves live by default.
// Uses $XDG_DATA_HOME/dighack/saves,
// defaulting to ~/.local/share/dighack/saves.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dighack", "saves"), nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+fileExt)
}

// Put writes data atomically: a temp file is renamed over the slot.
func (s *FileStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Get reads a slot.
func (s *FileStore) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	return data, nil
}

// List returns the slot names in lexical order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	var slots []string
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		slots = append(slots, strings.TrimSuffix(name, fileExt))
	}
	slices.Sort(slots)
	return slots, nil
}

// Delete removes a slot.
func (s *FileStore) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	err := os.Remove(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
