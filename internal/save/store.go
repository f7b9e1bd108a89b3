package save

import (
	"context"
	"dighack/internal/game"
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned when a slot holds no save.
var ErrNotFound = errors.New("save slot not found")

// ErrBadSlot is returned for slot names that are empty or unsafe.
var ErrBadSlot = errors.New("invalid slot name")

// Store keeps encoded sessions by slot name.
type Store interface {
	Put(ctx context.Context, slot string, data []byte) error
	Get(ctx context.Context, slot string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, slot string) error
}

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]{0,63}$`)

// ValidateSlot rejects names that could escape a directory or key space.
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("%w: %q", ErrBadSlot, slot)
	}
	return nil
}

// SaveEngine encodes e and writes it to slot.
func SaveEngine(ctx context.Context, s Store, slot string, e *game.Engine) error {
	data, err := Marshal(e)
	if err != nil {
		return err
	}
	if err := s.Put(ctx, slot, data); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// LoadEngine reads slot and decodes it.
func LoadEngine(ctx context.Context, s Store, slot string) (*game.Engine, error) {
	data, err := s.Get(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", slot, err)
	}
	e, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", slot, err)
	}
	return e, nil
}
