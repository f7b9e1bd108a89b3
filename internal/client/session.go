package client

import (
	"context"
	"dighack/internal/game"
	"dighack/internal/save"
	"errors"
	"fmt"
)

// Resume loads slot from store, or starts a new game when the slot is
// empty. resumed reports which happened.
func Resume(ctx context.Context, store save.Store, slot string, params game.Params, seed int64) (e *game.Engine, resumed bool, err error) {
	e, err = save.LoadEngine(ctx, store, slot)
	switch {
	case err == nil:
		return e, true, nil
	case !errors.Is(err, save.ErrNotFound):
		return nil, false, err
	}
	e, err = game.New(params, seed)
	if err != nil {
		return nil, false, fmt.Errorf("new game: %w", err)
	}
	return e, false, nil
}
