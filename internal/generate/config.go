// Package generate builds dungeon floors: rectangular rooms joined by
// L-shaped tunnels, with monsters and items sampled from floor-gated tables.
// It knows nothing about entities; spawns are returned as template names for
// the factory package to instantiate.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoRooms is returned when no candidate room could be accepted.
var ErrNoRooms = errors.New("generate: no room could be placed")

// Config drives procedural generation for one floor.
type Config struct {
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
	MapWidth    int
	MapHeight   int
	Floor       int
	Tables      Tables
	Rand        *rand.Rand
}

// Validate reports parameters the generator cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Rand == nil:
		return errors.New("generate: random source is required")
	case c.MaxRooms < 1:
		return fmt.Errorf("generate: max rooms must be positive, got %d", c.MaxRooms)
	case c.RoomMinSize < 2:
		return fmt.Errorf("generate: room min size must be at least 2, got %d", c.RoomMinSize)
	case c.RoomMaxSize < c.RoomMinSize:
		return fmt.Errorf("generate: room max size %d is below min size %d", c.RoomMaxSize, c.RoomMinSize)
	case c.RoomMaxSize > c.MapWidth-1 || c.RoomMaxSize > c.MapHeight-1:
		return fmt.Errorf("generate: room max size %d does not fit a %dx%d map",
			c.RoomMaxSize, c.MapWidth, c.MapHeight)
	}
	return nil
}
