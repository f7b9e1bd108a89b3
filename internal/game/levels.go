package game

import (
	"dighack/internal/factory"
	"dighack/internal/generate"
	"dighack/internal/system"
	"math/rand"
)

// Params are the generation parameters, reused on every descent.
type Params struct {
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
	MapWidth    int
	MapHeight   int
	FOVRadius   int
}

// DefaultParams returns the standard dungeon size.
func DefaultParams() Params {
	return Params{
		MaxRooms:    5,
		RoomMinSize: 6,
		RoomMaxSize: 10,
		MapWidth:    80,
		MapHeight:   43,
		FOVRadius:   system.DefaultFOVRadius,
	}
}

// levelConfig builds a generate.Config for the given floor number.
func levelConfig(p Params, floor int, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		MaxRooms:    p.MaxRooms,
		RoomMinSize: p.RoomMinSize,
		RoomMaxSize: p.RoomMaxSize,
		MapWidth:    p.MapWidth,
		MapHeight:   p.MapHeight,
		Floor:       floor,
		Tables:      factory.Tables(),
		Rand:        rng,
	}
}
