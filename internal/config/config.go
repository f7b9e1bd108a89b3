// Package config loads runtime settings from DIGHACK_* environment variables.
package config

import (
	"dighack/internal/game"
	"dighack/internal/save"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds every tunable. Zero Seed means "seed from the clock".
type Config struct {
	Seed        int64  `env:"DIGHACK_SEED"`
	MaxRooms    int    `env:"DIGHACK_MAX_ROOMS"     envDefault:"5"`
	RoomMinSize int    `env:"DIGHACK_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize int    `env:"DIGHACK_ROOM_MAX_SIZE" envDefault:"10"`
	MapWidth    int    `env:"DIGHACK_MAP_WIDTH"     envDefault:"80"`
	MapHeight   int    `env:"DIGHACK_MAP_HEIGHT"    envDefault:"43"`
	FOVRadius   int    `env:"DIGHACK_FOV_RADIUS"    envDefault:"8"`
	Store       string `env:"DIGHACK_STORE"         envDefault:"file"`
	SaveDir     string `env:"DIGHACK_SAVE_DIR"`
	RedisAddr   string `env:"DIGHACK_REDIS_ADDR"    envDefault:"localhost:6379"`
	RedisPrefix string `env:"DIGHACK_REDIS_PREFIX"  envDefault:"dighack:"`
	SQLitePath  string `env:"DIGHACK_SQLITE_PATH"   envDefault:"dighack.db"`
	Slot        string `env:"DIGHACK_SLOT"`
	SSHAddr     string `env:"DIGHACK_SSH_ADDR"      envDefault:":2222"`
	HostKey     string `env:"DIGHACK_HOST_KEY"      envDefault:"server_host_key"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be caught later with a clear error.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.FOVRadius < 1 {
		return errors.New("config: fov radius must be positive")
	}
	if c.Slot != "" {
		if err := save.ValidateSlot(c.Slot); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Params returns the world generation parameters.
func (c Config) Params() game.Params {
	return game.Params{
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
		MapWidth:    c.MapWidth,
		MapHeight:   c.MapHeight,
		FOVRadius:   c.FOVRadius,
	}
}

// ResolveSeed returns Seed, or a clock-derived seed when it is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// OpenStore builds the configured slot store. The returned close func is
// never nil.
func (c Config) OpenStore() (save.Store, func() error, error) {
	noop := func() error { return nil }
	switch c.Store {
	case StoreRedis:
		client, err := save.NewRedisClient(c.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		s, err := save.NewRedisStore(client, c.RedisPrefix)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		log.Printf("saves: redis at %s", c.RedisAddr)
		return s, client.Close, nil
	case StoreSQLite:
		s, err := save.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("saves: sqlite at %s", c.SQLitePath)
		return s, s.Close, nil
	default:
		dir := c.SaveDir
		if dir == "" {
			d, err := save.DefaultDir()
			if err != nil {
				return nil, noop, fmt.Errorf("locate save dir: %w", err)
			}
			dir = d
		}
		s, err := save.NewFileStore(dir)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("saves: %s", dir)
		return s, noop, nil
	}
}
