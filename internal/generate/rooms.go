package generate

import "dighack/internal/gamemap"

// Result is one generated floor. Rooms are exposed for inspection only;
// callers keep the map, spawn point and spawns.
type Result struct {
	Map            *gamemap.GameMap
	SpawnX, SpawnY int
	Rooms          []gamemap.Rect
	Spawns         []Spawn
}

// Generate carves up to cfg.MaxRooms non-overlapping rooms, chains each to
// the previous one with a tunnel, populates every room and puts the stairs
// at the center of the last room accepted.
func Generate(cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := cfg.Rand
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	res := &Result{Map: gmap}
	occupied := make(map[gamemap.Point]bool)

	for range cfg.MaxRooms {
		w := randint(rng, cfg.RoomMinSize, cfg.RoomMaxSize)
		h := randint(rng, cfg.RoomMinSize, cfg.RoomMaxSize)
		x := randint(rng, 0, cfg.MapWidth-w-1)
		y := randint(rng, 0, cfg.MapHeight-h-1)
		room := gamemap.NewRect(x, y, w, h)

		if intersectsAny(room, res.Rooms) {
			continue
		}
		carveRoom(gmap, room)

		cx, cy := room.Center()
		if len(res.Rooms) == 0 {
			res.SpawnX, res.SpawnY = cx, cy
			occupied[gamemap.Point{X: cx, Y: cy}] = true
		} else {
			px, py := res.Rooms[len(res.Rooms)-1].Center()
			carveTunnel(gmap, px, py, cx, cy, rng)
		}

		res.Spawns = append(res.Spawns, placeEntities(room, cfg, occupied)...)
		res.Rooms = append(res.Rooms, room)
	}

	if len(res.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	sx, sy := res.Rooms[len(res.Rooms)-1].Center()
	gmap.Set(sx, sy, gamemap.MakeStairsDown())
	gmap.Downstairs = gamemap.Point{X: sx, Y: sy}
	return res, nil
}

func intersectsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}
