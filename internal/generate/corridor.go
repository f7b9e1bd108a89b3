package generate

import (
	"dighack/internal/gamemap"
	"math/rand"
)

// carveTunnel digs an L-shaped tunnel between (x1,y1) and (x2,y2). Half the
// time it runs horizontally first, otherwise vertically first.
func carveTunnel(gmap *gamemap.GameMap, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Float64() < 0.5 {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}

// carveRoom turns the interior of room into floor; the border stays wall.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}
