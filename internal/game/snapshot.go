package game

import (
	"dighack/internal/component"
	"dighack/internal/ecs"
	"dighack/internal/gamemap"
	"dighack/internal/rng"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ErrBadSnapshot is returned when a snapshot cannot describe a session.
var ErrBadSnapshot = errors.New("bad snapshot")

// MapRecord is a floor flattened row-major.
type MapRecord struct {
	Width      int            `cbor:"w"`
	Height     int            `cbor:"h"`
	Tiles      []gamemap.Tile `cbor:"tiles"`
	Visible    []bool         `cbor:"visible"`
	Explored   []bool         `cbor:"explored"`
	Downstairs gamemap.Point  `cbor:"stairs"`
}

// EntityRecord holds one entity and whichever components it carries.
type EntityRecord struct {
	ID         ecs.EntityID          `cbor:"id"`
	Position   *component.Position   `cbor:"pos,omitempty"`
	Renderable *component.Renderable `cbor:"render,omitempty"`
	Player     bool                  `cbor:"player,omitempty"`
	Blocking   bool                  `cbor:"blocking,omitempty"`
	Item       bool                  `cbor:"item,omitempty"`
	Fighter    *component.Fighter    `cbor:"fighter,omitempty"`
	AI         *component.AI         `cbor:"ai,omitempty"`
	Inventory  *component.Inventory  `cbor:"inv,omitempty"`
	Equipment  *component.Equipment  `cbor:"equip,omitempty"`
	Level      *component.Level      `cbor:"level,omitempty"`
	Consumable *component.Consumable `cbor:"consumable,omitempty"`
	Equippable *component.Equippable `cbor:"equippable,omitempty"`
}

// Snapshot is the persisted form of a session.
type Snapshot struct {
	ID       string         `cbor:"id"`
	Params   Params         `cbor:"params"`
	Floor    int            `cbor:"floor"`
	State    GameState      `cbor:"state"`
	Player   ecs.EntityID   `cbor:"player"`
	NextID   ecs.EntityID   `cbor:"next_id"`
	Map      MapRecord      `cbor:"map"`
	Entities []EntityRecord `cbor:"entities"`
	Log      []Message      `cbor:"log"`
	RNG      rng.State      `cbor:"rng"`

	// LevelUpOffered carries an unanswered level-up prompt across a reload.
	LevelUpOffered bool `cbor:"levelup_offered,omitempty"`
}

// Snapshot captures the whole session.
func (e *Engine) Snapshot() *Snapshot {
	s := &Snapshot{
		ID:     e.id.String(),
		Params: e.params,
		Floor:  e.floor,
		State:  e.state,
		Player: e.playerID,
		NextID: e.world.NextID(),
		Map:    mapRecord(e.gmap),
		Log:    e.log.All(),
		RNG:    e.src.State(),

		LevelUpOffered: e.levelUpOffered,
	}
	for _, id := range e.world.Entities() {
		s.Entities = append(s.Entities, e.entityRecord(id))
	}
	return s
}

func mapRecord(m *gamemap.GameMap) MapRecord {
	r := MapRecord{
		Width:      m.Width,
		Height:     m.Height,
		Tiles:      make([]gamemap.Tile, 0, m.Width*m.Height),
		Visible:    make([]bool, 0, m.Width*m.Height),
		Explored:   make([]bool, 0, m.Width*m.Height),
		Downstairs: m.Downstairs,
	}
	for y := range m.Height {
		r.Tiles = append(r.Tiles, m.Tiles[y]...)
		r.Visible = append(r.Visible, m.Visible[y]...)
		r.Explored = append(r.Explored, m.Explored[y]...)
	}
	return r
}

func (e *Engine) entityRecord(id ecs.EntityID) EntityRecord {
	w := e.world
	r := EntityRecord{
		ID:       id,
		Player:   w.Has(id, component.CTagPlayer),
		Blocking: w.Has(id, component.CTagBlocking),
		Item:     w.Has(id, component.CTagItem),
	}
	if c, ok := w.Get(id, component.CPosition).(component.Position); ok {
		r.Position = &c
	}
	if c, ok := w.Get(id, component.CRenderable).(component.Renderable); ok {
		r.Renderable = &c
	}
	if c, ok := w.Get(id, component.CFighter).(component.Fighter); ok {
		r.Fighter = &c
	}
	if c, ok := w.Get(id, component.CAI).(component.AI); ok {
		r.AI = &c
	}
	if c, ok := w.Get(id, component.CInventory).(component.Inventory); ok {
		c.Items = append([]ecs.EntityID(nil), c.Items...)
		r.Inventory = &c
	}
	if c, ok := w.Get(id, component.CEquipment).(component.Equipment); ok {
		r.Equipment = &c
	}
	if c, ok := w.Get(id, component.CLevel).(component.Level); ok {
		r.Level = &c
	}
	if c, ok := w.Get(id, component.CConsumable).(component.Consumable); ok {
		r.Consumable = &c
	}
	if c, ok := w.Get(id, component.CEquippable).(component.Equippable); ok {
		r.Equippable = &c
	}
	return r
}

// FromSnapshot rebuilds a session. The random stream continues exactly
// where the snapshot was taken.
func FromSnapshot(s *Snapshot) (*Engine, error) {
	if s == nil {
		return nil, fmt.Errorf("restore: %w: nil", ErrBadSnapshot)
	}
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, fmt.Errorf("restore: %w: session id: %w", ErrBadSnapshot, err)
	}
	gmap, err := restoreMap(s.Map)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	for _, r := range s.Entities {
		if r.ID == ecs.NilEntity {
			return nil, fmt.Errorf("restore: %w: entity with nil id", ErrBadSnapshot)
		}
		restoreEntity(w, r)
	}
	w.SetNextID(s.NextID)
	if !w.Has(s.Player, component.CTagPlayer) || !w.Has(s.Player, component.CFighter) {
		return nil, fmt.Errorf("restore: %w: player %d missing", ErrBadSnapshot, s.Player)
	}

	src, err := rng.Restore(s.RNG)
	if err != nil {
		return nil, fmt.Errorf("restore: %w: %w", ErrBadSnapshot, err)
	}
	e := &Engine{
		id:       id,
		params:   s.Params,
		floor:    s.Floor,
		world:    w,
		gmap:     gmap,
		playerID: s.Player,
		state:    s.State,
		src:      src,
		rng:      rand.New(src),

		levelUpOffered: s.LevelUpOffered,
	}
	e.log.messages = append([]Message(nil), s.Log...)
	return e, nil
}

func restoreMap(r MapRecord) (*gamemap.GameMap, error) {
	n := r.Width * r.Height
	if r.Width <= 0 || r.Height <= 0 || len(r.Tiles) != n || len(r.Visible) != n || len(r.Explored) != n {
		return nil, fmt.Errorf("restore: %w: map %dx%d with %d tiles", ErrBadSnapshot, r.Width, r.Height, len(r.Tiles))
	}
	m := gamemap.New(r.Width, r.Height)
	for y := range r.Height {
		row := r.Tiles[y*r.Width : (y+1)*r.Width]
		copy(m.Tiles[y], row)
		copy(m.Visible[y], r.Visible[y*r.Width:(y+1)*r.Width])
		copy(m.Explored[y], r.Explored[y*r.Width:(y+1)*r.Width])
	}
	m.Downstairs = r.Downstairs
	return m, nil
}

func restoreEntity(w *ecs.World, r EntityRecord) {
	w.Restore(r.ID)
	if r.Player {
		w.Add(r.ID, component.TagPlayer{})
	}
	if r.Blocking {
		w.Add(r.ID, component.TagBlocking{})
	}
	if r.Item {
		w.Add(r.ID, component.TagItem{})
	}
	if r.Position != nil {
		w.Add(r.ID, *r.Position)
	}
	if r.Renderable != nil {
		w.Add(r.ID, *r.Renderable)
	}
	if r.Fighter != nil {
		w.Add(r.ID, *r.Fighter)
	}
	if r.AI != nil {
		w.Add(r.ID, *r.AI)
	}
	if r.Inventory != nil {
		w.Add(r.ID, *r.Inventory)
	}
	if r.Equipment != nil {
		w.Add(r.ID, *r.Equipment)
	}
	if r.Level != nil {
		w.Add(r.ID, *r.Level)
	}
	if r.Consumable != nil {
		w.Add(r.ID, *r.Consumable)
	}
	if r.Equippable != nil {
		w.Add(r.ID, *r.Equippable)
	}
}
