package component

import "dighack/internal/ecs"

const CRenderable ecs.ComponentType = 2

// RenderOrder decides which entity is drawn on top when several share a cell.
type RenderOrder uint8

const (
	OrderCorpse RenderOrder = iota
	OrderItem
	OrderActor
)

// Renderable carries the glyph and display name of an entity.
type Renderable struct {
	Glyph rune
	Name  string
	Order RenderOrder
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
