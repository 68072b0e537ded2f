package component

import "image/color"

// Sprite is what a front-end draws for an entity: a named clip, a tint and
// a size. Order is the draw order; higher draws on top.
type Sprite struct {
	Clip   string
	Color  color.NRGBA
	Size   float64
	Order  int
	Hidden bool
}

// DefaultSpriteColor is used when a prefab does not pick a tint.
var DefaultSpriteColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

var SpriteComponent = NewComponent[Sprite]()

// SpriteSort makes the sprite order follow the entity's height so lower
// entities draw in front.
type SpriteSort struct{}

var SpriteSortComponent = NewComponent[SpriteSort]()
