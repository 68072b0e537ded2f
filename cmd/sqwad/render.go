package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/screen"
)

var (
	floorColor    = color.NRGBA{R: 0x26, G: 0x2b, B: 0x35, A: 0xff}
	wallColor     = color.NRGBA{R: 0x55, G: 0x5b, B: 0x6e, A: 0xff}
	colliderColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0x80}
)

type drawable struct {
	pos    cp.Vector
	sprite *component.Sprite
}

// camera maps world space (y up, centred on the party) to screen space.
type camera struct {
	center cp.Vector
	w, h   float64
}

func (c camera) toScreen(p cp.Vector) (float32, float32) {
	return float32(c.w/2 + p.X - c.center.X), float32(c.h/2 - (p.Y - c.center.Y))
}

func (g *Game) camera(gs *screen.GameplayScreen) camera {
	cam := camera{w: float64(g.cfg.Window.Width), h: float64(g.cfg.Window.Height)}
	if t, ok := ecs.Get(gs.World(), gs.Party(), component.TransformComponent.Kind()); ok {
		cam.center = t.Position()
	}
	return cam
}

func (g *Game) drawWorld(dst *ebiten.Image, gs *screen.GameplayScreen) {
	w := gs.World()
	if w == nil {
		return
	}
	cam := g.camera(gs)
	dst.Fill(wallColor)

	if e, ok := ecs.First(w, component.BoundsComponent.Kind()); ok {
		b, _ := ecs.Get(w, e, component.BoundsComponent.Kind())
		x, y := cam.toScreen(cp.Vector{X: -b.Width / 2, Y: b.Height / 2})
		vector.FillRect(dst, x, y, float32(b.Width), float32(b.Height), floorColor, false)
	}

	var items []drawable
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, s *component.Sprite, t *component.Transform) {
		if s.Hidden {
			return
		}
		items = append(items, drawable{pos: t.Position(), sprite: s})
	})
	slices.SortStableFunc(items, func(a, b drawable) int { return a.sprite.Order - b.sprite.Order })

	for _, it := range items {
		x, y := cam.toScreen(it.pos)
		r := float32(max(it.sprite.Size/2, 1))
		vector.DrawFilledCircle(dst, x, y, r, it.sprite.Color, true)
	}

	if g.cfg.Debug {
		ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
			x, y := cam.toScreen(t.Position().Add(cp.Vector{X: c.OffsetX, Y: c.OffsetY}))
			vector.StrokeCircle(dst, x, y, float32(c.Radius), 1, colliderColor, true)
		})
	}
}

// drawHUD shows the tally and the friend wheel.
func (g *Game) drawHUD(dst *ebiten.Image, gs *screen.GameplayScreen) {
	w := gs.World()
	if w == nil {
		return
	}
	if e, ok := ecs.First(w, component.StatsComponent.Kind()); ok {
		stats, _ := ecs.Get(w, e, component.StatsComponent.Kind())
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(12, float64(g.cfg.Window.Height)-24)
		op.ColorScale.ScaleWithColor(textColor)
		ebtext.Draw(dst, fmt.Sprintf("Time %.1f   Kills %d   Shots %d", stats.Survived, stats.Kills, stats.Shots), g.face, op)
	}

	wheel := gs.Wheel()
	if wheel == nil {
		return
	}
	for _, d := range common.Directions {
		b := wheel.Slot(d)
		if b == nil {
			continue
		}
		p := wheel.Center.Add(b.Offset())
		x, y := float32(p.X), float32(p.Y)
		vector.StrokeCircle(dst, x, y, 10, 2, b.Color, true)
		if b.Fill > 0 {
			vector.DrawFilledCircle(dst, x, y, float32(8*b.Fill), b.Color, true)
		}
	}
}
