package screen

import (
	"log"

	"github.com/milk9111/sqwad/common"
	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/ecs/signal"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/prefabs"
	"github.com/milk9111/sqwad/state"
	"github.com/milk9111/sqwad/ui"
)

// WheelChild keeps the friend wheel in step with the party: it rotates
// with it and fills each button with that friend's health.
type WheelChild struct {
	spec  prefabs.FriendWheelSpec
	wheel *ui.FriendWheel
	world *ecs.World
	party ecs.Entity
	subs  []*signal.Subscription
}

func NewWheelChild(spec prefabs.FriendWheelSpec) *WheelChild {
	return &WheelChild{spec: spec}
}

func (c *WheelChild) OnInitializeState(master state.Screen) {
	g, ok := master.(*GameplayScreen)
	if !ok {
		log.Printf("screen: friend wheel needs a gameplay screen, got %T", master)
		return
	}
	wheel, err := ui.NewFriendWheel(c.spec)
	if err != nil {
		log.Printf("screen: friend wheel: %v", err)
		return
	}
	c.wheel = wheel
	c.world = g.World()
	c.party = g.Party()

	p, ok := ecs.Get(c.world, c.party, component.PartyComponent.Kind())
	if !ok {
		return
	}
	c.subs = append(c.subs, p.Rotated.Connect(func(r input.Rotation) {
		c.wheel.Rotate(r)
		c.refresh()
	}))
	for _, d := range common.Directions {
		friend := ecs.Entity(p.Friend(d))
		h, ok := ecs.Get(c.world, friend, component.HealthComponent.Kind())
		if !ok {
			continue
		}
		sub := h.Changed.Connect(func(int) { c.refresh() })
		ecs.Own(c.world, friend, sub)
		c.subs = append(c.subs, sub)
	}
	c.refresh()
}

func (c *WheelChild) OnUpdateState(dt float64) {
	c.wheel.Update(dt)
}

func (c *WheelChild) OnExitState() {
	for _, sub := range c.subs {
		sub.Close()
	}
	c.subs = nil
}

func (c *WheelChild) Wheel() *ui.FriendWheel { return c.wheel }

// refresh sets every button's fill from the friend now facing its way. An
// empty slot reads as zero.
func (c *WheelChild) refresh() {
	if c.wheel == nil {
		return
	}
	p, ok := ecs.Get(c.world, c.party, component.PartyComponent.Kind())
	if !ok {
		return
	}
	for _, d := range common.Directions {
		fill := 0.0
		if h, ok := ecs.Get(c.world, ecs.Entity(p.Friend(d)), component.HealthComponent.Kind()); ok {
			fill = h.Percent()
		}
		c.wheel.SetFill(d, fill)
	}
}
