package component

import "fmt"

// Side is the allegiance used to decide who may damage whom.
type Side uint8

const (
	SideNeutral Side = iota
	SideFriend
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SideNeutral:
		return "neutral"
	case SideFriend:
		return "friend"
	case SideEnemy:
		return "enemy"
	}
	return fmt.Sprintf("side(%d)", uint8(s))
}

func ParseSide(name string) (Side, error) {
	switch name {
	case "", "neutral":
		return SideNeutral, nil
	case "friend":
		return SideFriend, nil
	case "enemy":
		return SideEnemy, nil
	}
	return 0, fmt.Errorf("component: unknown side %q", name)
}

type Faction struct {
	Side Side
}

// Hostile reports whether a can hurt b.
func Hostile(a, b Side) bool {
	return a != b
}

var FactionComponent = NewComponent[Faction]()
