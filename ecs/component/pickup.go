package component

// Pickup is collected by the first friend that touches it.
type Pickup struct {
	Kind string
	// Modification is applied to every party member's health when Kind is
	// "heal".
	Modification int
}

const PickupKindHeal = "heal"

var PickupComponent = NewComponent[Pickup]()
