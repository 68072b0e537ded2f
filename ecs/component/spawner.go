package component

// Spawner periodically instantiates a prefab at its own position.
type Spawner struct {
	Prefab   string
	Interval float64
	Timer    float64

	// Infinite spawners never run out; otherwise Remaining counts down and
	// the spawner destroys itself when it reaches zero.
	Infinite  bool
	Remaining int

	// Triggered spawners only run once the party has entered them.
	RequiresTrigger bool
	Triggered       bool
}

var SpawnerComponent = NewComponent[Spawner]()
