package component

// Stats is a per-world tally kept on a single entity.
type Stats struct {
	Kills    int
	Shots    int
	Drops    int
	Pickups  int
	Survived float64
}

var StatsComponent = NewComponent[Stats]()
