package component

// Dead marks an entity whose health ran out or that died on contact. The
// death system resolves drops and party slots before destroying it.
type Dead struct{}

var DeadComponent = NewComponent[Dead]()
