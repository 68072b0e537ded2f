package component

import "github.com/milk9111/sqwad/common"

// Friend is one party member. Its slot direction changes as the party
// rotates; Offset is its position relative to the party centre.
type Friend struct {
	Party     uint64
	Direction common.Direction
	Facing    common.Direction
	Offset    common.Lerper

	// Sprites holds the clip shown for each facing, indexed by direction.
	Sprites [4]string
}

var FriendComponent = NewComponent[Friend]()
