package treesync

import (
	"github.com/arthur-debert/wixsync/pkg/collections"
	"github.com/arthur-debert/wixsync/pkg/ids"
	"github.com/google/uuid"
)

// Pools is the mutable state shared by every level of one synchronization
// run.
type Pools struct {
	// GUIDs holds every Guid that must not be handed out again.
	GUIDs *collections.UniqueSet[uuid.UUID]
	// IDs holds every identifier that must not be handed out again.
	IDs *collections.UniqueSet[string]
	// Components collects the Ids of the components matched or created.
	Components *collections.UniqueSet[string]
}

// NewPools returns empty pools.
func NewPools() *Pools {
	return &Pools{
		GUIDs:      ids.NewGUIDSet(),
		IDs:        collections.New[string](),
		Components: collections.New[string](),
	}
}
