package worlds

import "github.com/xraph/worlds/id"

// ID is the identifier type for world handles.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
