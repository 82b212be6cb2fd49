package secondary

import (
	"context"

	"github.com/google/uuid"
)

// ProfileLookup defines the secondary port for an external player directory.
// It is only consulted when the local username cache has no mapping.
type ProfileLookup interface {
	// LookupUUID asks the directory for the UUID currently owning name.
	// A name the directory does not know is reported as (uuid.Nil, false, nil).
	LookupUUID(ctx context.Context, name string) (uuid.UUID, bool, error)
}
