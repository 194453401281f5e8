package driven

import (
	"context"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// RecordStore holds the keyed records of a single entity kind.
//
// One implementation serves every record type; the application
// instantiates it once per kind (users, orders). Implementations also
// choose the persistence semantics: the seed store rebuilds its
// fixture dataset on every call and quietly discards writes, the
// memory store keeps records for the life of the process, and the
// sqlite store keeps them across runs. Services are written against
// this interface and inherit whichever semantics are injected.
type RecordStore[R domain.Record[R]] interface {
	// List returns all records ordered by key.
	List(ctx context.Context) ([]R, error)

	// Get retrieves a record by key.
	// Returns domain.ErrNotFound if no record has the key.
	Get(ctx context.Context, id int) (*R, error)

	// Put stores or updates a record under its key.
	Put(ctx context.Context, record R) error

	// Delete removes a record by key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, id int) error
}
