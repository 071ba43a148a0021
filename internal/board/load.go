package board

import (
	"context"

	"github.com/abdullahosa/duo-list/internal/storage"
)

// Load fetches the shared document and normalizes it. Any failure yields an
// empty, correctly-shaped table plus a recoverable error, so the caller keeps
// functioning with zero records instead of crashing.
func Load(ctx context.Context, store storage.Provider) (Table, error) {
	doc, err := store.Fetch(ctx)
	if err != nil {
		return Empty(), err
	}
	return Normalize(doc)
}
