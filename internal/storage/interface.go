package storage

import (
	"context"
	"encoding/json"

	"github.com/abdullahosa/duo-list/internal/models"
)

// Provider is the storage contract for the shared activity document. The
// collection is the single unit of persistence: Fetch returns the whole raw
// document and Persist overwrites it wholesale. There are no partial updates
// at this boundary.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Fetch returns the latest raw document for normalization. Transport
	// and decode failures propagate; the normalizer's caller recovers.
	Fetch(ctx context.Context) (json.RawMessage, error)

	// Persist serializes the records as a flat JSON array and replaces the
	// stored document. A failed attempt is reported once; there is no
	// retry and no rollback.
	Persist(ctx context.Context, recs []models.Record) error

	// Source describes where the document lives, for display and logs.
	Source() string
}
