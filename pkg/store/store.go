// Package store persists completed render records.
//
// A render record captures one pipeline execution: the input graph hash,
// the layout strategy, the export format and the produced artifact bytes.
// The Store interface has two implementations:
//   - memory: in-memory storage for development and testing
//   - mongo: MongoDB-backed storage for the hosted API
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RenderRecord is one persisted render result.
type RenderRecord struct {
	ID          string    `json:"id" bson:"_id"`
	GraphHash   string    `json:"graph_hash" bson:"graph_hash"`
	Strategy    string    `json:"strategy" bson:"strategy"`
	Format      string    `json:"format" bson:"format"`
	ContentType string    `json:"content_type" bson:"content_type"`
	Artifact    []byte    `json:"artifact,omitempty" bson:"artifact"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord creates a render record with a fresh UUID and creation time.
func NewRecord(graphHash, strategy, format, contentType string, artifact []byte) *RenderRecord {
	return &RenderRecord{
		ID:          uuid.NewString(),
		GraphHash:   graphHash,
		Strategy:    strategy,
		Format:      format,
		ContentType: contentType,
		Artifact:    artifact,
		CreatedAt:   time.Now().UTC(),
	}
}

// Store is the interface for render record storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a record by ID.
	// Returns nil, nil if the record doesn't exist.
	Get(ctx context.Context, id string) (*RenderRecord, error)

	// Save stores a record, replacing any record with the same ID.
	Save(ctx context.Context, rec *RenderRecord) error

	// List returns up to limit records, newest first. A limit of zero or
	// less returns all records.
	List(ctx context.Context, limit int) ([]*RenderRecord, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}
