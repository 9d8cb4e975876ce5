package interfaces

import (
	"context"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
)

// VectorIndexRepository defines the interface for the nearest-neighbor store
// over résumé fact embeddings
type VectorIndexRepository interface {
	// Upsert writes records keyed by id with replace semantics
	Upsert(ctx context.Context, records []*model.VectorRecord) error

	// Query returns up to topK records nearest to vector, most similar first,
	// with their metadata
	Query(ctx context.Context, vector []float32, topK int) ([]*model.VectorMatch, error)
}
