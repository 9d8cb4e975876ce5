package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
)

type vectorRepository struct {
	mu      sync.RWMutex
	records map[string]*model.VectorRecord
}

func newVectorRepository() *vectorRepository {
	return &vectorRepository{
		records: make(map[string]*model.VectorRecord),
	}
}

func copyRecord(r *model.VectorRecord) *model.VectorRecord {
	copied := &model.VectorRecord{
		ID:     r.ID,
		Values: make([]float32, len(r.Values)),
	}
	copy(copied.Values, r.Values)

	if r.Metadata != nil {
		copied.Metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			copied.Metadata[k] = v
		}
	}

	return copied
}

func (r *vectorRepository) Upsert(ctx context.Context, records []*model.VectorRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		r.records[record.ID] = copyRecord(record)
	}

	return nil
}

func (r *vectorRepository) Query(ctx context.Context, vector []float32, topK int) ([]*model.VectorMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*model.VectorMatch, 0, len(r.records))
	for _, record := range r.records {
		matches = append(matches, &model.VectorMatch{
			ID:       record.ID,
			Score:    cosineSimilarity(vector, record.Values),
			Metadata: copyRecord(record).Metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}

	return matches, nil
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
