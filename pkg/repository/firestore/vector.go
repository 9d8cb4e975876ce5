package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// factDoc is the Firestore document representation of model.VectorRecord.
// Values is stored as firestore.Vector32 so that FindNearest vector search works.
type factDoc struct {
	ID        string             `firestore:"ID"`
	Values    firestore.Vector32 `firestore:"Values"`
	Metadata  map[string]string  `firestore:"Metadata"`
	UpdatedAt time.Time          `firestore:"UpdatedAt"`
}

// factQueryDoc additionally carries the distance field injected by FindNearest
type factQueryDoc struct {
	factDoc
	Distance float32 `firestore:"Distance"`
}

type vectorRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newVectorRepository(client *firestore.Client) *vectorRepository {
	return &vectorRepository{
		client: client,
	}
}

func (r *vectorRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "facts")
}

// Upsert writes all records in one bulk operation. Documents are keyed by the
// record id, so re-indexing an unchanged résumé replaces instead of appending.
func (r *vectorRepository) Upsert(ctx context.Context, records []*model.VectorRecord) error {
	now := time.Now().UTC()

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(records))

	for _, record := range records {
		doc := &factDoc{
			ID:        record.ID,
			Values:    firestore.Vector32(record.Values),
			Metadata:  record.Metadata,
			UpdatedAt: now,
		}
		job, err := bw.Set(r.collection().Doc(record.ID), doc)
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue vector upsert", goerr.V("id", record.ID))
		}
		jobs = append(jobs, job)
	}

	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to upsert vector", goerr.V("id", records[i].ID))
		}
	}

	return nil
}

func (r *vectorRepository) Query(ctx context.Context, vector []float32, topK int) ([]*model.VectorMatch, error) {
	vq := r.collection().FindNearest("Values", firestore.Vector32(vector), topK,
		firestore.DistanceMeasureCosine,
		&firestore.FindNearestOptions{DistanceResultField: "Distance"},
	)

	iter := vq.Documents(ctx)
	defer iter.Stop()

	matches := make([]*model.VectorMatch, 0, topK)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// FindNearest requires a vector index on the collection
			if status.Code(err) == codes.FailedPrecondition {
				return nil, goerr.Wrap(err, "vector index is missing on the facts collection")
			}
			return nil, goerr.Wrap(err, "failed to iterate vector search results")
		}

		var d factQueryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal vector search result")
		}

		matches = append(matches, &model.VectorMatch{
			ID: d.ID,
			// Cosine distance to similarity
			Score:    1 - d.Distance,
			Metadata: d.Metadata,
		})
	}

	return matches, nil
}
