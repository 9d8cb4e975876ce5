package usecase

import (
	"context"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/folio-lab/portfolio-backend/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// IndexUseCase populates the vector index from the loaded résumé
type IndexUseCase struct {
	uc *UseCases
}

func newIndexUseCase(uc *UseCases) *IndexUseCase {
	return &IndexUseCase{uc: uc}
}

// Upload flattens the résumé, embeds every fact and writes the results into
// the vector index as one batch. A fact whose embedding fails is skipped and
// logged; a single failure never aborts the batch. Fact ids are deterministic,
// so re-running on an unchanged résumé overwrites instead of duplicating.
func (x *IndexUseCase) Upload(ctx context.Context) error {
	if x.uc.embedding == nil {
		return goerr.New("embedding gateway is not configured")
	}

	logger := logging.From(ctx)
	facts := model.Flatten(x.uc.resume)

	records := make([]*model.VectorRecord, 0, len(facts))
	for _, fact := range facts {
		if fact.Text == "" {
			continue
		}

		vector, err := x.uc.embedding.Embed(ctx, fact.Text)
		if err != nil {
			logger.Error("failed to embed fact, skipping",
				"id", fact.ID,
				"type", fact.Metadata["type"],
				"error", err.Error(),
			)
			continue
		}

		records = append(records, &model.VectorRecord{
			ID:       fact.ID,
			Values:   vector,
			Metadata: fact.Metadata,
		})
	}

	if len(facts) > 0 && len(records) == 0 {
		return goerr.New("no facts could be embedded", goerr.V("facts", len(facts)))
	}

	if err := x.uc.repo.Vector().Upsert(ctx, records); err != nil {
		return goerr.Wrap(err, "failed to upsert fact vectors")
	}

	logger.Info("portfolio facts indexed", "facts", len(facts), "indexed", len(records))
	return nil
}
