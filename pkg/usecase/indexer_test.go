package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/folio-lab/portfolio-backend/pkg/repository/memory"
	"github.com/folio-lab/portfolio-backend/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestIndexUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("indexes every flattened fact", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, testResume(), usecase.WithEmbedding(&mockEmbedding{}))

		gt.NoError(t, uc.Index.Upload(ctx)).Required()

		// 2 projects + 1 skill category + education + summary
		matches, err := repo.Vector().Query(ctx, []float32{1, 0, 0}, 10)
		gt.NoError(t, err).Required()
		gt.Array(t, matches).Length(5)
	})

	t.Run("re-running overwrites instead of duplicating", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, testResume(), usecase.WithEmbedding(&mockEmbedding{}))

		gt.NoError(t, uc.Index.Upload(ctx)).Required()
		first, err := repo.Vector().Query(ctx, []float32{1, 0, 0}, 10)
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Index.Upload(ctx)).Required()
		second, err := repo.Vector().Query(ctx, []float32{1, 0, 0}, 10)
		gt.NoError(t, err).Required()

		gt.Array(t, second).Length(5)
		gt.Array(t, second).Length(len(first))
		for i := range first {
			gt.Value(t, second[i].ID).Equal(first[i].ID)
			gt.Value(t, second[i].Score).Equal(first[i].Score)
			gt.Value(t, second[i].Metadata).Equal(first[i].Metadata)
		}
	})

	t.Run("skips facts whose embedding fails", func(t *testing.T) {
		repo := memory.New()
		// Project facts are embedded as "<name>: <description>"
		embed := &mockEmbedding{
			embedFn: func(ctx context.Context, text string) ([]float32, error) {
				if strings.HasPrefix(text, "Crawler:") {
					return nil, errors.New("quota exceeded")
				}
				return []float32{1, 0, 0}, nil
			},
		}
		uc := usecase.New(repo, testResume(), usecase.WithEmbedding(embed))

		gt.NoError(t, uc.Index.Upload(ctx)).Required()

		matches, err := repo.Vector().Query(ctx, []float32{1, 0, 0}, 10)
		gt.NoError(t, err).Required()
		gt.Array(t, matches).Length(4)
		for _, match := range matches {
			gt.Value(t, match.Metadata["name"]).NotEqual("Crawler")
		}
	})

	t.Run("fails when no fact can be embedded", func(t *testing.T) {
		embed := &mockEmbedding{
			embedFn: func(ctx context.Context, text string) ([]float32, error) {
				return nil, errors.New("quota exceeded")
			},
		}
		uc := usecase.New(memory.New(), testResume(), usecase.WithEmbedding(embed))

		gt.Error(t, uc.Index.Upload(ctx))
	})

	t.Run("fails without an embedding gateway", func(t *testing.T) {
		uc := usecase.New(memory.New(), testResume())
		gt.Error(t, uc.Index.Upload(ctx))
	})
}
