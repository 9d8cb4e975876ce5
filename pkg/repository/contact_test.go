package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/folio-lab/portfolio-backend/pkg/domain/interfaces"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/folio-lab/portfolio-backend/pkg/repository/firestore"
	"github.com/folio-lab/portfolio-backend/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test-%d-", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func runContactRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Insert assigns a new id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		submission := &model.ContactSubmission{
			Name:      "Alice",
			Email:     "alice@example.com",
			Subject:   "Hello",
			Message:   "I would like to talk about a project.",
			CreatedAt: time.Now().UTC(),
			IPAddress: "203.0.113.7",
			Status:    model.ContactStatusNew,
		}

		id, err := repo.Contact().Insert(ctx, submission)
		gt.NoError(t, err).Required()
		gt.String(t, id).NotEqual("")
	})

	t.Run("Insert produces distinct ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		submission := &model.ContactSubmission{
			Name:      "Bob",
			Email:     "bob@example.com",
			Subject:   "Hi",
			Message:   "Second message",
			CreatedAt: time.Now().UTC(),
			Status:    model.ContactStatusNew,
		}

		id1, err := repo.Contact().Insert(ctx, submission)
		gt.NoError(t, err).Required()
		id2, err := repo.Contact().Insert(ctx, submission)
		gt.NoError(t, err).Required()

		gt.String(t, id1).NotEqual(id2)
	})
}

func TestMemoryContactRepository(t *testing.T) {
	runContactRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})

	t.Run("stored submission keeps its fields", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		created := time.Now().UTC()
		id, err := repo.Contact().Insert(ctx, &model.ContactSubmission{
			Name:      "Carol",
			Email:     "carol@example.com",
			Subject:   "No Subject",
			Message:   "Hello there",
			CreatedAt: created,
			IPAddress: "198.51.100.2",
			Status:    model.ContactStatusNew,
		})
		gt.NoError(t, err).Required()

		stored := repo.ContactSubmissions()
		gt.Array(t, stored).Length(1)
		gt.Value(t, stored[0].ID).Equal(id)
		gt.Value(t, stored[0].Name).Equal("Carol")
		gt.Value(t, stored[0].CreatedAt).Equal(created)
		gt.Value(t, stored[0].Status).Equal(model.ContactStatusNew)
	})
}

func TestFirestoreContactRepository(t *testing.T) {
	runContactRepositoryTest(t, newFirestoreRepository)
}
