package memory

import (
	"context"
	"sync"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/google/uuid"
)

type contactRepository struct {
	mu          sync.RWMutex
	submissions map[string]*model.ContactSubmission
}

func newContactRepository() *contactRepository {
	return &contactRepository{
		submissions: make(map[string]*model.ContactSubmission),
	}
}

func copySubmission(s *model.ContactSubmission) *model.ContactSubmission {
	copied := *s
	return &copied
}

func (r *contactRepository) Insert(ctx context.Context, submission *model.ContactSubmission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	stored := copySubmission(submission)
	stored.ID = id
	r.submissions[id] = stored

	return id, nil
}

// List returns all stored submissions. Test helper, not part of the
// repository interface.
func (r *contactRepository) List() []*model.ContactSubmission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ContactSubmission, 0, len(r.submissions))
	for _, s := range r.submissions {
		result = append(result, copySubmission(s))
	}
	return result
}
