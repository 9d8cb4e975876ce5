package memory

import (
	"context"

	"github.com/folio-lab/portfolio-backend/pkg/domain/interfaces"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	contact *contactRepository
	vector  *vectorRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		contact: newContactRepository(),
		vector:  newVectorRepository(),
	}
}

func (m *Memory) Contact() interfaces.ContactRepository {
	return m.contact
}

func (m *Memory) Vector() interfaces.VectorIndexRepository {
	return m.vector
}

// ContactSubmissions returns all stored submissions for inspection in tests
func (m *Memory) ContactSubmissions() []*model.ContactSubmission {
	return m.contact.List()
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}
