package interfaces

import (
	"context"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
)

// ContactRepository defines the interface for ContactSubmission persistence
type ContactRepository interface {
	// Insert stores a new submission and returns its generated id
	Insert(ctx context.Context, submission *model.ContactSubmission) (string, error)
}
