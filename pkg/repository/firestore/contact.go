package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// contactDoc is the Firestore document representation of model.ContactSubmission
type contactDoc struct {
	Name      string    `firestore:"Name"`
	Email     string    `firestore:"Email"`
	Subject   string    `firestore:"Subject"`
	Message   string    `firestore:"Message"`
	CreatedAt time.Time `firestore:"CreatedAt"`
	IPAddress string    `firestore:"IPAddress"`
	Status    string    `firestore:"Status"`
}

type contactRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newContactRepository(client *firestore.Client) *contactRepository {
	return &contactRepository{
		client: client,
	}
}

func (r *contactRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "contacts")
}

func (r *contactRepository) Insert(ctx context.Context, submission *model.ContactSubmission) (string, error) {
	doc := &contactDoc{
		Name:      submission.Name,
		Email:     submission.Email,
		Subject:   submission.Subject,
		Message:   submission.Message,
		CreatedAt: submission.CreatedAt,
		IPAddress: submission.IPAddress,
		Status:    submission.Status,
	}

	docRef := r.collection().NewDoc()
	if _, err := docRef.Create(ctx, doc); err != nil {
		return "", goerr.Wrap(err, "failed to insert contact submission")
	}

	return docRef.ID, nil
}
