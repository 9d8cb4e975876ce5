package usecase

import (
	"time"

	"github.com/folio-lab/portfolio-backend/pkg/domain/interfaces"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/folio-lab/portfolio-backend/pkg/service/embedding"
	"github.com/folio-lab/portfolio-backend/pkg/service/llm"
	"github.com/folio-lab/portfolio-backend/pkg/service/mail"
)

type UseCases struct {
	repo   interfaces.Repository
	resume *model.ResumeDocument

	embedding  embedding.Service
	generation llm.Service
	mailer     mail.Service
	adminEmail string

	retrievalDelay time.Duration

	Chat    *ChatUseCase
	Index   *IndexUseCase
	Contact *ContactUseCase
}

type Option func(*UseCases)

// WithEmbedding sets the embedding gateway. Without it the chat retrieval
// path and the indexer are disabled.
func WithEmbedding(svc embedding.Service) Option {
	return func(uc *UseCases) {
		uc.embedding = svc
	}
}

// WithGeneration sets the generative model service
func WithGeneration(svc llm.Service) Option {
	return func(uc *UseCases) {
		uc.generation = svc
	}
}

// WithMailer sets the mail relay for contact-form notifications
func WithMailer(svc mail.Service) Option {
	return func(uc *UseCases) {
		uc.mailer = svc
	}
}

// WithAdminEmail sets the address notified on each submission. Empty skips
// the admin notification.
func WithAdminEmail(addr string) Option {
	return func(uc *UseCases) {
		uc.adminEmail = addr
	}
}

// WithRetrievalDelay overrides the soft outbound rate-limit pause before the
// retrieval path calls the embedding gateway
func WithRetrievalDelay(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.retrievalDelay = d
	}
}

func New(repo interfaces.Repository, resume *model.ResumeDocument, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:           repo,
		resume:         resume,
		retrievalDelay: defaultRetrievalDelay,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Chat = newChatUseCase(uc)
	uc.Index = newIndexUseCase(uc)
	uc.Contact = newContactUseCase(uc)

	return uc
}
