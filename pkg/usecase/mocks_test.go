package usecase_test

import (
	"context"
	"sync"

	"github.com/folio-lab/portfolio-backend/pkg/domain/interfaces"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
)

// mockEmbedding is a function-field fake for the embedding gateway
type mockEmbedding struct {
	mu      sync.Mutex
	embedFn func(ctx context.Context, text string) ([]float32, error)
	texts   []string
}

func (m *mockEmbedding) Embed(ctx context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()

	if m.embedFn != nil {
		return m.embedFn(ctx, text)
	}
	return []float32{float32(len(text)), 1, 0}, nil
}

// mockGeneration records prompts passed to the generative model
type mockGeneration struct {
	mu         sync.Mutex
	generateFn func(ctx context.Context, prompt string) (string, error)
	prompts    []string
}

func (m *mockGeneration) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.generateFn != nil {
		return m.generateFn(ctx, prompt)
	}
	return "generated reply", nil
}

type delivery struct {
	To      string
	Subject string
	Body    string
}

// mockMailer records delivery attempts
type mockMailer struct {
	mu         sync.Mutex
	deliverFn  func(ctx context.Context, to, subject, body string) error
	deliveries []delivery
}

func (m *mockMailer) Deliver(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	m.deliveries = append(m.deliveries, delivery{To: to, Subject: subject, Body: body})
	m.mu.Unlock()

	if m.deliverFn != nil {
		return m.deliverFn(ctx, to, subject, body)
	}
	return nil
}

// mockContactRepo allows injecting insert failures and counting attempts
type mockContactRepo struct {
	mu       sync.Mutex
	insertFn func(ctx context.Context, submission *model.ContactSubmission) (string, error)
	inserts  int
}

func (m *mockContactRepo) Insert(ctx context.Context, submission *model.ContactSubmission) (string, error) {
	m.mu.Lock()
	m.inserts++
	m.mu.Unlock()

	if m.insertFn != nil {
		return m.insertFn(ctx, submission)
	}
	return "mock-id", nil
}

func (m *mockContactRepo) insertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inserts
}

// mockRepository wires custom sub-repositories into interfaces.Repository
type mockRepository struct {
	contact interfaces.ContactRepository
	vector  interfaces.VectorIndexRepository
}

func (m *mockRepository) Contact() interfaces.ContactRepository    { return m.contact }
func (m *mockRepository) Vector() interfaces.VectorIndexRepository { return m.vector }
func (m *mockRepository) Ping(ctx context.Context) error           { return nil }
func (m *mockRepository) Close() error                             { return nil }

func testResume() *model.ResumeDocument {
	return &model.ResumeDocument{
		Summary: "Software engineer focused on backend systems.",
		Projects: []model.Project{
			{Name: "Chatbot", Description: "RAG assistant for my portfolio site"},
			{Name: "Crawler", Description: "Distributed web crawler"},
		},
		Skills: map[string][]string{
			"Languages": {"Go", "Python"},
		},
		Education: &model.Education{
			Degree:      "BSc Computer Science",
			Institution: "State University",
		},
		Contact: &model.ContactInfo{
			Email: "jane@example.com",
			Phone: "+1-555-0100",
		},
	}
}
