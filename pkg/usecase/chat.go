package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/folio-lab/portfolio-backend/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed prompt/chat_system.md
var chatPromptTmpl string

var chatPrompt = template.Must(template.New("chat_system").Parse(chatPromptTmpl))

// contactKeywords short-circuit the pipeline to the deterministic contact
// block. Substring match, not word-boundary.
var contactKeywords = []string{"contact", "email", "phone", "linkedin", "github", "portfolio"}

const (
	// ApologyReply is the degraded reply for any internal chat failure
	ApologyReply = "I'm having trouble responding. Please try again later."

	// noContextPlaceholder substitutes the context block when retrieval
	// yields no usable text
	noContextPlaceholder = "No context available"

	// contactPhrase triggers the post-generation correctness patch
	contactPhrase = "contact information"

	retrievalTopK         = 3
	defaultRetrievalDelay = time.Second
)

// ChatUseCase answers résumé questions with retrieval-augmented generation
type ChatUseCase struct {
	uc *UseCases
}

func newChatUseCase(uc *UseCases) *ChatUseCase {
	return &ChatUseCase{uc: uc}
}

// Chat runs the pipeline for one message: classify, either answer contact
// questions deterministically or retrieve top-k facts, assemble the prompt,
// generate and post-process the reply.
//
// The lowercased message is used for matching only; the trimmed original
// casing is what gets embedded and sent to the model.
func (x *ChatUseCase) Chat(ctx context.Context, message string) (*model.ChatReply, error) {
	trimmed := strings.TrimSpace(message)
	normalized := strings.ToLower(trimmed)

	if normalized == "" {
		return nil, goerr.Wrap(ErrEmptyMessage, "empty chat message")
	}

	for _, keyword := range contactKeywords {
		if strings.Contains(normalized, keyword) {
			return &model.ChatReply{
				Reply: x.uc.resume.ContactBlock(),
				Sources: []map[string]string{{
					"type":     "contact",
					"category": "personal",
					"text":     "Contact information from resume",
				}},
			}, nil
		}
	}

	// Soft outbound rate limit before hitting the embedding API, scoped to
	// this request only.
	select {
	case <-time.After(x.uc.retrievalDelay):
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "chat request canceled")
	}

	if x.uc.embedding == nil {
		return nil, goerr.Wrap(ErrEmbeddingFailed, "embedding gateway is not configured")
	}

	vector, err := x.uc.embedding.Embed(ctx, trimmed)
	if err != nil {
		return nil, goerr.Wrap(ErrEmbeddingFailed, "embedding failed", goerr.V("cause", err.Error()))
	}
	if len(vector) == 0 {
		return nil, goerr.Wrap(ErrEmbeddingFailed, "embedding gateway returned an empty vector")
	}

	matches, err := x.uc.repo.Vector().Query(ctx, vector, retrievalTopK)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query vector index")
	}

	prompt, err := buildChatPrompt(matches, trimmed)
	if err != nil {
		return nil, err
	}

	if x.uc.generation == nil {
		return nil, goerr.New("generation service is not configured")
	}

	reply, err := x.uc.generation.Generate(ctx, prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate reply")
	}

	reply = patchContactReply(x.uc.resume, normalized, reply)

	// Sources keep every match that carries metadata, without the non-empty
	// text filter applied to the context block. The asymmetry is deliberate.
	sources := make([]map[string]string, 0, len(matches))
	for _, match := range matches {
		if len(match.Metadata) > 0 {
			sources = append(sources, match.Metadata)
		}
	}

	logging.From(ctx).Info("chat reply generated", "matches", len(matches), "sources", len(sources))

	return &model.ChatReply{
		Reply:   reply,
		Sources: sources,
	}, nil
}

// buildChatPrompt joins the metadata text of matches that have one and renders
// the prompt template around it
func buildChatPrompt(matches []*model.VectorMatch, question string) (string, error) {
	var parts []string
	for _, match := range matches {
		if text := match.Metadata["text"]; text != "" {
			parts = append(parts, text)
		}
	}

	context := noContextPlaceholder
	if len(parts) > 0 {
		context = strings.Join(parts, "\n")
	}

	var buf bytes.Buffer
	if err := chatPrompt.Execute(&buf, map[string]string{
		"Context":  context,
		"Question": question,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render chat prompt")
	}

	return buf.String(), nil
}

// patchContactReply prepends the contact block when the user asked for
// "contact information" but the model's reply does not mention the phrase.
// This is a narrow correctness patch for that exact phrase, nothing broader.
func patchContactReply(resume *model.ResumeDocument, normalized, reply string) string {
	if strings.Contains(normalized, contactPhrase) && !strings.Contains(strings.ToLower(reply), contactPhrase) {
		return resume.ContactBlock() + "\n\n" + reply
	}
	return reply
}
