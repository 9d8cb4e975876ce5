package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	controller "github.com/folio-lab/portfolio-backend/pkg/controller/http"
	"github.com/folio-lab/portfolio-backend/pkg/domain/model"
	"github.com/folio-lab/portfolio-backend/pkg/repository/memory"
	"github.com/folio-lab/portfolio-backend/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type stubEmbedding struct {
	fn func(ctx context.Context, text string) ([]float32, error)
}

func (s *stubEmbedding) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.fn != nil {
		return s.fn(ctx, text)
	}
	return []float32{1, 0, 0}, nil
}

type stubGeneration struct {
	fn func(ctx context.Context, prompt string) (string, error)
}

func (s *stubGeneration) Generate(ctx context.Context, prompt string) (string, error) {
	if s.fn != nil {
		return s.fn(ctx, prompt)
	}
	return "generated reply", nil
}

func newTestServer(t *testing.T, opts ...usecase.Option) *controller.Server {
	t.Helper()

	resume := &model.ResumeDocument{
		Summary: "Backend engineer.",
		Contact: &model.ContactInfo{
			Email: "jane@example.com",
			Phone: "+1-555-0100",
		},
	}

	opts = append([]usecase.Option{usecase.WithRetrievalDelay(0)}, opts...)
	return controller.New(usecase.New(memory.New(), resume, opts...))
}

func postJSON(t *testing.T, srv *controller.Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
	return body
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Number(t, rec.Code).Equal(http.StatusOK)
	body := decodeBody(t, rec)
	gt.Value(t, body["status"]).Equal("ok")
	gt.Value(t, body["message"]).Equal("API is running")
}

func TestChatEndpoint(t *testing.T) {
	t.Run("answers contact questions", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postJSON(t, srv, "/api/chat", `{"message": "What is your email?"}`)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		body := decodeBody(t, rec)
		reply := gt.Cast[string](t, body["reply"])
		gt.Bool(t, strings.Contains(reply, "Email: jane@example.com")).True()

		sources := gt.Cast[[]any](t, body["sources"])
		gt.Array(t, sources).Length(1)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postJSON(t, srv, "/api/chat", `{"message": `)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
		gt.Value(t, decodeBody(t, rec)["error"]).Equal("Message required")
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postJSON(t, srv, "/api/chat", `{"message": "   "}`)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
		gt.Value(t, decodeBody(t, rec)["error"]).Equal("Message required")
	})

	t.Run("maps embedding failure to a fixed 500", func(t *testing.T) {
		embed := &stubEmbedding{
			fn: func(ctx context.Context, text string) ([]float32, error) {
				return nil, errors.New("quota exceeded")
			},
		}
		srv := newTestServer(t,
			usecase.WithEmbedding(embed),
			usecase.WithGeneration(&stubGeneration{}),
		)

		rec := postJSON(t, srv, "/api/chat", `{"message": "tell me about yourself"}`)
		gt.Number(t, rec.Code).Equal(http.StatusInternalServerError)

		body := decodeBody(t, rec)
		gt.Value(t, body["error"]).Equal("Failed to process message")
		_, hasReply := body["reply"]
		gt.Bool(t, hasReply).False()
	})

	t.Run("degrades generation failure to the apology reply", func(t *testing.T) {
		gen := &stubGeneration{
			fn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("model unavailable")
			},
		}
		srv := newTestServer(t,
			usecase.WithEmbedding(&stubEmbedding{}),
			usecase.WithGeneration(gen),
		)

		rec := postJSON(t, srv, "/api/chat", `{"message": "tell me about yourself"}`)
		gt.Number(t, rec.Code).Equal(http.StatusInternalServerError)

		body := decodeBody(t, rec)
		gt.Value(t, body["reply"]).Equal(usecase.ApologyReply)
		errText := gt.Cast[string](t, body["error"])
		gt.Bool(t, strings.Contains(errText, "model unavailable")).True()
	})
}

func TestContactEndpoint(t *testing.T) {
	t.Run("accepts a valid submission", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postJSON(t, srv, "/api/contact",
			`{"name": "Alice", "email": "alice@example.com", "message": "Hello"}`)
		gt.Number(t, rec.Code).Equal(http.StatusCreated)

		body := decodeBody(t, rec)
		gt.Value(t, body["success"]).Equal(true)
		gt.Value(t, body["message"]).Equal("Form submitted successfully")
		gt.Value(t, gt.Cast[string](t, body["id"])).NotEqual("")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postJSON(t, srv, "/api/contact", `not json`)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)

		body := decodeBody(t, rec)
		gt.Value(t, body["success"]).Equal(false)
		gt.Value(t, body["message"]).Equal("No data provided")
	})

	t.Run("names the missing fields", func(t *testing.T) {
		srv := newTestServer(t)

		rec := postJSON(t, srv, "/api/contact", `{"subject": "Hi"}`)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)

		body := decodeBody(t, rec)
		gt.Value(t, body["success"]).Equal(false)
		gt.Value(t, body["message"]).Equal("Missing required fields: name, email, message")
	})

	t.Run("answers CORS preflight", func(t *testing.T) {
		srv := newTestServer(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Number(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Access-Control-Allow-Origin")).Equal("*")
	})
}
