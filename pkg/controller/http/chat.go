package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio-lab/portfolio-backend/pkg/usecase"
	"github.com/folio-lab/portfolio-backend/pkg/utils/errutil"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply   string              `json:"reply"`
	Sources []map[string]string `json:"sources"`
}

type chatErrorResponse struct {
	Error string `json:"error"`
}

// chatFailureResponse is the degraded 500 payload. The error field carries the
// failure description for frontend diagnostics.
type chatFailureResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error"`
}

func chatHandler(uc *usecase.ChatUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(ctx, w, http.StatusBadRequest, chatErrorResponse{Error: "Message required"})
			return
		}

		reply, err := uc.Chat(ctx, req.Message)
		if err != nil {
			if errors.Is(err, usecase.ErrEmptyMessage) {
				writeJSON(ctx, w, http.StatusBadRequest, chatErrorResponse{Error: "Message required"})
				return
			}
			if errors.Is(err, usecase.ErrEmbeddingFailed) {
				_ = errutil.Handle(ctx, err, "chat embedding failed")
				writeJSON(ctx, w, http.StatusInternalServerError, chatErrorResponse{Error: "Failed to process message"})
				return
			}

			// Catch-all: every other pipeline failure degrades to the fixed
			// apology, with the error text exposed as-is.
			_ = errutil.Handle(ctx, err, "chat pipeline failed")
			writeJSON(ctx, w, http.StatusInternalServerError, chatFailureResponse{
				Reply: usecase.ApologyReply,
				Error: err.Error(),
			})
			return
		}

		writeJSON(ctx, w, http.StatusOK, chatResponse{
			Reply:   reply.Reply,
			Sources: reply.Sources,
		})
	}
}
