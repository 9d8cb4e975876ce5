package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio-lab/portfolio-backend/pkg/usecase"
	"github.com/folio-lab/portfolio-backend/pkg/utils/errutil"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func contactHandler(uc *usecase.ContactUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(ctx, w, http.StatusBadRequest, contactResponse{
				Success: false,
				Message: "No data provided",
			})
			return
		}

		submission, err := uc.Submit(ctx, usecase.ContactInput{
			Name:      req.Name,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
			IPAddress: clientIP(r),
		})
		if err != nil {
			var missingErr *usecase.MissingFieldsError
			if errors.As(err, &missingErr) {
				writeJSON(ctx, w, http.StatusBadRequest, contactResponse{
					Success: false,
					Message: missingErr.Error(),
				})
				return
			}

			// The underlying store error is logged, never leaked to the caller
			_ = errutil.Handle(ctx, err, "failed to process contact form")
			writeJSON(ctx, w, http.StatusInternalServerError, contactResponse{
				Success: false,
				Message: "An error occurred while processing your request",
			})
			return
		}

		writeJSON(ctx, w, http.StatusCreated, contactResponse{
			Success: true,
			Message: "Form submitted successfully",
			ID:      submission.ID,
		})
	}
}
