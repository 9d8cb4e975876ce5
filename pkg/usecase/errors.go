package usecase

import (
	"errors"
	"strings"
)

// Sentinel errors for use case layer
var (
	// ErrEmptyMessage is returned when a chat message is empty after trimming
	ErrEmptyMessage = errors.New("message is required")

	// ErrEmbeddingFailed is returned when the embedding gateway produced no
	// vector for a chat message. The request fails; there is no keyword
	// fallback.
	ErrEmbeddingFailed = errors.New("failed to process message")
)

// MissingFieldsError reports which required contact-form fields were absent
type MissingFieldsError struct {
	Fields []string
}

func (x *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(x.Fields, ", ")
}
