package config

import (
	"context"
	"log/slog"

	"github.com/folio-lab/portfolio-backend/pkg/service/llm"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// Gemini holds configuration for the Gemini clients (embedding + generation)
type Gemini struct {
	projectID string
	location  string
	model     string
}

// Flags returns CLI flags for Gemini configuration
func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini API",
			Sources:     cli.EnvVars("PORTFOLIO_GEMINI_PROJECT"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini API",
			Value:       "us-central1",
			Sources:     cli.EnvVars("PORTFOLIO_GEMINI_LOCATION"),
			Destination: &x.location,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Generative model answering chat questions",
			Value:       llm.DefaultModel,
			Sources:     cli.EnvVars("PORTFOLIO_GEMINI_MODEL"),
			Destination: &x.model,
		},
	}
}

// LogValue returns log attributes for the Gemini configuration
func (x *Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", x.projectID),
		slog.String("location", x.location),
		slog.String("model", x.model),
	)
}

// Configure creates a new Gemini LLM client for embeddings from the
// configured flags. Returns nil if projectID is not configured (the chat
// retrieval path and indexing will be disabled).
func (x *Gemini) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if x.projectID == "" {
		return nil, nil
	}

	client, err := gemini.New(ctx, x.projectID, x.location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client")
	}

	return client, nil
}

// ConfigureGeneration creates the generation service. Returns nil if
// projectID is not configured.
func (x *Gemini) ConfigureGeneration(ctx context.Context) (llm.Service, error) {
	if x.projectID == "" {
		return nil, nil
	}

	svc, err := llm.New(ctx, x.projectID, x.location, llm.WithModel(x.model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create generation service")
	}

	return svc, nil
}
