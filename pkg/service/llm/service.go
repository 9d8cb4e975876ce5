package llm

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

// DefaultModel is the generative model answering chat questions
const DefaultModel = "gemini-1.5-flash-latest"

// Service generates a reply for an assembled prompt under the fixed sampling
// and safety configuration
type Service interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// generationConfig is the fixed sampling configuration: answers should stay
// close to the retrieved context, so the temperature is kept low and output
// length bounded. Safety thresholds block only high-confidence harmful
// content; lower-confidence content passes through.
var generationConfig = &genai.GenerateContentConfig{
	Temperature:     genai.Ptr[float32](0.5),
	TopP:            genai.Ptr[float32](0.95),
	TopK:            genai.Ptr[float32](40),
	MaxOutputTokens: 512,
	SafetySettings: []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	},
}

// client implements Service interface
type client struct {
	api   *genai.Client
	model string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithModel overrides the generative model name
func WithModel(model string) Option {
	return func(c *client) {
		c.model = model
	}
}

// New creates a generation service backed by the Gemini API on Vertex AI
func New(ctx context.Context, projectID, location string, opts ...Option) (Service, error) {
	if projectID == "" {
		return nil, goerr.New("Google Cloud project ID is required")
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client", goerr.V("projectID", projectID))
	}

	c := &client{
		api:   api,
		model: DefaultModel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Models.GenerateContent(ctx, c.model, genai.Text(prompt), generationConfig)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content", goerr.V("model", c.model))
	}

	text := resp.Text()
	if text == "" {
		return "", goerr.New("model returned an empty reply", goerr.V("model", c.model))
	}

	return text, nil
}
