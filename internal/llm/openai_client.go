package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep data assistant.

You receive summary statistics of a Fitbit sleep export: the number of nights, the date range, duration and efficiency statistics, the mean share of each sleep stage, the typical sleep start and a chronotype classification. You must base your conclusions only on the provided data.

Your goals:
- Explain in plain language what the dataset covers, starting with its first date.
- Describe typical duration, stage balance and bedtime regularity.
- Point out relationships suggested by the correlations, without claiming causation.

Rules:
- Do NOT provide medical advice or diagnoses.
- If data is limited, say so explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "markdown": "One or two short markdown paragraphs explaining the sleep data from its first date.",
  "observations": [
    "3–6 short observations about duration, stages, start time and chronotype."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing a sleep dataset.

- "summary.duration", "summary.efficiency" and "summary.start_min" hold avg, std, min, max and count.
- "summary.start_min" is minutes after midnight; starts before 04:00 are shifted by 1440.
- "summary.stage_percent" is the mean share of the night spent in each stage.
- "duration_correlations" holds Pearson correlations of other columns with duration.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for explaining sleep datasets using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to explain the dataset.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var output domain.InsightsOutput
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Markdown == "" {
		return nil, fmt.Errorf("%w: empty markdown", ErrOpenAIResponse)
	}

	return &output, nil
}
