package llm

import (
	"context"

	"google.golang.org/genai"

	"roomagent/config"
)

// GeminiClient backs the agent completion capability with the Gemini API
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed completion client using the API
// key from the environment
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GetGeminiAPIKey(),
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client}, nil
}

// Complete sends a single-turn prompt to the given model and returns the
// reply text. Stop sequences are optional; pass nil for none.
func (c *GeminiClient) Complete(ctx context.Context, model, prompt string, stop []string) (string, error) {
	var genConfig *genai.GenerateContentConfig
	if len(stop) > 0 {
		genConfig = &genai.GenerateContentConfig{StopSequences: stop}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		genConfig)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
