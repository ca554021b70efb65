// File: services/gemini/client.go
package gemini

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps one Gemini generative model behind a plain text-in, text-out
// call so the rest of the service never touches the SDK types.
type Client struct {
	model *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &Client{model: model}, nil
}

func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return textFromResponse(resp)
}

// Transcribe turns spoken audio into text. Used for the compressed browser
// formats (webm, ogg) that the Cloud Speech WAV path does not accept.
func (c *Client) Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error) {
	resp, err := c.model.GenerateContent(ctx,
		genai.Text("Transcribe this audio exactly as spoken. Return only the transcription text, nothing else."),
		genai.Blob{MIMEType: mimeType, Data: audio},
	)
	if err != nil {
		return "", fmt.Errorf("gemini transcription error: %w", err)
	}
	text, err := textFromResponse(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
