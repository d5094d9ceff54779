package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrNoImage is returned when the model reply carries no inline image part.
var ErrNoImage = errors.New("no image data found in the response")

// ErrMissingAPIKey is returned when the client was built without credentials.
var ErrMissingAPIKey = errors.New("missing gemini API key")

// GenerateImage asks the image model to render the given description and
// returns the raw image bytes of the first inline-data part.
func (c *Client) GenerateImage(ctx context.Context, description string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	prompt := fmt.Sprintf("%s\n\nGenerate an image for: %s", ImageArtistPrompt, description)

	req := GenerateRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	resp, err := c.generate(ctx, c.imageModel, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrNoImage
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || part.InlineData.Data == "" {
			continue
		}
		raw, decErr := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if decErr != nil {
			return nil, fmt.Errorf("failed to decode image data: %w", decErr)
		}
		return raw, nil
	}

	return nil, ErrNoImage
}
